package services

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"route-system/internal/dto"
	"route-system/internal/entities"
	"route-system/internal/repositories"
)

const FilterAll = "all"

type BoardServiceInterface interface {
	GetBoard(ctx context.Context, filter entities.RouteFilter) (*dto.BoardDTO, error)
	GetBoardByFuncionario(ctx context.Context, funcionario string, filter entities.RouteFilter) (*dto.BoardDTO, error)
}

// BoardService materializa no servidor a visão que antes vivia duplicada nas
// telas de admin e de funcionário: um único componente de listagem que recebe
// o snapshot e o conjunto de predicados como configuração.
type BoardService struct {
	routeRepository repositories.RouteRepositoryInterface
}

func NewBoardService(routeRepository repositories.RouteRepositoryInterface) BoardServiceInterface {
	return &BoardService{routeRepository: routeRepository}
}

func (s *BoardService) GetBoard(ctx context.Context, filter entities.RouteFilter) (*dto.BoardDTO, error) {
	snapshot, err := s.routeRepository.GetRoutes(ctx)
	if err != nil {
		return nil, err
	}
	return buildBoard(snapshot, filter), nil
}

func (s *BoardService) GetBoardByFuncionario(ctx context.Context, funcionario string, filter entities.RouteFilter) (*dto.BoardDTO, error) {
	snapshot, err := s.routeRepository.GetRoutesByFuncionario(ctx, funcionario)
	if err != nil {
		return nil, err
	}
	// O filtro de funcionário já foi aplicado pelo recorte do snapshot.
	filter.Funcionario = ""
	return buildBoard(snapshot, filter), nil
}

func buildBoard(snapshot []dto.RouteDTO, filter entities.RouteFilter) *dto.BoardDTO {
	filtered := FilterRoutes(snapshot, filter)

	board := &dto.BoardDTO{
		Pendentes:    make([]dto.RouteDTO, 0),
		Executadas:   make([]dto.RouteDTO, 0),
		Funcionarios: uniqueFuncionarios(snapshot),
	}

	for _, route := range filtered {
		if route.Status == entities.StatusExecutado {
			board.Executadas = append(board.Executadas, route)
		} else {
			board.Pendentes = append(board.Pendentes, route)
		}
	}

	board.Contadores = dto.ContadoresDTO{
		Total:      len(filtered),
		Executadas: len(board.Executadas),
		Pendentes:  len(board.Pendentes),
	}
	return board
}

// FilterRoutes compõe os três predicados com AND lógico. Cada predicado é
// ignorado quando o controle correspondente está no valor sentinela
// ("all"/vazio). A composição é comutativa e idempotente sobre um snapshot
// fixo.
func FilterRoutes(routes []dto.RouteDTO, filter entities.RouteFilter) []dto.RouteDTO {
	result := make([]dto.RouteDTO, 0, len(routes))
	busca := strings.ToLower(strings.TrimSpace(filter.Busca))

	for _, route := range routes {
		if filter.Status != "" && filter.Status != FilterAll && route.Status != filter.Status {
			continue
		}
		if filter.Funcionario != "" && filter.Funcionario != FilterAll && route.Funcionario != filter.Funcionario {
			continue
		}
		if busca != "" && !matchesBusca(route, busca) {
			continue
		}
		result = append(result, route)
	}
	return result
}

func matchesBusca(route dto.RouteDTO, busca string) bool {
	campos := []string{
		strconv.FormatUint(route.ID, 10),
		route.SubmissionID,
		route.Funcionario,
		route.Endereco,
		route.Numero,
		route.Complemento,
		route.Bairro,
		route.Cidade,
		route.Estado,
		route.Cep,
		route.Observacao,
	}
	for _, campo := range campos {
		if campo != "" && strings.Contains(strings.ToLower(campo), busca) {
			return true
		}
	}
	return false
}

func uniqueFuncionarios(routes []dto.RouteDTO) []string {
	seen := make(map[string]struct{}, len(routes))
	names := make([]string, 0, len(routes))
	for _, route := range routes {
		if _, ok := seen[route.Funcionario]; ok {
			continue
		}
		seen[route.Funcionario] = struct{}{}
		names = append(names, route.Funcionario)
	}
	sort.Strings(names)
	return names
}
