package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"route-system/internal/dto"
	"route-system/internal/entities"
	"route-system/internal/repositories"
	apperrors "route-system/pkg/errors"
)

type ReportServiceInterface interface {
	ResumoPorFuncionario(ctx context.Context, funcionario, data string) (*dto.WhatsAppReportDTO, error)
	MeuRelatorio(ctx context.Context, funcionario string) (*dto.WhatsAppReportDTO, error)
}

// ReportService monta os relatórios textuais enviados pelo deep link do
// WhatsApp. Puramente derivado do snapshot, nenhuma escrita.
type ReportService struct {
	routeRepository repositories.RouteRepositoryInterface
}

func NewReportService(routeRepository repositories.RouteRepositoryInterface) ReportServiceInterface {
	return &ReportService{routeRepository: routeRepository}
}

// ResumoPorFuncionario é o relatório da tela de admin: contagens do
// funcionário, opcionalmente recortadas por data (executedAt ou dataCriacao).
func (s *ReportService) ResumoPorFuncionario(ctx context.Context, funcionario, data string) (*dto.WhatsAppReportDTO, error) {
	if strings.TrimSpace(funcionario) == "" {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Selecione um colaborador!", apperrors.ErrBadRequest, nil)
	}

	routes, err := s.routeRepository.GetRoutesByFuncionario(ctx, funcionario)
	if err != nil {
		return nil, err
	}

	if data != "" {
		filtered := make([]dto.RouteDTO, 0, len(routes))
		for _, route := range routes {
			if routeDate(route) == data {
				filtered = append(filtered, route)
			}
		}
		routes = filtered
	}

	executadas, pendentes := countByStatus(routes)

	var b strings.Builder
	fmt.Fprintf(&b, "*Relatório de Rotas - %s*\n", funcionario)
	if data != "" {
		fmt.Fprintf(&b, "Data: %s\n", data)
	}
	fmt.Fprintf(&b, "Total de Rotas: %d\n", len(routes))
	fmt.Fprintf(&b, "Executadas: %d\n", executadas)
	fmt.Fprintf(&b, "Pendentes: %d", pendentes)

	return buildReport(b.String()), nil
}

// MeuRelatorio é o relatório da tela do funcionário: contagens mais a lista
// enumerada dos endereços pendentes.
func (s *ReportService) MeuRelatorio(ctx context.Context, funcionario string) (*dto.WhatsAppReportDTO, error) {
	if strings.TrimSpace(funcionario) == "" {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Identifique-se primeiro para gerar o relatório.", apperrors.ErrBadRequest, nil)
	}

	routes, err := s.routeRepository.GetRoutesByFuncionario(ctx, funcionario)
	if err != nil {
		return nil, err
	}

	executadas, pendentes := countByStatus(routes)

	var b strings.Builder
	fmt.Fprintf(&b, "*Relatório de Rotas - %s*\n\n", funcionario)
	fmt.Fprintf(&b, "📊 Total de Rotas: %d\n", len(routes))
	fmt.Fprintf(&b, "✅ Rotas Executadas: %d\n", executadas)
	fmt.Fprintf(&b, "⏳ Rotas Pendentes: %d\n\n", pendentes)
	b.WriteString("*Detalhes das Rotas Pendentes:*\n")

	if pendentes == 0 {
		b.WriteString("Todas as rotas foram executadas! 🎉")
	} else {
		n := 0
		for _, route := range routes {
			if route.Status == entities.StatusExecutado {
				continue
			}
			n++
			line := fmt.Sprintf("%d. %s, %s", n, route.Endereco, route.Numero)
			if route.Complemento != "" {
				line += fmt.Sprintf(" (%s)", route.Complemento)
			}
			b.WriteString(line + "\n")
		}
	}

	return buildReport(b.String()), nil
}

func buildReport(mensagem string) *dto.WhatsAppReportDTO {
	return &dto.WhatsAppReportDTO{
		Mensagem: mensagem,
		Link:     "https://wa.me/?text=" + url.QueryEscape(mensagem),
	}
}

func countByStatus(routes []dto.RouteDTO) (executadas, pendentes int) {
	for _, route := range routes {
		if route.Status == entities.StatusExecutado {
			executadas++
		} else {
			pendentes++
		}
	}
	return
}

// routeDate extrai a parte da data usada no recorte do relatório:
// executedAt quando presente, senão a data de criação.
func routeDate(route dto.RouteDTO) string {
	if route.ExecutedAt.Valid && route.ExecutedAt.String != "" {
		return strings.SplitN(route.ExecutedAt.String, "T", 2)[0]
	}
	return strings.SplitN(route.DataCriacao, " ", 2)[0]
}
