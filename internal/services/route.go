package services

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"route-system/internal/dto"
	"route-system/internal/entities"
	"route-system/internal/repositories"
	apperrors "route-system/pkg/errors"

	"go.uber.org/zap"
)

const (
	routeSnapshotKey = "routes_snapshot"
	routeSnapshotTTL = time.Hour * 24
)

type RouteServiceInterface interface {
	ListRoutes(ctx context.Context) ([]dto.RouteDTO, bool, error)
	ListRoutesByFuncionario(ctx context.Context, funcionario string) ([]dto.RouteDTO, error)
	CreateRoute(ctx context.Context, payload dto.CreateRouteDTO) (uint64, error)
	UpdateRoute(ctx context.Context, id uint64, payload dto.UpdateRouteDTO) error
	DeleteRoute(ctx context.Context, id uint64) error
	ClearAllRoutes(ctx context.Context) (int64, error)
	ClearRoutesByFuncionario(ctx context.Context, funcionario string) (int64, error)
}

type RouteService struct {
	routeRepository repositories.RouteRepositoryInterface
	cacheRepository repositories.CacheRepositoryInterface
	logger          *zap.Logger
}

func NewRouteService(
	routeRepository repositories.RouteRepositoryInterface,
	cacheRepository repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) RouteServiceInterface {
	return &RouteService{
		routeRepository: routeRepository,
		cacheRepository: cacheRepository,
		logger:          logger,
	}
}

// ListRoutes busca a lista no banco e renova o snapshot em cache. Se o banco
// estiver indisponível, serve o último snapshot bom e sinaliza stale=true,
// espelhando a estratégia network-first-com-fallback do front.
func (s *RouteService) ListRoutes(ctx context.Context) ([]dto.RouteDTO, bool, error) {
	routes, err := s.routeRepository.GetRoutes(ctx)
	if err != nil {
		s.logger.Warn("falha ao listar rotas no banco, tentando snapshot em cache", zap.Error(err))

		cached, cacheErr := s.cacheRepository.Get(ctx, routeSnapshotKey)
		if cacheErr != nil {
			return nil, false, err
		}
		var snapshot []dto.RouteDTO
		if unmarshalErr := json.Unmarshal([]byte(cached), &snapshot); unmarshalErr != nil {
			return nil, false, err
		}
		return snapshot, true, nil
	}

	if raw, marshalErr := json.Marshal(routes); marshalErr == nil {
		if cacheErr := s.cacheRepository.Set(ctx, routeSnapshotKey, raw, routeSnapshotTTL); cacheErr != nil {
			s.logger.Warn("não foi possível renovar o snapshot de rotas", zap.Error(cacheErr))
		}
	}

	return routes, false, nil
}

func (s *RouteService) ListRoutesByFuncionario(ctx context.Context, funcionario string) ([]dto.RouteDTO, error) {
	return s.routeRepository.GetRoutesByFuncionario(ctx, funcionario)
}

func (s *RouteService) CreateRoute(ctx context.Context, payload dto.CreateRouteDTO) (uint64, error) {
	if payload.Status == "" {
		payload.Status = entities.StatusPendente
	}
	if payload.Origem == "" {
		payload.Origem = entities.OrigemManual
	}

	id, err := s.routeRepository.CreateRoute(ctx, payload)
	if err != nil {
		return 0, err
	}

	s.invalidateSnapshot(ctx)
	return id, nil
}

func (s *RouteService) UpdateRoute(ctx context.Context, id uint64, payload dto.UpdateRouteDTO) error {
	if payload.IsEmpty() {
		return apperrors.NewHttpError(http.StatusBadRequest, "Nenhum campo para atualizar fornecido.", apperrors.ErrBadRequest, nil)
	}

	// Contrato de ciclo de vida: a transição de status carimba ou limpa o
	// executedAt quando o chamador não o informou explicitamente.
	if payload.Status != nil {
		switch *payload.Status {
		case entities.StatusExecutado:
			if payload.ExecutedAt == nil {
				now := time.Now().UTC().Format(time.RFC3339)
				payload.ExecutedAt = &now
			}
		case entities.StatusPendente:
			if payload.ExecutedAt == nil {
				empty := ""
				payload.ExecutedAt = &empty
			}
		}
	}

	if err := s.routeRepository.UpdateRoute(ctx, id, payload); err != nil {
		return err
	}

	s.invalidateSnapshot(ctx)
	return nil
}

func (s *RouteService) DeleteRoute(ctx context.Context, id uint64) error {
	if err := s.routeRepository.DeleteRoute(ctx, id); err != nil {
		return err
	}
	s.invalidateSnapshot(ctx)
	return nil
}

func (s *RouteService) ClearAllRoutes(ctx context.Context) (int64, error) {
	count, err := s.routeRepository.DeleteAllRoutes(ctx)
	if err != nil {
		return 0, err
	}
	s.invalidateSnapshot(ctx)
	return count, nil
}

func (s *RouteService) ClearRoutesByFuncionario(ctx context.Context, funcionario string) (int64, error) {
	count, err := s.routeRepository.DeleteRoutesByFuncionario(ctx, funcionario)
	if err != nil {
		return 0, err
	}
	s.invalidateSnapshot(ctx)
	return count, nil
}

// Toda mutação invalida o snapshot; a próxima listagem renova.
func (s *RouteService) invalidateSnapshot(ctx context.Context) {
	if err := s.cacheRepository.Del(ctx, routeSnapshotKey); err != nil {
		s.logger.Warn("não foi possível invalidar o snapshot de rotas", zap.Error(err))
	}
}
