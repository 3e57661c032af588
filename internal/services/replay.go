package services

import (
	"context"
	"errors"

	"route-system/internal/dto"
	"route-system/internal/repositories"
	apperrors "route-system/pkg/errors"

	"go.uber.org/zap"
)

type SyncServiceInterface interface {
	EnqueueRoute(ctx context.Context, payload dto.CreateRouteDTO) (string, error)
	PendingRoutes(ctx context.Context) ([]repositories.PendingRoute, error)
	Replay(ctx context.Context) (*dto.SyncResultDTO, error)
}

// SyncService drena a fila de escritas offline. Cada entrada é reenviada ao
// fluxo normal de criação; duplicata por submission id conta como descartada.
// Falhas transitórias deixam a entrada na fila para o próximo gatilho.
type SyncService struct {
	pendingRepository repositories.PendingRouteRepositoryInterface
	routeRepository   repositories.RouteRepositoryInterface
	routeService      RouteServiceInterface
	logger            *zap.Logger
}

func NewSyncService(
	pendingRepository repositories.PendingRouteRepositoryInterface,
	routeRepository repositories.RouteRepositoryInterface,
	routeService RouteServiceInterface,
	logger *zap.Logger,
) SyncServiceInterface {
	return &SyncService{
		pendingRepository: pendingRepository,
		routeRepository:   routeRepository,
		routeService:      routeService,
		logger:            logger,
	}
}

func (s *SyncService) EnqueueRoute(ctx context.Context, payload dto.CreateRouteDTO) (string, error) {
	return s.pendingRepository.Enqueue(ctx, payload)
}

func (s *SyncService) PendingRoutes(ctx context.Context) ([]repositories.PendingRoute, error) {
	return s.pendingRepository.List(ctx)
}

func (s *SyncService) Replay(ctx context.Context) (*dto.SyncResultDTO, error) {
	entries, err := s.pendingRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	result := &dto.SyncResultDTO{}
	for _, entry := range entries {
		// O registro pode já ter chegado por outro caminho (replay anterior
		// interrompido, envio manual). Nesse caso só descarta da fila.
		if entry.Route.SubmissionID != "" {
			exists, err := s.routeRepository.SubmissionIDExists(ctx, entry.Route.SubmissionID)
			if err != nil {
				s.logger.Warn("não foi possível verificar duplicata no replay",
					zap.String("pending_id", entry.ID), zap.Error(err))
				result.Mantidas++
				continue
			}
			if exists {
				if err := s.pendingRepository.Remove(ctx, entry.ID); err != nil {
					s.logger.Warn("não foi possível remover entrada duplicada da fila",
						zap.String("pending_id", entry.ID), zap.Error(err))
				}
				result.Descartadas++
				continue
			}
		}

		if _, err := s.routeService.CreateRoute(ctx, entry.Route); err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				if removeErr := s.pendingRepository.Remove(ctx, entry.ID); removeErr != nil {
					s.logger.Warn("não foi possível remover entrada duplicada da fila",
						zap.String("pending_id", entry.ID), zap.Error(removeErr))
				}
				result.Descartadas++
				continue
			}
			s.logger.Warn("replay da rota pendente falhou, mantendo na fila",
				zap.String("pending_id", entry.ID),
				zap.String("submission_id", entry.Route.SubmissionID),
				zap.Error(err),
			)
			result.Mantidas++
			continue
		}

		if err := s.pendingRepository.Remove(ctx, entry.ID); err != nil {
			s.logger.Warn("rota sincronizada mas não removida da fila",
				zap.String("pending_id", entry.ID), zap.Error(err))
		}
		result.Sincronizadas++
	}

	s.logger.Info("replay da fila offline concluído",
		zap.Int("sincronizadas", result.Sincronizadas),
		zap.Int("descartadas", result.Descartadas),
		zap.Int("mantidas", result.Mantidas),
	)
	return result, nil
}
