package controllers

import (
	"context"
	"net/http"
	"time"

	"route-system/internal/dto"
	"route-system/internal/services"
	apperrors "route-system/pkg/errors"
	"route-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const replayTimeout = 2 * time.Minute

type SyncController struct {
	syncService services.SyncServiceInterface
	logger      *zap.Logger
}

func NewSyncController(syncService services.SyncServiceInterface, logger *zap.Logger) *SyncController {
	return &SyncController{syncService: syncService, logger: logger}
}

// EnqueueRoute guarda uma rota na fila durável para replay posterior. É o
// caminho usado pelo cliente quando a escrita direta falhou.
func (ctrl *SyncController) EnqueueRoute(c echo.Context) error {
	ctx := c.Request().Context()

	var payload dto.CreateRouteDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c,
			apperrors.NewHttpError(http.StatusBadRequest, "Corpo da requisição inválido.", err, nil),
			ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	id, err := ctrl.syncService.EnqueueRoute(ctx, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, map[string]interface{}{"pending_id": id},
		"Rota guardada para sincronização!", http.StatusAccepted)
}

func (ctrl *SyncController) GetPendingRoutes(c echo.Context) error {
	ctx := c.Request().Context()

	entries, err := ctrl.syncService.PendingRoutes(ctx)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, map[string]interface{}{"pendentes": entries},
		"Fila de sincronização carregada!", http.StatusOK)
}

// RunReplay dispara o replay em background e responde 202 imediatamente. O
// resultado de cada ciclo fica no log; a fila pode ser consultada a qualquer
// momento pelo GET.
func (ctrl *SyncController) RunReplay(c echo.Context) error {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), replayTimeout)
		defer cancel()
		if _, err := ctrl.syncService.Replay(ctx); err != nil {
			ctrl.logger.Error("replay da fila offline falhou", zap.Error(err))
		}
	}()

	return utils.SuccessResponse(c, nil, "Sincronização iniciada.", http.StatusAccepted)
}
