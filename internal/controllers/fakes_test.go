package controllers

import (
	"context"
	"io"

	"route-system/internal/dto"
	"route-system/internal/entities"
	"route-system/internal/repositories"
	"route-system/internal/services"
	"route-system/pkg/customvalidator"
	"route-system/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

func newEchoForTest() *echo.Echo {
	e := echo.New()
	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		panic(err)
	}
	e.Validator = utils.NewValidator(v)
	return e
}

// fakeRouteService devolve respostas programadas, sem repositório por trás.
type fakeRouteService struct {
	routes   []dto.RouteDTO
	stale    bool
	err      error
	createID uint64

	lastCreate *dto.CreateRouteDTO
	lastUpdate *dto.UpdateRouteDTO
	lastID     uint64
	cleared    string
}

func (f *fakeRouteService) ListRoutes(ctx context.Context) ([]dto.RouteDTO, bool, error) {
	return f.routes, f.stale, f.err
}

func (f *fakeRouteService) ListRoutesByFuncionario(ctx context.Context, funcionario string) ([]dto.RouteDTO, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.routes, nil
}

func (f *fakeRouteService) CreateRoute(ctx context.Context, payload dto.CreateRouteDTO) (uint64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.lastCreate = &payload
	return f.createID, nil
}

func (f *fakeRouteService) UpdateRoute(ctx context.Context, id uint64, payload dto.UpdateRouteDTO) error {
	if f.err != nil {
		return f.err
	}
	f.lastID = id
	f.lastUpdate = &payload
	return nil
}

func (f *fakeRouteService) DeleteRoute(ctx context.Context, id uint64) error {
	if f.err != nil {
		return f.err
	}
	f.lastID = id
	return nil
}

func (f *fakeRouteService) ClearAllRoutes(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.routes)), nil
}

func (f *fakeRouteService) ClearRoutesByFuncionario(ctx context.Context, funcionario string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.cleared = funcionario
	return int64(len(f.routes)), nil
}

var _ services.RouteServiceInterface = (*fakeRouteService)(nil)

type fakeBoardService struct {
	board      *dto.BoardDTO
	err        error
	lastFilter entities.RouteFilter
}

func (f *fakeBoardService) GetBoard(ctx context.Context, filter entities.RouteFilter) (*dto.BoardDTO, error) {
	f.lastFilter = filter
	return f.board, f.err
}

func (f *fakeBoardService) GetBoardByFuncionario(ctx context.Context, funcionario string, filter entities.RouteFilter) (*dto.BoardDTO, error) {
	f.lastFilter = filter
	return f.board, f.err
}

var _ services.BoardServiceInterface = (*fakeBoardService)(nil)

type fakeSyncService struct {
	pendingID string
	entries   []repositories.PendingRoute
	result    *dto.SyncResultDTO
	err       error

	replayCalls chan struct{}
}

func (f *fakeSyncService) EnqueueRoute(ctx context.Context, payload dto.CreateRouteDTO) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.pendingID, nil
}

func (f *fakeSyncService) PendingRoutes(ctx context.Context) ([]repositories.PendingRoute, error) {
	return f.entries, f.err
}

func (f *fakeSyncService) Replay(ctx context.Context) (*dto.SyncResultDTO, error) {
	if f.replayCalls != nil {
		f.replayCalls <- struct{}{}
	}
	return f.result, f.err
}

var _ services.SyncServiceInterface = (*fakeSyncService)(nil)

type fakeImporterService struct {
	result *dto.ImportResultDTO
	err    error
}

func (f *fakeImporterService) ImportRoutes(ctx context.Context, file io.Reader) (*dto.ImportResultDTO, error) {
	return f.result, f.err
}

var _ services.ImporterServiceInterface = (*fakeImporterService)(nil)
