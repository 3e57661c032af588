package services

import (
	"context"
	"fmt"
	"time"

	"route-system/internal/dto"
	"route-system/internal/entities"
	"route-system/internal/repositories"
	apperrors "route-system/pkg/errors"
)

// fakeRouteRepository guarda as rotas em memória e registra as mutações,
// o suficiente para exercitar os serviços sem banco.
type fakeRouteRepository struct {
	routes    []dto.RouteDTO
	listErr   error
	createErr error
	existsErr error

	created []dto.CreateRouteDTO
	updated map[uint64]dto.UpdateRouteDTO
	deleted []uint64
}

func newFakeRouteRepository(routes ...dto.RouteDTO) *fakeRouteRepository {
	return &fakeRouteRepository{
		routes:  routes,
		updated: make(map[uint64]dto.UpdateRouteDTO),
	}
}

func (f *fakeRouteRepository) GetRoutes(ctx context.Context) ([]dto.RouteDTO, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.routes, nil
}

func (f *fakeRouteRepository) GetRoutesByFuncionario(ctx context.Context, funcionario string) ([]dto.RouteDTO, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	result := make([]dto.RouteDTO, 0)
	for _, route := range f.routes {
		if route.Funcionario == funcionario {
			result = append(result, route)
		}
	}
	return result, nil
}

func (f *fakeRouteRepository) FindRoute(ctx context.Context, id uint64) (*dto.RouteDTO, error) {
	for i := range f.routes {
		if f.routes[i].ID == id {
			return &f.routes[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeRouteRepository) SubmissionIDExists(ctx context.Context, submissionID string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	for _, route := range f.routes {
		if route.SubmissionID == submissionID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRouteRepository) CreateRoute(ctx context.Context, payload dto.CreateRouteDTO) (uint64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	if payload.SubmissionID != "" {
		for _, route := range f.routes {
			if route.SubmissionID == payload.SubmissionID {
				return 0, apperrors.ErrConflict
			}
		}
	}
	f.created = append(f.created, payload)
	id := uint64(len(f.routes) + 1)
	f.routes = append(f.routes, dto.RouteDTO{
		ID:           id,
		SubmissionID: payload.SubmissionID,
		Colaborador:  payload.Colaborador,
		Funcionario:  payload.Funcionario,
		Endereco:     payload.Endereco,
		Numero:       payload.Numero,
		Status:       payload.Status,
		Origem:       payload.Origem,
	})
	return id, nil
}

func (f *fakeRouteRepository) UpdateRoute(ctx context.Context, id uint64, payload dto.UpdateRouteDTO) error {
	for _, route := range f.routes {
		if route.ID == id {
			f.updated[id] = payload
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (f *fakeRouteRepository) DeleteRoute(ctx context.Context, id uint64) error {
	for i, route := range f.routes {
		if route.ID == id {
			f.routes = append(f.routes[:i], f.routes[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (f *fakeRouteRepository) DeleteAllRoutes(ctx context.Context) (int64, error) {
	count := int64(len(f.routes))
	f.routes = nil
	return count, nil
}

func (f *fakeRouteRepository) DeleteRoutesByFuncionario(ctx context.Context, funcionario string) (int64, error) {
	kept := f.routes[:0:0]
	var count int64
	for _, route := range f.routes {
		if route.Funcionario == funcionario {
			count++
			continue
		}
		kept = append(kept, route)
	}
	if count == 0 {
		return 0, apperrors.ErrNotFound
	}
	f.routes = kept
	return count, nil
}

var _ repositories.RouteRepositoryInterface = (*fakeRouteRepository)(nil)

// fakeCacheRepository é um mapa em memória com a mesma interface do Redis.
type fakeCacheRepository struct {
	data    map[string]string
	getErr  error
	setErr  error
	deleted []string
}

func newFakeCacheRepository() *fakeCacheRepository {
	return &fakeCacheRepository{data: make(map[string]string)}
}

func (f *fakeCacheRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	default:
		f.data[key] = fmt.Sprintf("%v", v)
	}
	return nil
}

func (f *fakeCacheRepository) Get(ctx context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	v, ok := f.data[key]
	if !ok {
		return "", fmt.Errorf("chave %q não encontrada", key)
	}
	return v, nil
}

func (f *fakeCacheRepository) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
		f.deleted = append(f.deleted, key)
	}
	return nil
}

var _ repositories.CacheRepositoryInterface = (*fakeCacheRepository)(nil)

// fakePendingRouteRepository simula a fila durável de escritas offline.
type fakePendingRouteRepository struct {
	entries   []repositories.PendingRoute
	removed   []string
	listErr   error
	removeErr error
	nextID    int
}

func (f *fakePendingRouteRepository) Enqueue(ctx context.Context, route dto.CreateRouteDTO) (string, error) {
	f.nextID++
	id := fmt.Sprintf("pending-%d", f.nextID)
	f.entries = append(f.entries, repositories.PendingRoute{ID: id, Route: route})
	return id, nil
}

func (f *fakePendingRouteRepository) List(ctx context.Context) ([]repositories.PendingRoute, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]repositories.PendingRoute(nil), f.entries...), nil
}

func (f *fakePendingRouteRepository) Remove(ctx context.Context, id string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	for i, entry := range f.entries {
		if entry.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			break
		}
	}
	f.removed = append(f.removed, id)
	return nil
}

var _ repositories.PendingRouteRepositoryInterface = (*fakePendingRouteRepository)(nil)

// fakeUserRepository serve o fluxo de login.
type fakeUserRepository struct {
	users map[string]*entities.User
}

func (f *fakeUserRepository) FindByLogin(ctx context.Context, login string) (*entities.User, error) {
	user, ok := f.users[login]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

var _ repositories.UserRepositoryInterface = (*fakeUserRepository)(nil)
