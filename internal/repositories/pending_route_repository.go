package repositories

import (
	"context"
	"encoding/json"

	"route-system/internal/dto"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const pendingRoutesKey = "pending_routes"

// PendingRoute é uma rota que falhou ao ser enviada e aguarda o replay.
type PendingRoute struct {
	ID    string             `json:"id"`
	Route dto.CreateRouteDTO `json:"route"`
}

// PendingRouteRepositoryInterface é a fila durável de escritas offline:
// um registro por rota enfileirada, drenada pelo gatilho de sincronização.
type PendingRouteRepositoryInterface interface {
	Enqueue(ctx context.Context, route dto.CreateRouteDTO) (string, error)
	List(ctx context.Context) ([]PendingRoute, error)
	Remove(ctx context.Context, id string) error
}

type pendingRouteRepository struct {
	client *redis.Client
}

func NewPendingRouteRepository(client *redis.Client) PendingRouteRepositoryInterface {
	return &pendingRouteRepository{client: client}
}

func (r *pendingRouteRepository) Enqueue(ctx context.Context, route dto.CreateRouteDTO) (string, error) {
	entry := PendingRoute{
		ID:    uuid.NewString(),
		Route: route,
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return "", err
	}
	if err := r.client.HSet(ctx, pendingRoutesKey, entry.ID, raw).Err(); err != nil {
		return "", err
	}
	return entry.ID, nil
}

func (r *pendingRouteRepository) List(ctx context.Context) ([]PendingRoute, error) {
	raw, err := r.client.HGetAll(ctx, pendingRoutesKey).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]PendingRoute, 0, len(raw))
	for _, v := range raw {
		var entry PendingRoute
		if err := json.Unmarshal([]byte(v), &entry); err != nil {
			// Registro corrompido não deve travar o replay dos demais.
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *pendingRouteRepository) Remove(ctx context.Context, id string) error {
	return r.client.HDel(ctx, pendingRoutesKey, id).Err()
}
