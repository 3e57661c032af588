package repositories

import (
	"context"
	"errors"
	"fmt"

	"route-system/internal/entities"
	apperrors "route-system/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	userTable  = "users"
	userFields = "id, login, password, nome, perfil, criado_em"
)

type UserRepositoryInterface interface {
	FindByLogin(ctx context.Context, login string) (*entities.User, error)
}

type userRepository struct{ storage *pgxpool.Pool }

func NewUserRepository(storage *pgxpool.Pool) UserRepositoryInterface {
	return &userRepository{storage: storage}
}

func (r *userRepository) FindByLogin(ctx context.Context, login string) (*entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE login = $1", userFields, userTable)
	var user entities.User
	err := r.storage.QueryRow(ctx, query, login).Scan(
		&user.ID, &user.Login, &user.Password, &user.Nome, &user.Perfil, &user.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
