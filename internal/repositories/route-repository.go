package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"route-system/internal/dto"
	apperrors "route-system/pkg/errors"
	"route-system/pkg/utils"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type dbRoute struct {
	ID           uint64
	SubmissionID sql.NullString
	Colaborador  string
	Funcionario  string
	Endereco     string
	Numero       string
	Complemento  sql.NullString
	Bairro       sql.NullString
	Cidade       sql.NullString
	Estado       sql.NullString
	Cep          sql.NullString
	Observacao   sql.NullString
	DataEntrega  sql.NullString
	Prioridade   sql.NullString
	Status       string
	Origem       string
	DataCriacao  time.Time
	ExecutedAt   sql.NullTime
}

func (db *dbRoute) ToDTO() dto.RouteDTO {
	executedAt := null.String{}
	if db.ExecutedAt.Valid {
		executedAt = null.StringFrom(db.ExecutedAt.Time.UTC().Format(time.RFC3339))
	}
	return dto.RouteDTO{
		ID:           db.ID,
		SubmissionID: utils.NullStringToString(db.SubmissionID),
		Colaborador:  db.Colaborador,
		Funcionario:  db.Funcionario,
		Endereco:     db.Endereco,
		Numero:       db.Numero,
		Complemento:  utils.NullStringToString(db.Complemento),
		Bairro:       utils.NullStringToString(db.Bairro),
		Cidade:       utils.NullStringToString(db.Cidade),
		Estado:       utils.NullStringToString(db.Estado),
		Cep:          utils.NullStringToString(db.Cep),
		Observacao:   utils.NullStringToString(db.Observacao),
		DataEntrega:  utils.NullStringToString(db.DataEntrega),
		Prioridade:   utils.NullStringToString(db.Prioridade),
		Status:       db.Status,
		Origem:       db.Origem,
		DataCriacao:  db.DataCriacao.Local().Format("2006-01-02 15:04:05"),
		ExecutedAt:   executedAt,
	}
}

const (
	routeTable  = "routes"
	routeFields = "id, submission_id, colaborador, funcionario, endereco, numero, complemento, bairro, cidade, estado, cep, observacao, data_entrega, prioridade, status, origem, data_criacao, executed_at"
)

var routeBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type RouteRepositoryInterface interface {
	GetRoutes(ctx context.Context) ([]dto.RouteDTO, error)
	GetRoutesByFuncionario(ctx context.Context, funcionario string) ([]dto.RouteDTO, error)
	FindRoute(ctx context.Context, id uint64) (*dto.RouteDTO, error)
	SubmissionIDExists(ctx context.Context, submissionID string) (bool, error)
	CreateRoute(ctx context.Context, payload dto.CreateRouteDTO) (uint64, error)
	UpdateRoute(ctx context.Context, id uint64, payload dto.UpdateRouteDTO) error
	DeleteRoute(ctx context.Context, id uint64) error
	DeleteAllRoutes(ctx context.Context) (int64, error)
	DeleteRoutesByFuncionario(ctx context.Context, funcionario string) (int64, error)
}

type routeRepository struct{ storage *pgxpool.Pool }

func NewRouteRepository(storage *pgxpool.Pool) RouteRepositoryInterface {
	return &routeRepository{storage: storage}
}

func (r *routeRepository) scanRoutes(rows pgx.Rows) ([]dto.RouteDTO, error) {
	defer rows.Close()

	routes := make([]dto.RouteDTO, 0)
	for rows.Next() {
		var dbRow dbRoute
		if err := rows.Scan(
			&dbRow.ID, &dbRow.SubmissionID, &dbRow.Colaborador, &dbRow.Funcionario,
			&dbRow.Endereco, &dbRow.Numero, &dbRow.Complemento, &dbRow.Bairro,
			&dbRow.Cidade, &dbRow.Estado, &dbRow.Cep, &dbRow.Observacao,
			&dbRow.DataEntrega, &dbRow.Prioridade, &dbRow.Status, &dbRow.Origem,
			&dbRow.DataCriacao, &dbRow.ExecutedAt,
		); err != nil {
			return nil, err
		}
		routes = append(routes, dbRow.ToDTO())
	}
	return routes, rows.Err()
}

func (r *routeRepository) GetRoutes(ctx context.Context) ([]dto.RouteDTO, error) {
	query, args, err := routeBuilder.
		Select(routeFields).
		From(routeTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return r.scanRoutes(rows)
}

func (r *routeRepository) GetRoutesByFuncionario(ctx context.Context, funcionario string) ([]dto.RouteDTO, error) {
	query, args, err := routeBuilder.
		Select(routeFields).
		From(routeTable).
		Where(sq.Eq{"funcionario": funcionario}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return r.scanRoutes(rows)
}

func (r *routeRepository) FindRoute(ctx context.Context, id uint64) (*dto.RouteDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", routeFields, routeTable)
	var dbRow dbRoute
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&dbRow.ID, &dbRow.SubmissionID, &dbRow.Colaborador, &dbRow.Funcionario,
		&dbRow.Endereco, &dbRow.Numero, &dbRow.Complemento, &dbRow.Bairro,
		&dbRow.Cidade, &dbRow.Estado, &dbRow.Cep, &dbRow.Observacao,
		&dbRow.DataEntrega, &dbRow.Prioridade, &dbRow.Status, &dbRow.Origem,
		&dbRow.DataCriacao, &dbRow.ExecutedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	routeDTO := dbRow.ToDTO()
	return &routeDTO, nil
}

func (r *routeRepository) SubmissionIDExists(ctx context.Context, submissionID string) (bool, error) {
	var exists bool
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE submission_id = $1)", routeTable)
	if err := r.storage.QueryRow(ctx, query, submissionID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *routeRepository) CreateRoute(ctx context.Context, payload dto.CreateRouteDTO) (uint64, error) {
	query := fmt.Sprintf(`INSERT INTO %s
		(submission_id, colaborador, funcionario, endereco, numero, complemento, bairro, cidade, estado, cep, observacao, data_entrega, prioridade, status, origem)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`, routeTable)

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		emptyToNull(payload.SubmissionID),
		payload.Colaborador,
		payload.Funcionario,
		payload.Endereco,
		payload.Numero,
		emptyToNull(payload.Complemento),
		emptyToNull(payload.Bairro),
		emptyToNull(payload.Cidade),
		emptyToNull(payload.Estado),
		emptyToNull(payload.Cep),
		emptyToNull(payload.Observacao),
		emptyToNull(payload.DataEntrega),
		emptyToNull(payload.Prioridade),
		payload.Status,
		payload.Origem,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, apperrors.ErrConflict
		}
		return 0, err
	}
	return id, nil
}

func (r *routeRepository) UpdateRoute(ctx context.Context, id uint64, payload dto.UpdateRouteDTO) error {
	var setClauses []string
	var args []interface{}
	argID := 1

	addSet := func(col string, val interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, argID))
		args = append(args, val)
		argID++
	}

	if payload.SubmissionID != nil {
		addSet("submission_id", emptyToNull(*payload.SubmissionID))
	}
	if payload.Colaborador != nil {
		addSet("colaborador", *payload.Colaborador)
	}
	if payload.Funcionario != nil {
		addSet("funcionario", *payload.Funcionario)
	}
	if payload.Endereco != nil {
		addSet("endereco", *payload.Endereco)
	}
	if payload.Numero != nil {
		addSet("numero", *payload.Numero)
	}
	if payload.Complemento != nil {
		addSet("complemento", emptyToNull(*payload.Complemento))
	}
	if payload.Bairro != nil {
		addSet("bairro", emptyToNull(*payload.Bairro))
	}
	if payload.Cidade != nil {
		addSet("cidade", emptyToNull(*payload.Cidade))
	}
	if payload.Estado != nil {
		addSet("estado", emptyToNull(*payload.Estado))
	}
	if payload.Cep != nil {
		addSet("cep", emptyToNull(*payload.Cep))
	}
	if payload.Observacao != nil {
		addSet("observacao", emptyToNull(*payload.Observacao))
	}
	if payload.DataEntrega != nil {
		addSet("data_entrega", emptyToNull(*payload.DataEntrega))
	}
	if payload.Prioridade != nil {
		addSet("prioridade", emptyToNull(*payload.Prioridade))
	}
	if payload.Status != nil {
		addSet("status", *payload.Status)
	}
	if payload.ExecutedAt != nil {
		if *payload.ExecutedAt == "" {
			addSet("executed_at", nil)
		} else {
			t, err := time.Parse(time.RFC3339, *payload.ExecutedAt)
			if err != nil {
				return apperrors.NewHttpError(400, "executedAt deve estar no formato RFC3339", err, nil)
			}
			addSet("executed_at", t)
		}
	}

	if len(setClauses) == 0 {
		return apperrors.ErrBadRequest
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		routeTable, strings.Join(setClauses, ", "), argID)
	args = append(args, id)

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrConflict
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *routeRepository) DeleteRoute(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", routeTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *routeRepository) DeleteAllRoutes(ctx context.Context) (int64, error) {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s", routeTable))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

func (r *routeRepository) DeleteRoutesByFuncionario(ctx context.Context, funcionario string) (int64, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE funcionario = $1", routeTable)
	result, err := r.storage.Exec(ctx, query, funcionario)
	if err != nil {
		return 0, err
	}
	if result.RowsAffected() == 0 {
		return 0, apperrors.ErrNotFound
	}
	return result.RowsAffected(), nil
}

// emptyToNull mantém colunas opcionais como NULL em vez de string vazia.
func emptyToNull(s string) interface{} {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
