package postgresql

import (
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// RunMigrations aplica as migrações SQL do diretório informado usando o goose.
// O goose trabalha sobre database/sql, então abrimos uma conexão pelo adapter
// stdlib do pgx a partir da mesma configuração do pool.
func RunMigrations(pool *pgxpool.Pool, dir string) error {
	db := sql.OpenDB(stdlib.GetPoolConnector(pool))
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose: dialeto inválido: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("goose: falha ao aplicar migrações: %w", err)
	}
	return nil
}
