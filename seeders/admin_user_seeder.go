package seeders

import (
	"context"
	"errors"
	"log"
	"os"

	"route-system/internal/entities"
	"route-system/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedAdminUser cria o usuário administrador padrão, usado pelas operações
// protegidas (limpeza em massa e importação de planilha). Idempotente: se o
// login já existir, não faz nada.
func SeedAdminUser(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Criando o usuário administrador padrão...")

	login := envOrDefault("ADMIN_LOGIN", "admin")
	senha := envOrDefault("ADMIN_PASSWORD", "admin123")

	var existingID uint64
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE login = $1", login).Scan(&existingID)
	if err == nil {
		log.Printf("    - Usuário '%s' já existe. Pulando.", login)
		return
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		log.Fatalf("❌ Erro ao verificar o usuário existente: %v", err)
	}

	hash, err := utils.HashPassword(senha)
	if err != nil {
		log.Fatalf("❌ Erro ao gerar o hash da senha: %v", err)
	}

	_, err = db.Exec(ctx,
		"INSERT INTO users (login, password, nome, perfil) VALUES ($1, $2, $3, $4)",
		login, hash, "Administrador", entities.PerfilAdmin,
	)
	if err != nil {
		log.Fatalf("❌ Erro ao criar o usuário administrador: %v", err)
	}

	log.Printf("✅ Usuário '%s' criado com sucesso!", login)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
