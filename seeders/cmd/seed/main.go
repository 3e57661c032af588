package main

import (
	"log"

	"route-system/pkg/config"
	"route-system/pkg/database/postgresql"
	"route-system/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 Seeders (carga inicial do banco)            ")
	log.Println("======================================================")

	cfg := config.New()
	log.Println("📦 DSN em uso:", cfg.Postgres.DSN)

	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	if err := postgresql.RunMigrations(dbPool, "migrations"); err != nil {
		log.Fatalf("❌ Erro ao aplicar as migrações: %v", err)
	}

	seeders.SeedAdminUser(dbPool)

	log.Println("✅ Carga inicial concluída.")
	log.Println("======================================================")
}
