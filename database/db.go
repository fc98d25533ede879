package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"

	"guidely/config"
)

// DB is the global Postgres connection pool.
var DB *sql.DB

// InitDB initializes the Postgres connection and ensures the schema exists.
func InitDB() {
	db, err := sql.Open("postgres", config.AppConfig.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open Postgres connection: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		log.Fatalf("failed to ping Postgres: %v", err)
	}

	DB = db
	if err := createTablesIfNotExist(ctx); err != nil {
		log.Fatalf("failed to prepare schema: %v", err)
	}
	log.Println("Connected to Postgres successfully!")
}

// GetDB returns the global connection pool.
func GetDB() *sql.DB {
	if DB == nil {
		log.Fatal("database not initialized, call InitDB first")
	}
	return DB
}

func createTablesIfNotExist(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS guide (
			guide_id        SERIAL PRIMARY KEY,
			language_spoken TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS booking (
			session_id   TEXT PRIMARY KEY,
			user_id      TEXT NOT NULL,
			guide_id     INTEGER REFERENCES guide (guide_id),
			name         TEXT,
			email        TEXT,
			language     TEXT NOT NULL DEFAULT '',
			booking_date DATE,
			duration     TEXT,
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS interaction (
			id         SERIAL PRIMARY KEY,
			session_id TEXT NOT NULL,
			intent     TEXT NOT NULL,
			field      TEXT NOT NULL,
			value      TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, stmt := range statements {
		if _, err := DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement failed: %w", err)
		}
	}
	return nil
}
