package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/saikrishna-79/portfolio-pro/pkg/auth"
)

func main() {
	fmt.Println("seeding owner account...")

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, using system environment variables")
	}

	dsn := os.Getenv("DB_DSN")
	ownerEmail := os.Getenv("OWNER_EMAIL")
	ownerPassword := os.Getenv("OWNER_PASSWORD")
	if dsn == "" || ownerEmail == "" || ownerPassword == "" {
		log.Fatal("DB_DSN, OWNER_EMAIL and OWNER_PASSWORD must be set")
	}

	hash, err := auth.HashPassword(ownerPassword)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	query := `
		INSERT INTO users (id, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET password_hash = $3
	`
	if _, err := pool.Exec(context.Background(), query, uuid.New(), ownerEmail, hash); err != nil {
		log.Fatalf("cannot upsert owner: %v", err)
	}

	fmt.Printf("owner '%s' seeded successfully\n", ownerEmail)
}
