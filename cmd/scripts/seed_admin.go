package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/zerocycle/zerocycle-admin-backend/internal/config"
	"github.com/zerocycle/zerocycle-admin-backend/internal/models"
	mongorepo "github.com/zerocycle/zerocycle-admin-backend/internal/repositories/mongodb"
	"github.com/zerocycle/zerocycle-admin-backend/pkg/mongodb"
)

// seed_admin creates (or resets) the dashboard admin account. The backend
// ships with exactly one admin identity; run this once against a fresh
// database, or again to rotate the password.
//
// Usage: seed_admin <email> <password> [name]
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	if len(os.Args) < 3 {
		log.Fatal("usage: seed_admin <email> <password> [name]")
	}
	email := os.Args[1]
	password := os.Args[2]
	name := "Administrator"
	if len(os.Args) > 3 {
		name = os.Args[3]
	}

	mongoURI := config.GetEnv("MONGODB_URI", "mongodb://localhost:27017")
	dbName := config.GetEnv("MONGODB_DATABASE", "zerocycle")

	client, err := mongodb.NewClient(mongoURI)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo := mongorepo.NewAdminUserRepository(client.Database(dbName))
	if err := repo.Upsert(ctx, &models.AdminUser{
		Name:     name,
		Email:    email,
		Password: string(hash),
	}); err != nil {
		log.Fatalf("failed to upsert admin user: %v", err)
	}
	log.Printf("admin user %s is ready", email)
}
