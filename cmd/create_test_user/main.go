package main

import (
	"context"
	"log"
	"os"
	"time"

	"todo_webapp/internal/db"
	"todo_webapp/internal/repository"
	"todo_webapp/internal/service"
)

// Dev utility: registers (or reuses) a test account and prints a token
// ready to paste into an Authorization header.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET not set")
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	users := repository.NewUserRepository(pool)
	tasks := repository.NewTaskRepository(pool)
	tokens := service.NewTokenService(secret, 24*time.Hour)
	accounts := service.NewAccountService(users, tasks, tokens)

	ctx := context.Background()
	const username = "testuser"
	const password = "testpass"

	token, err := accounts.Register(ctx, username, password)
	if err != nil {
		// existing account from a previous run is fine
		token, err = accounts.Login(ctx, username, password)
		if err != nil {
			log.Fatalf("login failed: %v", err)
		}
		log.Printf("reusing existing user %q", username)
	} else {
		log.Printf("user %q created", username)
	}

	u, err := users.GetByUsername(ctx, username)
	if err != nil {
		log.Fatalf("get user failed: %v", err)
	}
	log.Printf("id=%d username=%s created_at=%v", u.ID, u.Username, u.CreatedAt)
	log.Printf("token=%s", token)
}
