package main

import (
	"context"
	"errors"
	"log"
	"time"

	"adminpanel/internal/auth"
	"adminpanel/internal/config"
	"adminpanel/internal/db"
	apperrors "adminpanel/internal/errors"
	"adminpanel/internal/handler"
	"adminpanel/internal/model"
	"adminpanel/internal/repository"
	"adminpanel/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	hasher := auth.NewPasswordHasher()
	jwtService := auth.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTExpiresHours)*time.Hour)
	authService := service.NewAuthService(userRepo, hasher, jwtService)

	ctx := context.Background()
	created, skipped := 0, 0
	for _, u := range handler.DemoUsers {
		err := authService.Register(ctx, u.FirstName, u.LastName, u.Age, u.Email, u.Password)
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrEmailTaken):
			log.Printf("Skipping %s: already registered", u.Email)
			skipped++
		default:
			log.Fatalf("Failed to seed %s: %v", u.Email, err)
		}
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New users created: %d", created)
	log.Printf("  - Existing users skipped: %d", skipped)
}
