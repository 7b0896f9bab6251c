package main

import (
	"log"
	"net/http"
	"time"

	_ "adminpanel/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"adminpanel/internal/auth"
	"adminpanel/internal/cache"
	"adminpanel/internal/config"
	"adminpanel/internal/db"
	"adminpanel/internal/handler"
	"adminpanel/internal/model"
	"adminpanel/internal/repository"
	"adminpanel/internal/router"
	"adminpanel/internal/service"
)

// @title Admin Panel API
// @version 1.0
// @description Administrative panel API with user management and cookie-based JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(gormDB)

	hasher := auth.NewPasswordHasher()
	jwtService := auth.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTExpiresHours)*time.Hour)

	authService := service.NewAuthService(userRepo, hasher, jwtService)
	userService := service.NewUserService(userRepo, cacheClient)

	authHandler := handler.NewAuthHandler(authService, jwtService.Expiry())
	userHandler := handler.NewUserHandler(userService)
	seedHandler := handler.NewSeedHandler(authService)

	router.Register(e, cfg, authHandler, userHandler, seedHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
