package router

import (
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"adminpanel/internal/config"
	"adminpanel/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	if cfg.CORSAllowedOrigins != "" {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     strings.Split(cfg.CORSAllowedOrigins, ","),
			AllowCredentials: true,
		}))
	}

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.GET("/seed/users", seedHandler.SeedUsers)
	api.GET("/users", userHandler.ListUsers)
	api.POST("/users", userHandler.CreateUser)
	api.PUT("/users/:id", userHandler.UpdateUser)
	api.DELETE("/users/:id", userHandler.DeleteUser)

	// Secured routes carry the JWT middleware per route so unmatched paths
	// still get Echo's 404/405 handling. The token is read from the session
	// cookie only, never from the Authorization header.
	sessionAuth := echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "cookie:" + handler.SessionCookieName,
		ErrorHandler: func(c echo.Context, err error) error {
			// Both cases map to 401, but the logs keep an anonymous request
			// apart from a rejected credential.
			if _, cerr := c.Cookie(handler.SessionCookieName); cerr != nil {
				log.Printf("auth: anonymous request to protected route %s", c.Path())
			} else {
				log.Printf("auth: rejected session token on %s: %v", c.Path(), err)
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing session token")
		},
	})

	api.GET("/users/:id", userHandler.GetUser, sessionAuth)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
