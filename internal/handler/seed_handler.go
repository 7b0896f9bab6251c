package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "adminpanel/internal/errors"
	"adminpanel/internal/service"
)

// SeedHandler fills the store with demo users for local development.
type SeedHandler struct {
	authService service.AuthService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(authService service.AuthService) *SeedHandler {
	return &SeedHandler{authService: authService}
}

type demoUser struct {
	FirstName string
	LastName  string
	Age       int
	Email     string
	Password  string
}

// DemoUsers is the canned data set used by both the seed endpoint and the
// seed CLI. Registration goes through AuthService so the stored hashes are
// real bcrypt hashes.
var DemoUsers = []demoUser{
	{"Ann", "Lee", 30, "ann@example.com", "Secret123!"},
	{"Bob", "Stone", 44, "bob@example.com", "Secret123!"},
	{"Cara", "Diaz", 27, "cara@example.com", "Secret123!"},
	{"Dan", "Okafor", 35, "dan@example.com", "Secret123!"},
}

// SeedUsers godoc
// @Summary Seed demo users
// @Tags seed
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed/users [get]
func (h *SeedHandler) SeedUsers(c echo.Context) error {
	ctx := c.Request().Context()

	created, skipped := 0, 0
	for _, u := range DemoUsers {
		err := h.authService.Register(ctx, u.FirstName, u.LastName, u.Age, u.Email, u.Password)
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrEmailTaken):
			skipped++
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
				Error: "failed to seed users",
				Code:  "SEED_FAILED",
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]int{
		"created": created,
		"skipped": skipped,
	})
}
