package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "adminpanel/internal/errors"
	"adminpanel/internal/service"
)

// SessionCookieName is the cookie carrying the signed session token. The
// validator middleware reads the token from this cookie only, never from the
// Authorization header.
const SessionCookieName = "api-cookies"

// AuthHandler handles the login and register endpoints.
type AuthHandler struct {
	authService service.AuthService
	tokenTTL    time.Duration
}

// NewAuthHandler creates a new auth handler. tokenTTL bounds the session
// cookie lifetime to the token validity window.
func NewAuthHandler(authService service.AuthService, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, tokenTTL: tokenTTL}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Age       int    `json:"age" validate:"gte=0"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {string} string ""
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.authService.Register(c.Request().Context(), req.FirstName, req.LastName, req.Age, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			return echo.NewHTTPError(http.StatusConflict, apperrors.ErrorResponse{
				Error: err.Error(),
				Code:  "EMAIL_TAKEN",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "failed to register user",
			Code:  "REGISTRATION_FAILED",
		})
	}

	return c.NoContent(http.StatusOK)
}

// Login godoc
// @Summary Login with email and password
// @Description On success the signed session token is set in the api-cookies cookie; the body is empty.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {string} string ""
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: err.Error(),
				Code:  "INVALID_CREDENTIALS",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "failed to login",
			Code:  "LOGIN_FAILED",
		})
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.tokenTTL),
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	return c.NoContent(http.StatusOK)
}
