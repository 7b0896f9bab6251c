package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "adminpanel/internal/errors"
	"adminpanel/internal/model"
	"adminpanel/internal/service"
)

// UserHandler bundles the admin CRUD handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// UpdateUserRequest carries the mutable display fields of a user record.
type UpdateUserRequest struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Age       int    `json:"age" validate:"gte=0"`
}

// CreateUser godoc
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param user body model.User true "User payload"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var user model.User
	if err := c.Bind(&user); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	created, err := h.svc.CreateUser(c.Request().Context(), &user)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	user, err := h.svc.GetUser(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Update a user's display fields
// @Tags users
// @Accept json
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Updated fields"
// @Success 204 {string} string ""
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ID != 0 && req.ID != uint(id) {
		return echo.NewHTTPError(http.StatusBadRequest, "id mismatch")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.svc.UpdateUser(c.Request().Context(), uint(id), req.FirstName, req.LastName, req.Age); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Param id path int true "User ID"
// @Success 204 {string} string ""
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteUser(c.Request().Context(), uint(id)); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
