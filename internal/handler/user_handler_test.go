package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "adminpanel/internal/errors"
	"adminpanel/internal/model"
)

// stubUserService satisfies service.UserService with canned results.
type stubUserService struct {
	createErr error
}

func (s *stubUserService) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	user.ID = 7
	return user, nil
}

func (s *stubUserService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	return &model.User{ID: id}, nil
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return nil, nil
}

func (s *stubUserService) UpdateUser(ctx context.Context, id uint, firstName, lastName string, age int) error {
	return nil
}

func (s *stubUserService) DeleteUser(ctx context.Context, id uint) error {
	return nil
}

func TestUserHandler_CreateUser(t *testing.T) {
	e := newTestEcho()
	h := NewUserHandler(&stubUserService{})

	body := `{"firstName":"Ann","lastName":"Lee","age":30,"email":"ann@x.com"}`
	rec := doJSON(e, h.CreateUser, http.MethodPost, "/api/users", body)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var created model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, uint(7), created.ID)
	assert.Equal(t, "Ann", created.FirstName)
	assert.Equal(t, "ann@x.com", created.Email)
}

func TestUserHandler_CreateUserFailures(t *testing.T) {
	tests := []struct {
		name     string
		svc      *stubUserService
		body     string
		wantCode int
	}{
		{
			name:     "duplicate email",
			svc:      &stubUserService{createErr: apperrors.ErrEmailTaken},
			body:     `{"firstName":"Ann","lastName":"Lee","age":30,"email":"ann@x.com"}`,
			wantCode: http.StatusConflict,
		},
		{
			name:     "malformed body",
			svc:      &stubUserService{},
			body:     `{"age":"thirty"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "store failure",
			svc:      &stubUserService{createErr: assert.AnError},
			body:     `{"firstName":"Ann","lastName":"Lee","age":30,"email":"ann@x.com"}`,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			h := NewUserHandler(tt.svc)

			rec := doJSON(e, h.CreateUser, http.MethodPost, "/api/users", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
