package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminpanel/internal/auth"
	"adminpanel/internal/config"
	"adminpanel/internal/handler"
	"adminpanel/internal/model"
)

const testSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

type stubAuthService struct {
	token string
}

func (s *stubAuthService) Register(ctx context.Context, firstName, lastName string, age int, email, password string) error {
	return nil
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.token, nil
}

type stubUserService struct{}

func (s *stubUserService) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	user.ID = 1
	return user, nil
}

func (s *stubUserService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	return &model.User{ID: id, FirstName: "Ann", LastName: "Lee", Email: "ann@x.com"}, nil
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return []model.User{{ID: 1, Email: "ann@x.com"}}, nil
}

func (s *stubUserService) UpdateUser(ctx context.Context, id uint, firstName, lastName string, age int) error {
	return nil
}

func (s *stubUserService) DeleteUser(ctx context.Context, id uint) error {
	return nil
}

func newTestServer(t *testing.T, jwtService *auth.JWTService, token string) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:       testSecret,
		JWTExpiresHours: 1,
	}

	e := echo.New()
	authHandler := handler.NewAuthHandler(&stubAuthService{token: token}, jwtService.Expiry())
	userHandler := handler.NewUserHandler(&stubUserService{})
	seedHandler := handler.NewSeedHandler(&stubAuthService{})
	Register(e, cfg, authHandler, userHandler, seedHandler)
	return e
}

func TestProtectedRoute_CookieToken(t *testing.T) {
	jwtService := auth.NewJWTService(testSecret, time.Hour)
	token, err := jwtService.GenerateToken(1)
	require.NoError(t, err)

	expiredService := auth.NewJWTService(testSecret, -time.Hour)
	expired, err := expiredService.GenerateToken(1)
	require.NoError(t, err)

	e := newTestServer(t, jwtService, token)

	tests := []struct {
		name     string
		cookie   string
		wantCode int
	}{
		{name: "valid token", cookie: token, wantCode: http.StatusOK},
		{name: "tampered token", cookie: token + "x", wantCode: http.StatusUnauthorized},
		{name: "truncated token", cookie: token[:len(token)/2], wantCode: http.StatusUnauthorized},
		{name: "expired token", cookie: expired, wantCode: http.StatusUnauthorized},
		{name: "absent token", cookie: "", wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/users/1", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: handler.SessionCookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestProtectedRoute_IgnoresAuthorizationHeader(t *testing.T) {
	jwtService := auth.NewJWTService(testSecret, time.Hour)
	token, err := jwtService.GenerateToken(1)
	require.NoError(t, err)

	e := newTestServer(t, jwtService, token)

	// The validator reads the session cookie only; a bearer header alone is
	// an anonymous request.
	req := httptest.NewRequest(http.MethodGet, "/api/users/1", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPublicRoutesNeedNoToken(t *testing.T) {
	jwtService := auth.NewJWTService(testSecret, time.Hour)
	e := newTestServer(t, jwtService, "unused")

	for _, path := range []string{"/api/users", "/healthz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestCreateUserRouteNeedsNoToken(t *testing.T) {
	jwtService := auth.NewJWTService(testSecret, time.Hour)
	e := newTestServer(t, jwtService, "unused")

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"firstName":"Ann","lastName":"Lee","age":30,"email":"ann@x.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUnmatchedAPIPathIsNotFound(t *testing.T) {
	jwtService := auth.NewJWTService(testSecret, time.Hour)
	e := newTestServer(t, jwtService, "unused")

	// The session middleware guards its route only; an unknown path or
	// method must not answer 401.
	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodPatch, "/api/users/1", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestLoginThenProtectedRequest(t *testing.T) {
	jwtService := auth.NewJWTService(testSecret, time.Hour)
	token, err := jwtService.GenerateToken(1)
	require.NoError(t, err)

	e := newTestServer(t, jwtService, token)

	loginReq := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"ann@x.com","password":"Secret123!"}`))
	loginReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	loginRec := httptest.NewRecorder()
	e.ServeHTTP(loginRec, loginReq)
	require.Equal(t, http.StatusOK, loginRec.Code)

	cookies := loginRec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/api/users/1", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
