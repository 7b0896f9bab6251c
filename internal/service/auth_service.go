package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"adminpanel/internal/auth"
	apperrors "adminpanel/internal/errors"
	"adminpanel/internal/model"
	"adminpanel/internal/repository"
)

// AuthService handles credential registration and verification.
type AuthService interface {
	Register(ctx context.Context, firstName, lastName string, age int, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	userRepo   repository.UserRepository
	hasher     auth.PasswordHasher
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, hasher auth.PasswordHasher, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
	}
}

// Register hashes the password and persists a new user. A duplicate email
// surfaces as apperrors.ErrEmailTaken; it is never swallowed.
func (s *authService) Register(ctx context.Context, firstName, lastName string, age int, email, password string) error {
	hash, err := s.hasher.Generate(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := model.NewUser(firstName, lastName, age, email, hash)

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			return apperrors.ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Login verifies credentials and returns a signed token. An unknown email and
// a wrong password produce the same error, so the response does not reveal
// which accounts exist.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}
