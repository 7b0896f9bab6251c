package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"adminpanel/internal/cache"
	apperrors "adminpanel/internal/errors"
	"adminpanel/internal/model"
	"adminpanel/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes the admin CRUD operations over user records. It never
// touches PasswordHash; credentials are owned by AuthService.
type UserService interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id uint, firstName, lastName string, age int) error
	DeleteUser(ctx context.Context, id uint) error
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(user.ID))
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// UpdateUser mutates the display fields only. The password hash survives the
// update untouched.
func (s *userService) UpdateUser(ctx context.Context, id uint, firstName, lastName string, age int) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.Age = age

	if err := s.repo.Update(ctx, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
