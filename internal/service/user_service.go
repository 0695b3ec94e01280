package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"budgetbuddy/internal/cache"
	apperrors "budgetbuddy/internal/errors"
	"budgetbuddy/internal/model"
	"budgetbuddy/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UpdateProfileInput carries partial profile changes; nil fields are left unchanged.
type UpdateProfileInput struct {
	Name     *string
	Email    *string
	Password *string
}

// UserService handles user management operations.
type UserService interface {
	Get(ctx context.Context, id uint) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	UpdateProfile(ctx context.Context, id uint, in UpdateProfileInput) (*model.User, error)
	Delete(ctx context.Context, id uint) error
	SetStatus(ctx context.Context, id uint, status string) (*model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService creates a new user service.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// Get retrieves a user by ID with caching.
func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

// List lists all users.
func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// UpdateProfile applies partial changes to the user's own profile.
func (s *userService) UpdateProfile(ctx context.Context, id uint, in UpdateProfileInput) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))

	logrus.WithField("user_id", id).Info("profile updated")
	return user, nil
}

// Delete removes a user. Owned transactions cascade away.
func (s *userService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))

	logrus.WithField("user_id", id).Info("user deleted")
	return nil
}

// SetStatus transitions a user's account status (active, muted, banned).
func (s *userService) SetStatus(ctx context.Context, id uint, status string) (*model.User, error) {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("update status: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))

	logrus.WithFields(logrus.Fields{"user_id": id, "status": status}).Info("user status changed")
	return s.repo.FindByID(ctx, id)
}
