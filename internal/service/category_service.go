package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"budgetbuddy/internal/cache"
	apperrors "budgetbuddy/internal/errors"
	"budgetbuddy/internal/model"
	"budgetbuddy/internal/repository"
)

const (
	categoryListCacheKey = "categories"
	categoryListCacheTTL = 5 * time.Minute
)

// CategoryService handles category CRUD. Categories are shared across users.
type CategoryService interface {
	Create(ctx context.Context, name string, categoryType model.CategoryType) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Get(ctx context.Context, id uint) (*model.Category, error)
	Update(ctx context.Context, id uint, name *string, categoryType *model.CategoryType) (*model.Category, error)
	Delete(ctx context.Context, id uint) error
}

type categoryService struct {
	repo  repository.CategoryRepository
	cache *cache.Client
}

// NewCategoryService creates a new category service.
func NewCategoryService(repo repository.CategoryRepository, cache *cache.Client) CategoryService {
	return &categoryService{repo: repo, cache: cache}
}

// Create adds a new category and invalidates the cached list.
func (s *categoryService) Create(ctx context.Context, name string, categoryType model.CategoryType) (*model.Category, error) {
	category := &model.Category{Name: name, Type: categoryType}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	_ = s.cache.Delete(ctx, categoryListCacheKey)
	return category, nil
}

// List returns all categories, served from cache when possible.
func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	if data, _ := s.cache.Get(ctx, categoryListCacheKey); data != nil {
		var cached []model.Category
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(categories); err == nil {
		_ = s.cache.Set(ctx, categoryListCacheKey, payload, categoryListCacheTTL)
	}
	return categories, nil
}

// Get returns one category by ID.
func (s *categoryService) Get(ctx context.Context, id uint) (*model.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

// Update applies partial changes to a category.
func (s *categoryService) Update(ctx context.Context, id uint, name *string, categoryType *model.CategoryType) (*model.Category, error) {
	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		category.Name = *name
	}
	if categoryType != nil {
		category.Type = *categoryType
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	_ = s.cache.Delete(ctx, categoryListCacheKey)
	return category, nil
}

// Delete removes a category. Referencing transactions cascade away.
func (s *categoryService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrCategoryNotFound
		}
		return fmt.Errorf("delete category: %w", err)
	}
	_ = s.cache.Delete(ctx, categoryListCacheKey)
	return nil
}
