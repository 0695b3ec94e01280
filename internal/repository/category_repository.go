package repository

import (
	"context"

	"gorm.io/gorm"

	"budgetbuddy/internal/model"
)

// CategoryRepository defines category persistence operations.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	FirstOrCreate(ctx context.Context, category *model.Category) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Create creates a new category.
func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// Update updates an existing category.
func (r *categoryRepository) Update(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete removes a category. Referencing transactions cascade at the schema level.
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindByID finds a category by ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// List lists all categories.
func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FirstOrCreate finds a category by name and type or creates it.
func (r *categoryRepository) FirstOrCreate(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).
		Where("name = ? AND type = ?", category.Name, category.Type).
		FirstOrCreate(category).Error
}
