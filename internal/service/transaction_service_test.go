package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "budgetbuddy/internal/errors"
	"budgetbuddy/internal/model"
)

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryRepository) FirstOrCreate(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func TestTransactionService_Create(t *testing.T) {
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		input         CreateTransactionInput
		setupMocks    func(*MockTransactionRepository, *MockCategoryRepository)
		expectedError error
		checkResult   func(*testing.T, *model.Transaction)
	}{
		{
			name: "successful creation with default currency",
			input: CreateTransactionInput{
				CategoryID: 2,
				Amount:     decimal.RequireFromString("45.50"),
				Date:       date,
			},
			setupMocks: func(txRepo *MockTransactionRepository, catRepo *MockCategoryRepository) {
				catRepo.On("FindByID", mock.Anything, uint(2)).
					Return(&model.Category{ID: 2, Name: "Food", Type: model.CategoryTypeExpense}, nil)
				txRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Transaction")).
					Run(func(args mock.Arguments) {
						tx := args.Get(1).(*model.Transaction)
						assert.Equal(t, model.DefaultCurrency, tx.Currency)
						tx.ID = 11
					}).
					Return(nil)
				txRepo.On("FindByID", mock.Anything, uint(1), uint(11)).
					Return(&model.Transaction{
						ID:         11,
						UserID:     1,
						CategoryID: 2,
						Amount:     decimal.RequireFromString("45.50"),
						Currency:   model.DefaultCurrency,
						Date:       date,
						Category:   model.Category{ID: 2, Name: "Food", Type: model.CategoryTypeExpense},
					}, nil)
			},
			checkResult: func(t *testing.T, tx *model.Transaction) {
				assert.Equal(t, uint(11), tx.ID)
				assert.Equal(t, "TND", tx.Currency)
				assert.Equal(t, "Food", tx.Category.Name)
			},
		},
		{
			name: "zero amount rejected",
			input: CreateTransactionInput{
				CategoryID: 2,
				Amount:     decimal.Zero,
				Date:       date,
			},
			setupMocks:    func(*MockTransactionRepository, *MockCategoryRepository) {},
			expectedError: apperrors.ErrInvalidAmount,
		},
		{
			name: "unknown category rejected",
			input: CreateTransactionInput{
				CategoryID: 99,
				Amount:     decimal.RequireFromString("10"),
				Date:       date,
			},
			setupMocks: func(txRepo *MockTransactionRepository, catRepo *MockCategoryRepository) {
				catRepo.On("FindByID", mock.Anything, uint(99)).
					Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txRepo := new(MockTransactionRepository)
			catRepo := new(MockCategoryRepository)
			tt.setupMocks(txRepo, catRepo)

			svc := NewTransactionService(txRepo, catRepo)
			tx, err := svc.Create(context.Background(), 1, tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, tx)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, tx)
				if tt.checkResult != nil {
					tt.checkResult(t, tx)
				}
			}

			txRepo.AssertExpectations(t)
			catRepo.AssertExpectations(t)
		})
	}
}

func TestTransactionService_Get_ForeignRowIsNotFound(t *testing.T) {
	txRepo := new(MockTransactionRepository)
	catRepo := new(MockCategoryRepository)

	// A row owned by another user never matches the scoped query.
	txRepo.On("FindByID", mock.Anything, uint(1), uint(42)).
		Return(nil, gorm.ErrRecordNotFound)

	svc := NewTransactionService(txRepo, catRepo)
	tx, err := svc.Get(context.Background(), 1, 42)

	assert.ErrorIs(t, err, apperrors.ErrTransactionNotFound)
	assert.Nil(t, tx)
	txRepo.AssertExpectations(t)
}

func TestTransactionService_Update_PartialFields(t *testing.T) {
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	txRepo := new(MockTransactionRepository)
	catRepo := new(MockCategoryRepository)

	existing := &model.Transaction{
		ID:         11,
		UserID:     1,
		CategoryID: 2,
		Amount:     decimal.RequireFromString("45.50"),
		Currency:   "TND",
		Note:       "groceries",
		Date:       date,
	}
	txRepo.On("FindByID", mock.Anything, uint(1), uint(11)).Return(existing, nil).Once()

	newAmount := decimal.RequireFromString("60")
	txRepo.On("Update", mock.Anything, mock.MatchedBy(func(tx *model.Transaction) bool {
		return tx.Amount.Equal(newAmount) && tx.Note == "groceries" && tx.CategoryID == 2
	})).Return(nil)
	txRepo.On("FindByID", mock.Anything, uint(1), uint(11)).Return(&model.Transaction{
		ID:     11,
		UserID: 1,
		Amount: newAmount,
	}, nil).Once()

	svc := NewTransactionService(txRepo, catRepo)
	tx, err := svc.Update(context.Background(), 1, 11, UpdateTransactionInput{Amount: &newAmount})

	assert.NoError(t, err)
	assert.True(t, tx.Amount.Equal(newAmount))
	txRepo.AssertExpectations(t)
}

func TestTransactionService_Delete(t *testing.T) {
	txRepo := new(MockTransactionRepository)
	catRepo := new(MockCategoryRepository)

	txRepo.On("Delete", mock.Anything, uint(1), uint(5)).Return(gorm.ErrRecordNotFound)

	svc := NewTransactionService(txRepo, catRepo)
	err := svc.Delete(context.Background(), 1, 5)

	assert.ErrorIs(t, err, apperrors.ErrTransactionNotFound)
	txRepo.AssertExpectations(t)
}
