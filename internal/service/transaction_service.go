package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	apperrors "budgetbuddy/internal/errors"
	"budgetbuddy/internal/model"
	"budgetbuddy/internal/repository"
)

// CreateTransactionInput carries the fields for a new transaction.
type CreateTransactionInput struct {
	CategoryID uint
	Amount     decimal.Decimal
	Currency   string
	Note       string
	Date       time.Time
}

// UpdateTransactionInput carries partial updates; nil fields are left unchanged.
type UpdateTransactionInput struct {
	CategoryID *uint
	Amount     *decimal.Decimal
	Currency   *string
	Note       *string
	Date       *time.Time
}

// TransactionService handles user-scoped transaction CRUD.
type TransactionService interface {
	Create(ctx context.Context, userID uint, in CreateTransactionInput) (*model.Transaction, error)
	List(ctx context.Context, userID uint) ([]model.Transaction, error)
	Get(ctx context.Context, userID, id uint) (*model.Transaction, error)
	Update(ctx context.Context, userID, id uint, in UpdateTransactionInput) (*model.Transaction, error)
	Delete(ctx context.Context, userID, id uint) error
}

type transactionService struct {
	txRepo       repository.TransactionRepository
	categoryRepo repository.CategoryRepository
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txRepo repository.TransactionRepository, categoryRepo repository.CategoryRepository) TransactionService {
	return &transactionService{txRepo: txRepo, categoryRepo: categoryRepo}
}

// Create records a new transaction for the user.
func (s *transactionService) Create(ctx context.Context, userID uint, in CreateTransactionInput) (*model.Transaction, error) {
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.ErrInvalidAmount
	}
	if _, err := s.categoryRepo.FindByID(ctx, in.CategoryID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}

	currency := in.Currency
	if currency == "" {
		currency = model.DefaultCurrency
	}

	tx := &model.Transaction{
		UserID:     userID,
		CategoryID: in.CategoryID,
		Amount:     in.Amount,
		Currency:   currency,
		Note:       in.Note,
		Date:       in.Date,
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":        userID,
		"transaction_id": tx.ID,
		"amount":         tx.Amount,
	}).Info("transaction created")

	// Reload with the category joined for the response.
	return s.txRepo.FindByID(ctx, userID, tx.ID)
}

// List returns all transactions of the user with categories joined.
func (s *transactionService) List(ctx context.Context, userID uint) ([]model.Transaction, error) {
	return s.txRepo.FindByUser(ctx, userID)
}

// Get returns one transaction. Rows owned by other users surface as not found.
func (s *transactionService) Get(ctx context.Context, userID, id uint) (*model.Transaction, error) {
	tx, err := s.txRepo.FindByID(ctx, userID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("find transaction: %w", err)
	}
	return tx, nil
}

// Update applies partial changes to a transaction owned by the user.
func (s *transactionService) Update(ctx context.Context, userID, id uint, in UpdateTransactionInput) (*model.Transaction, error) {
	tx, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if in.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *in.CategoryID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, apperrors.ErrCategoryNotFound
			}
			return nil, fmt.Errorf("find category: %w", err)
		}
		tx.CategoryID = *in.CategoryID
	}
	if in.Amount != nil {
		if in.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, apperrors.ErrInvalidAmount
		}
		tx.Amount = *in.Amount
	}
	if in.Currency != nil {
		tx.Currency = *in.Currency
	}
	if in.Note != nil {
		tx.Note = *in.Note
	}
	if in.Date != nil {
		tx.Date = *in.Date
	}

	if err := s.txRepo.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":        userID,
		"transaction_id": tx.ID,
	}).Info("transaction updated")

	return s.txRepo.FindByID(ctx, userID, tx.ID)
}

// Delete removes a transaction owned by the user.
func (s *transactionService) Delete(ctx context.Context, userID, id uint) error {
	if err := s.txRepo.Delete(ctx, userID, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrTransactionNotFound
		}
		return fmt.Errorf("delete transaction: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":        userID,
		"transaction_id": id,
	}).Info("transaction deleted")

	return nil
}
