package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"budgetbuddy/internal/model"
)

// MonthlyTotals holds the income and expense sums for one month.
type MonthlyTotals struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
}

// CategoryTotal is the summed expense amount for one category.
type CategoryTotal struct {
	Name  string
	Total decimal.Decimal
}

// TransactionRepository defines transaction persistence operations.
// Every read and write is scoped to the owning user so that foreign rows
// surface as record-not-found.
type TransactionRepository interface {
	Create(ctx context.Context, tx *model.Transaction) error
	Update(ctx context.Context, tx *model.Transaction) error
	Delete(ctx context.Context, userID, id uint) error
	FindByID(ctx context.Context, userID, id uint) (*model.Transaction, error)
	FindByUser(ctx context.Context, userID uint) ([]model.Transaction, error)
	FindRecent(ctx context.Context, userID uint, limit int) ([]model.Transaction, error)
	SumMonthByType(ctx context.Context, userID uint, month, year int) (*MonthlyTotals, error)
	SumMonthExpensesByCategory(ctx context.Context, userID uint, month, year int) ([]CategoryTotal, error)
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// Create creates a new transaction.
func (r *transactionRepository) Create(ctx context.Context, tx *model.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

// Update updates an existing transaction.
func (r *transactionRepository) Update(ctx context.Context, tx *model.Transaction) error {
	return r.db.WithContext(ctx).Save(tx).Error
}

// Delete removes a transaction owned by the given user.
func (r *transactionRepository) Delete(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.Transaction{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindByID finds a transaction by ID scoped to its owner, with category joined.
func (r *transactionRepository) FindByID(ctx context.Context, userID, id uint) (*model.Transaction, error) {
	var tx model.Transaction
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND id = ?", userID, id).
		First(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

// FindByUser lists all transactions of a user with categories joined.
func (r *transactionRepository) FindByUser(ctx context.Context, userID uint) ([]model.Transaction, error) {
	var txs []model.Transaction
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// FindRecent returns the most recent transactions of a user, newest first by
// transaction date then creation time.
func (r *transactionRepository) FindRecent(ctx context.Context, userID uint, limit int) ([]model.Transaction, error) {
	var txs []model.Transaction
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// SumMonthByType sums a user's transaction amounts for the given month,
// partitioned by the joined category type. Missing rows sum to zero.
func (r *transactionRepository) SumMonthByType(ctx context.Context, userID uint, month, year int) (*MonthlyTotals, error) {
	var row struct {
		TotalIncome  decimal.Decimal
		TotalExpense decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Table("transactions").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ?", userID).
		Where("MONTH(transactions.date) = ? AND YEAR(transactions.date) = ?", month, year).
		Select(
			"COALESCE(SUM(CASE WHEN categories.type = 'income' THEN transactions.amount ELSE 0 END), 0) AS total_income, " +
				"COALESCE(SUM(CASE WHEN categories.type = 'expense' THEN transactions.amount ELSE 0 END), 0) AS total_expense").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &MonthlyTotals{TotalIncome: row.TotalIncome, TotalExpense: row.TotalExpense}, nil
}

// SumMonthExpensesByCategory groups a user's expense transactions for the
// given month by category name and sums each group, largest first.
func (r *transactionRepository) SumMonthExpensesByCategory(ctx context.Context, userID uint, month, year int) ([]CategoryTotal, error) {
	var rows []CategoryTotal
	err := r.db.WithContext(ctx).
		Table("transactions").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ?", userID).
		Where("MONTH(transactions.date) = ? AND YEAR(transactions.date) = ?", month, year).
		Where("categories.type = ?", model.CategoryTypeExpense).
		Select("categories.name AS name, SUM(transactions.amount) AS total").
		Group("categories.name").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
