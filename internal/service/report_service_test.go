package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"budgetbuddy/internal/model"
	"budgetbuddy/internal/repository"
)

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *model.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) Update(ctx context.Context, tx *model.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) Delete(ctx context.Context, userID, id uint) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, userID, id uint) (*model.Transaction, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByUser(ctx context.Context, userID uint) ([]model.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindRecent(ctx context.Context, userID uint, limit int) ([]model.Transaction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SumMonthByType(ctx context.Context, userID uint, month, year int) (*repository.MonthlyTotals, error) {
	args := m.Called(ctx, userID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.MonthlyTotals), args.Error(1)
}

func (m *MockTransactionRepository) SumMonthExpensesByCategory(ctx context.Context, userID uint, month, year int) ([]repository.CategoryTotal, error) {
	args := m.Called(ctx, userID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CategoryTotal), args.Error(1)
}

// fixedClock pins the current time for deterministic defaults.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func TestReportService_MonthlySummary(t *testing.T) {
	clock := fixedClock{now: time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)}

	tests := []struct {
		name            string
		month, year     int
		repoMonth       int
		repoYear        int
		totals          *repository.MonthlyTotals
		expectedIncome  string
		expectedExpense string
		expectedBalance string
	}{
		{
			name:      "explicit month and year",
			month:     1,
			year:      2024,
			repoMonth: 1,
			repoYear:  2024,
			totals: &repository.MonthlyTotals{
				TotalIncome:  decimal.RequireFromString("1500.50"),
				TotalExpense: decimal.RequireFromString("420.25"),
			},
			expectedIncome:  "1500.5",
			expectedExpense: "420.25",
			expectedBalance: "1080.25",
		},
		{
			name:      "defaults to current month and year",
			month:     0,
			year:      0,
			repoMonth: 3,
			repoYear:  2025,
			totals: &repository.MonthlyTotals{
				TotalIncome:  decimal.Zero,
				TotalExpense: decimal.Zero,
			},
			expectedIncome:  "0",
			expectedExpense: "0",
			expectedBalance: "0",
		},
		{
			name:      "expenses exceed income",
			month:     6,
			year:      2025,
			repoMonth: 6,
			repoYear:  2025,
			totals: &repository.MonthlyTotals{
				TotalIncome:  decimal.RequireFromString("100"),
				TotalExpense: decimal.RequireFromString("250"),
			},
			expectedIncome:  "100",
			expectedExpense: "250",
			expectedBalance: "-150",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTransactionRepository)
			mockRepo.On("SumMonthByType", mock.Anything, uint(1), tt.repoMonth, tt.repoYear).
				Return(tt.totals, nil)

			svc := NewReportService(mockRepo, clock)
			summary, err := svc.MonthlySummary(context.Background(), 1, tt.month, tt.year)

			assert.NoError(t, err)
			assert.Equal(t, tt.repoMonth, summary.Month)
			assert.Equal(t, tt.repoYear, summary.Year)
			assert.Equal(t, tt.expectedIncome, summary.TotalIncome.String())
			assert.Equal(t, tt.expectedExpense, summary.TotalExpense.String())
			assert.Equal(t, tt.expectedBalance, summary.Balance.String())
			assert.True(t, summary.Balance.Equal(summary.TotalIncome.Sub(summary.TotalExpense)))

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestReportService_CategoryBreakdown(t *testing.T) {
	clock := fixedClock{now: time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)}

	mockRepo := new(MockTransactionRepository)
	totals := []repository.CategoryTotal{
		{Name: "Food", Total: decimal.RequireFromString("320.40")},
		{Name: "Bills", Total: decimal.RequireFromString("120")},
	}
	mockRepo.On("SumMonthExpensesByCategory", mock.Anything, uint(7), 3, 2025).
		Return(totals, nil)

	svc := NewReportService(mockRepo, clock)
	breakdown, err := svc.CategoryBreakdown(context.Background(), 7, 0, 0)

	assert.NoError(t, err)
	assert.Equal(t, 3, breakdown.Month)
	assert.Equal(t, 2025, breakdown.Year)
	assert.Equal(t, totals, breakdown.Categories)

	mockRepo.AssertExpectations(t)
}

func TestReportService_Recent_LimitClamping(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		expectedLimit int
	}{
		{name: "zero falls back to default", limit: 0, expectedLimit: 5},
		{name: "negative falls back to default", limit: -3, expectedLimit: 5},
		{name: "within bounds passes through", limit: 7, expectedLimit: 7},
		{name: "above maximum is clamped", limit: 100, expectedLimit: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTransactionRepository)
			mockRepo.On("FindRecent", mock.Anything, uint(1), tt.expectedLimit).
				Return([]model.Transaction{}, nil)

			svc := NewReportService(mockRepo, fixedClock{now: time.Now()})
			txs, err := svc.Recent(context.Background(), 1, tt.limit)

			assert.NoError(t, err)
			assert.Empty(t, txs)
			mockRepo.AssertExpectations(t)
		})
	}
}
