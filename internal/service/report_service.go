package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"budgetbuddy/internal/model"
	"budgetbuddy/internal/repository"
)

const (
	// recentDefaultLimit is used when the caller does not supply a limit.
	recentDefaultLimit = 5
	// recentMaxLimit bounds query cost for the recent transactions listing.
	recentMaxLimit = 50
)

// MonthlySummary aggregates a user's transactions for one month.
type MonthlySummary struct {
	Month        int
	Year         int
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// CategoryBreakdown lists expense totals per category for one month.
type CategoryBreakdown struct {
	Month      int
	Year       int
	Categories []repository.CategoryTotal
}

// ReportService aggregates a user's transactions into report views.
// All monetary sums happen in the stored bookkeeping currency; reports do not
// normalize across currencies.
type ReportService interface {
	MonthlySummary(ctx context.Context, userID uint, month, year int) (*MonthlySummary, error)
	CategoryBreakdown(ctx context.Context, userID uint, month, year int) (*CategoryBreakdown, error)
	Recent(ctx context.Context, userID uint, limit int) ([]model.Transaction, error)
}

type reportService struct {
	txRepo repository.TransactionRepository
	clock  Clock
}

// NewReportService creates a new report service.
func NewReportService(txRepo repository.TransactionRepository, clock Clock) ReportService {
	return &reportService{txRepo: txRepo, clock: clock}
}

// resolvePeriod fills missing month/year from the current server date.
func (s *reportService) resolvePeriod(month, year int) (int, int) {
	now := s.clock.Now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	return month, year
}

// MonthlySummary computes total income, total expense, and their balance for
// the given month. Months without transactions yield zero totals.
func (s *reportService) MonthlySummary(ctx context.Context, userID uint, month, year int) (*MonthlySummary, error) {
	month, year = s.resolvePeriod(month, year)

	totals, err := s.txRepo.SumMonthByType(ctx, userID, month, year)
	if err != nil {
		return nil, fmt.Errorf("sum month by type: %w", err)
	}

	summary := &MonthlySummary{
		Month:        month,
		Year:         year,
		TotalIncome:  totals.TotalIncome,
		TotalExpense: totals.TotalExpense,
		Balance:      totals.TotalIncome.Sub(totals.TotalExpense),
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"month":   month,
		"year":    year,
		"income":  summary.TotalIncome,
		"expense": summary.TotalExpense,
	}).Info("monthly summary generated")

	return summary, nil
}

// CategoryBreakdown groups the month's expense transactions by category name,
// sorted by total descending.
func (s *reportService) CategoryBreakdown(ctx context.Context, userID uint, month, year int) (*CategoryBreakdown, error) {
	month, year = s.resolvePeriod(month, year)

	totals, err := s.txRepo.SumMonthExpensesByCategory(ctx, userID, month, year)
	if err != nil {
		return nil, fmt.Errorf("sum expenses by category: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    userID,
		"month":      month,
		"year":       year,
		"categories": len(totals),
	}).Info("category breakdown generated")

	return &CategoryBreakdown{Month: month, Year: year, Categories: totals}, nil
}

// Recent returns the user's most recent transactions, newest first. A
// non-positive limit falls back to the default; limits above the maximum are
// clamped.
func (s *reportService) Recent(ctx context.Context, userID uint, limit int) ([]model.Transaction, error) {
	if limit <= 0 {
		limit = recentDefaultLimit
	}
	if limit > recentMaxLimit {
		limit = recentMaxLimit
	}
	return s.txRepo.FindRecent(ctx, userID, limit)
}
