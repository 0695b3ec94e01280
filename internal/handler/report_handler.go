package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"budgetbuddy/internal/errors"
	"budgetbuddy/internal/service"
)

// ReportHandler handles report endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// MonthlySummaryResponse aggregates one month of a user's transactions.
type MonthlySummaryResponse struct {
	Month        int     `json:"month"`
	Year         int     `json:"year"`
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
}

// CategoryTotalResponse is one slice of the expense breakdown.
type CategoryTotalResponse struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// CategoryBreakdownResponse lists expense totals per category for one month.
type CategoryBreakdownResponse struct {
	Month      int                     `json:"month"`
	Year       int                     `json:"year"`
	Categories []CategoryTotalResponse `json:"categories"`
}

// optionalIntParam parses an optional numeric path parameter; 0 means absent.
func optionalIntParam(c echo.Context, name string) (int, error) {
	raw := c.Param(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, echo.NewHTTPError(http.StatusUnprocessableEntity, errors.ErrorResponse{
			Error: "invalid " + name,
			Code:  "INVALID_" + strings.ToUpper(name),
		})
	}
	return value, nil
}

// MonthlySummary godoc
// @Summary Income, expense, and balance totals for a month
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param month path int false "Month (1-12, defaults to current)"
// @Param year path int false "Year (defaults to current)"
// @Success 200 {object} MonthlySummaryResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /reports/monthly-summary/{month}/{year} [get]
func (h *ReportHandler) MonthlySummary(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	month, err := optionalIntParam(c, "month")
	if err != nil {
		return err
	}
	year, err := optionalIntParam(c, "year")
	if err != nil {
		return err
	}

	summary, err := h.reportService.MonthlySummary(c.Request().Context(), claims.UserID, month, year)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MonthlySummaryResponse{
		Month:        summary.Month,
		Year:         summary.Year,
		TotalIncome:  summary.TotalIncome.Round(2).InexactFloat64(),
		TotalExpense: summary.TotalExpense.Round(2).InexactFloat64(),
		Balance:      summary.Balance.Round(2).InexactFloat64(),
	})
}

// CategoryBreakdown godoc
// @Summary Expense totals per category for a month
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param month path int false "Month (1-12, defaults to current)"
// @Param year path int false "Year (defaults to current)"
// @Success 200 {object} CategoryBreakdownResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /reports/category-breakdown/{month}/{year} [get]
func (h *ReportHandler) CategoryBreakdown(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	month, err := optionalIntParam(c, "month")
	if err != nil {
		return err
	}
	year, err := optionalIntParam(c, "year")
	if err != nil {
		return err
	}

	breakdown, err := h.reportService.CategoryBreakdown(c.Request().Context(), claims.UserID, month, year)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	categories := make([]CategoryTotalResponse, 0, len(breakdown.Categories))
	for _, ct := range breakdown.Categories {
		categories = append(categories, CategoryTotalResponse{
			Name:  ct.Name,
			Total: ct.Total.Round(2).InexactFloat64(),
		})
	}

	return c.JSON(http.StatusOK, CategoryBreakdownResponse{
		Month:      breakdown.Month,
		Year:       breakdown.Year,
		Categories: categories,
	})
}

// RecentTransactions godoc
// @Summary Most recent transactions, newest first
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param limit path int false "Max items (default 5, capped at 50)"
// @Success 200 {array} model.Transaction
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /reports/recent/{limit} [get]
func (h *ReportHandler) RecentTransactions(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	limit, err := optionalIntParam(c, "limit")
	if err != nil {
		return err
	}

	txs, err := h.reportService.Recent(c.Request().Context(), claims.UserID, limit)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, txs)
}
