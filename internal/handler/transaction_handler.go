package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"budgetbuddy/internal/errors"
	"budgetbuddy/internal/service"
)

const dateLayout = "2006-01-02"

// TransactionHandler handles transaction CRUD endpoints.
type TransactionHandler struct {
	txService service.TransactionService
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(txService service.TransactionService) *TransactionHandler {
	return &TransactionHandler{txService: txService}
}

// CreateTransactionRequest represents a new transaction.
type CreateTransactionRequest struct {
	CategoryID uint    `json:"category_id" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gte=0.01"`
	Currency   string  `json:"currency,omitempty" validate:"omitempty,max=5"`
	Note       string  `json:"note,omitempty" validate:"omitempty,max=500"`
	Date       string  `json:"date" validate:"required"`
}

// UpdateTransactionRequest represents a partial transaction update.
type UpdateTransactionRequest struct {
	CategoryID *uint    `json:"category_id,omitempty"`
	Amount     *float64 `json:"amount,omitempty" validate:"omitempty,gte=0.01"`
	Currency   *string  `json:"currency,omitempty" validate:"omitempty,max=5"`
	Note       *string  `json:"note,omitempty" validate:"omitempty,max=500"`
	Date       *string  `json:"date,omitempty"`
}

func transactionID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid transaction id",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusUnprocessableEntity, errors.ErrorResponse{
			Error: "invalid date, expected YYYY-MM-DD",
			Code:  "INVALID_DATE",
		})
	}
	return date, nil
}

// ListTransactions godoc
// @Summary List the authenticated user's transactions
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Transaction
// @Failure 401 {object} errors.ErrorResponse
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	txs, err := h.txService.List(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, txs)
}

// CreateTransaction godoc
// @Summary Record a new transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTransactionRequest true "Transaction data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return err
	}

	tx, err := h.txService.Create(c.Request().Context(), claims.UserID, service.CreateTransactionInput{
		CategoryID: req.CategoryID,
		Amount:     decimal.NewFromFloat(req.Amount),
		Currency:   req.Currency,
		Note:       req.Note,
		Date:       date,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":     "transaction created successfully",
		"transaction": tx,
	})
}

// GetTransaction godoc
// @Summary Get one of the authenticated user's transactions
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} model.Transaction
// @Failure 404 {object} errors.ErrorResponse
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := transactionID(c)
	if err != nil {
		return err
	}

	tx, err := h.txService.Get(c.Request().Context(), claims.UserID, id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, tx)
}

// UpdateTransaction godoc
// @Summary Update one of the authenticated user's transactions
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Param request body UpdateTransactionRequest true "Transaction fields"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := transactionID(c)
	if err != nil {
		return err
	}

	var req UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	in := service.UpdateTransactionInput{
		CategoryID: req.CategoryID,
		Currency:   req.Currency,
		Note:       req.Note,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		in.Amount = &amount
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return err
		}
		in.Date = &date
	}

	tx, err := h.txService.Update(c.Request().Context(), claims.UserID, id, in)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":     "transaction updated successfully",
		"transaction": tx,
	})
}

// DeleteTransaction godoc
// @Summary Delete one of the authenticated user's transactions
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := transactionID(c)
	if err != nil {
		return err
	}

	if err := h.txService.Delete(c.Request().Context(), claims.UserID, id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "transaction deleted successfully"})
}
