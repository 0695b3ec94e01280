package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"budgetbuddy/internal/service"
)

// CurrencyHandler handles currency conversion endpoints.
type CurrencyHandler struct {
	currencyService service.CurrencyService
}

// NewCurrencyHandler creates a new currency handler.
func NewCurrencyHandler(currencyService service.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{currencyService: currencyService}
}

// ConvertRequest represents a currency conversion request.
type ConvertRequest struct {
	Amount float64 `json:"amount" validate:"required,gte=0.01"`
	From   string  `json:"from" validate:"required,max=5"`
	To     string  `json:"to" validate:"required,max=5"`
}

// ConvertResponse represents a successful conversion.
type ConvertResponse struct {
	Original  float64 `json:"original"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Converted float64 `json:"converted"`
	Rate      float64 `json:"rate"`
}

// ConvertErrorResponse echoes the request parameters for debuggability.
type ConvertErrorResponse struct {
	Error string                 `json:"error"`
	Debug map[string]interface{} `json:"debug"`
}

// Convert godoc
// @Summary Convert an amount between currencies
// @Tags currency
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ConvertRequest true "Conversion parameters"
// @Success 200 {object} ConvertResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} ConvertErrorResponse
// @Router /currency/convert [post]
func (h *CurrencyHandler) Convert(c echo.Context) error {
	var req ConvertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	from := strings.ToUpper(strings.TrimSpace(req.From))
	to := strings.ToUpper(strings.TrimSpace(req.To))
	amount := decimal.NewFromFloat(req.Amount)

	logrus.WithFields(logrus.Fields{
		"amount": req.Amount,
		"from":   from,
		"to":     to,
	}).Info("currency conversion requested")

	converted, err := h.currencyService.Convert(amount, from, to)
	// A zero result for a positive amount is as unusable as a missing rate
	// path; both surface as a conversion failure.
	if err != nil || converted.IsZero() {
		logrus.WithFields(logrus.Fields{
			"amount":    req.Amount,
			"from":      from,
			"to":        to,
			"converted": converted,
		}).Error("currency conversion failed")

		return c.JSON(http.StatusInternalServerError, ConvertErrorResponse{
			Error: "currency conversion failed or returned invalid result",
			Debug: map[string]interface{}{
				"original":  req.Amount,
				"from":      from,
				"to":        to,
				"converted": converted,
			},
		})
	}

	rate := converted.Div(amount).Round(4)

	return c.JSON(http.StatusOK, ConvertResponse{
		Original:  req.Amount,
		From:      from,
		To:        to,
		Converted: converted.InexactFloat64(),
		Rate:      rate.InexactFloat64(),
	})
}

// ListCurrencies godoc
// @Summary List supported currencies
// @Tags currency
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /currency/list [get]
func (h *CurrencyHandler) ListCurrencies(c echo.Context) error {
	return c.JSON(http.StatusOK, h.currencyService.Currencies())
}
