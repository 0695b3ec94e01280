package service

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	apperrors "budgetbuddy/internal/errors"
)

// baseCurrency is the pivot used for two-hop conversion when no direct rate exists.
const baseCurrency = "USD"

// CurrencyService converts amounts between currencies using a fixed rate table.
type CurrencyService interface {
	Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error)
	Currencies() map[string]string
}

type currencyService struct {
	// rates[from][to]. Bidirectional but not fully symmetric; pairs without a
	// direct entry fall back to conversion via the base currency.
	rates map[string]map[string]decimal.Decimal
}

// NewCurrencyService builds the service with its immutable rate table.
func NewCurrencyService() CurrencyService {
	raw := map[string]map[string]float64{
		"USD": {"TND": 3.11, "EUR": 0.93, "GBP": 0.79, "CAD": 1.36, "MAD": 10.06, "JPY": 150.32, "AUD": 1.52},
		"EUR": {"USD": 1.07, "TND": 3.34, "GBP": 0.85, "CAD": 1.46, "MAD": 10.82, "JPY": 161.42, "AUD": 1.63},
		"GBP": {"USD": 1.27, "EUR": 1.18, "TND": 3.94, "CAD": 1.72, "MAD": 12.74, "JPY": 190.41, "AUD": 1.92},
		"TND": {"USD": 0.32, "EUR": 0.30, "GBP": 0.25, "CAD": 0.44, "MAD": 3.23, "JPY": 48.33, "AUD": 0.49},
		"CAD": {"USD": 0.74, "EUR": 0.68, "GBP": 0.58, "TND": 2.30, "MAD": 7.40, "JPY": 110.74, "AUD": 1.12},
		// MAD->GBP is deliberately untabulated; it converts through the base currency.
		"MAD": {"USD": 0.10, "EUR": 0.092, "TND": 0.31, "CAD": 0.14, "JPY": 14.95, "AUD": 0.15},
		"JPY": {"USD": 0.0067, "EUR": 0.0062, "GBP": 0.0053, "TND": 0.021, "CAD": 0.0090, "MAD": 0.067, "AUD": 0.010},
		"AUD": {"USD": 0.66, "EUR": 0.61, "GBP": 0.52, "TND": 2.05, "CAD": 0.89, "MAD": 6.62, "JPY": 99.11},
	}

	rates := make(map[string]map[string]decimal.Decimal, len(raw))
	for from, row := range raw {
		converted := make(map[string]decimal.Decimal, len(row))
		for to, rate := range row {
			converted[to] = decimal.NewFromFloat(rate)
		}
		rates[from] = converted
	}
	return &currencyService{rates: rates}
}

// Convert converts amount from one currency to another, rounded to 2 decimals.
// Same-currency conversion is a no-op and never fails. When no direct rate is
// tabulated the conversion goes through the base currency; if neither hop
// exists the conversion fails rather than returning a disguised zero.
func (s *currencyService) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if from == to {
		return amount.Round(2), nil
	}

	if rate, ok := s.rates[from][to]; ok {
		converted := amount.Mul(rate).Round(2)
		logrus.WithFields(logrus.Fields{
			"amount": amount, "from": from, "to": to, "converted": converted,
		}).Info("fixed rate conversion")
		return converted, nil
	}

	fromBase, okFrom := s.rates[from][baseCurrency]
	toTarget, okTo := s.rates[baseCurrency][to]
	if okFrom && okTo {
		converted := amount.Mul(fromBase).Mul(toTarget).Round(2)
		logrus.WithFields(logrus.Fields{
			"amount": amount, "from": from, "to": to, "converted": converted,
		}).Info("base currency conversion")
		return converted, nil
	}

	logrus.WithFields(logrus.Fields{"from": from, "to": to}).Warn("no conversion rate found")
	return decimal.Zero, apperrors.ErrNoRatePath
}

// Currencies returns the fixed code to display-name mapping used to populate
// UI pickers. It never fails and makes no external calls.
func (s *currencyService) Currencies() map[string]string {
	return map[string]string{
		"USD": "US Dollar",
		"EUR": "Euro",
		"GBP": "British Pound",
		"TND": "Tunisian Dinar",
		"CAD": "Canadian Dollar",
		"MAD": "Moroccan Dirham",
		"JPY": "Japanese Yen",
		"AUD": "Australian Dollar",
		"CHF": "Swiss Franc",
		"CNY": "Chinese Yuan",
	}
}
