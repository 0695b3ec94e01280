package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the bookkeeping currency assigned when none is given.
const DefaultCurrency = "TND"

// Transaction is a single income or expense entry owned by one user.
// Amount is always positive; direction comes from the category type.
type Transaction struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	UserID     uint            `json:"user_id" gorm:"not null;index"`
	CategoryID uint            `json:"category_id" gorm:"not null;index"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Currency   string          `json:"currency" gorm:"size:5;not null;default:'TND'"`
	Note       string          `json:"note,omitempty" gorm:"type:text"`
	Date       time.Time       `json:"date" gorm:"type:date;not null;index"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	// Relations
	User     User     `json:"-" gorm:"foreignKey:UserID"`
	Category Category `json:"category" gorm:"foreignKey:CategoryID"`
}
