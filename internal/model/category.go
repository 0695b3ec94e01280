package model

import "time"

// CategoryType classifies a category as income or expense.
// The type drives the aggregation sign in reports.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category labels transactions and decides whether they count as income or expense.
type Category struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	Name      string       `json:"name" gorm:"size:100;not null;index"`
	Type      CategoryType `json:"type" gorm:"type:varchar(20);not null;index"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`

	// Relations
	Transactions []Transaction `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}
