package model

import "time"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User account statuses.
const (
	StatusActive = "active"
	StatusMuted  = "muted"
	StatusBanned = "banned"
)

// User represents a registered user of the tracker.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string    `json:"role" gorm:"size:50;not null;default:'user'"`
	Status       string    `json:"status" gorm:"size:50;not null;default:'active';index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Transactions []Transaction `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
