package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account allowed to edit the resume. A single admin is
// bootstrapped at startup if the table is empty.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	LastLoginAt  *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
