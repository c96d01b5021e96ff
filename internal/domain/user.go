package domain

import "time"

// User is the root of the ownership hierarchy. Every plan, and transitively
// every day, section and exercise, belongs to exactly one user.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"` // Unique, stored lowercased
	PasswordHash string    `json:"-"`     // Never expose this via JSON
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
