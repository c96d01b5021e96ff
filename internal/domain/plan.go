package domain

import "time"

// Plan is a workout plan owned by a single user. Deleting a plan cascades
// to all of its days, sections and exercises.
type Plan struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
