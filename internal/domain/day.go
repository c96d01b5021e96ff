package domain

import "time"

// Day is one training day within a plan. DayOrder is assigned at creation
// from the plan's monotonic counter and is never reused or renumbered,
// so deletions leave gaps in the sequence.
//
// A day always carries exactly three sections (warmup, workout, stretch),
// created atomically with it.
type Day struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	DayOrder  int       `json:"dayOrder"`
	PlanID    string    `json:"planId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
