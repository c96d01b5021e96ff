package domain

import "time"

// ExerciseMode discriminates the two data shapes an exercise can have.
type ExerciseMode string

const (
	ModeReps ExerciseMode = "reps"
	ModeTime ExerciseMode = "time"
)

// TimeUnit is the closed set of units for time-mode exercises.
type TimeUnit string

const (
	UnitSec  TimeUnit = "sec"
	UnitMin  TimeUnit = "min"
	UnitHour TimeUnit = "hour"
)

// Exercise is a single exercise within a section. Exactly one of the two
// field groups is populated at all times: Sets+Reps when Mode is "reps",
// TimeValue+TimeUnit when Mode is "time". The opposite group is nil.
// ExerciseOrder comes from the section's monotonic counter and is never
// reused after deletion.
type Exercise struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Mode          ExerciseMode `json:"mode"`
	Sets          *int         `json:"sets"`
	Reps          *string      `json:"reps"`
	TimeValue     *int         `json:"timeValue"`
	TimeUnit      *TimeUnit    `json:"timeUnit"`
	ExerciseOrder int          `json:"exerciseOrder"`
	SectionID     string       `json:"sectionId"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}
