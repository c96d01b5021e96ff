package domain

import "time"

// SectionType is the closed set of section kinds within a day.
type SectionType string

const (
	SectionWarmup  SectionType = "warmup"
	SectionWorkout SectionType = "workout"
	SectionStretch SectionType = "stretch"
)

// SectionTypesInOrder lists the three section types in their fixed display
// order. SectionOrder values are 1-based positions in this slice and never
// change after creation.
var SectionTypesInOrder = []SectionType{SectionWarmup, SectionWorkout, SectionStretch}

// Section groups the exercises of a day. Sections only exist as the fixed
// triple created together with their day; they are never created, renamed
// or deleted independently.
type Section struct {
	ID           string      `json:"id"`
	Type         SectionType `json:"type"`
	SectionOrder int         `json:"sectionOrder"`
	DayID        string      `json:"dayId"`
	CreatedAt    time.Time   `json:"createdAt"`
}
