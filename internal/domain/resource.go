package domain

// Resource names an entity kind for ownership resolution.
type Resource string

const (
	ResourcePlan     Resource = "plan"
	ResourceDay      Resource = "day"
	ResourceSection  Resource = "section"
	ResourceExercise Resource = "exercise"
)
