package repository

import (
	"context"

	"github.com/vasilikapapa/workout-app/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound       = RepositoryError("not found")
	ErrDuplicateEmail = RepositoryError("email already registered")
	// ErrOrderConflict signals a collision on a (parent, order) unique index.
	// The postgres implementations retry once internally before returning it,
	// so callers normally never see this error.
	ErrOrderConflict = RepositoryError("order assignment conflict")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// PlanRepository defines the interface for interacting with plan data.
type PlanRepository interface {
	Create(ctx context.Context, plan *domain.Plan) (*domain.Plan, error)
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	// ListByUserID returns the user's plans, newest first.
	ListByUserID(ctx context.Context, userID string) ([]domain.Plan, error)
	UpdateTitle(ctx context.Context, id, title string) (*domain.Plan, error)
	// Delete removes the plan; days, sections and exercises beneath it go
	// with it via ON DELETE CASCADE.
	Delete(ctx context.Context, id string) error
}

// DayRepository defines the interface for interacting with day data.
type DayRepository interface {
	// CreateWithSections inserts a day plus its three fixed sections in one
	// transaction, assigning dayOrder from the plan's counter. A blank name
	// defaults to "Day <order>", which is only known once the counter is
	// bumped inside the transaction. Returns ErrNotFound when the plan row
	// does not exist.
	CreateWithSections(ctx context.Context, planID, name string) (*domain.Day, []domain.Section, error)
	GetByID(ctx context.Context, id string) (*domain.Day, error)
	// ListByPlanID returns days ordered ascending by dayOrder.
	ListByPlanID(ctx context.Context, planID string) ([]domain.Day, error)
	UpdateName(ctx context.Context, id, name string) (*domain.Day, error)
	Delete(ctx context.Context, id string) error
}

// SectionRepository defines read access to section data. Sections are only
// ever written as part of DayRepository.CreateWithSections.
type SectionRepository interface {
	// ListByDayID returns the day's sections ordered ascending by sectionOrder.
	ListByDayID(ctx context.Context, dayID string) ([]domain.Section, error)
}

// ExerciseRepository defines the interface for interacting with exercise data.
type ExerciseRepository interface {
	// Create inserts the exercise, assigning exerciseOrder from the section's
	// counter in the same transaction. Returns ErrNotFound when the section
	// row does not exist.
	Create(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error)
	GetByID(ctx context.Context, id string) (*domain.Exercise, error)
	// ListBySectionID returns exercises ordered ascending by exerciseOrder.
	ListBySectionID(ctx context.Context, sectionID string) ([]domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error)
	Delete(ctx context.Context, id string) error
}

// OwnershipRepository resolves the owning user of any resource by walking
// the Exercise→Section→Day→Plan→User chain in a single query.
type OwnershipRepository interface {
	// OwnerOf returns the user id that transitively owns the resource, or
	// ErrNotFound when no such resource exists.
	OwnerOf(ctx context.Context, resource domain.Resource, id string) (string, error)
}
