package service

import (
	"context"
	"errors"
	"strings"

	"github.com/vasilikapapa/workout-app/internal/domain"
	"github.com/vasilikapapa/workout-app/internal/repository"
)

// ExerciseInput carries the writable exercise fields for creation. The two
// mode groups are pointers so absent and present-but-zero are separable.
type ExerciseInput struct {
	Name      string
	Mode      domain.ExerciseMode
	Sets      *int
	Reps      *string
	TimeValue *int
	TimeUnit  *domain.TimeUnit
}

// ExerciseUpdate carries a partial field set for updates; nil fields keep
// their current value. Changing Mode requires the new mode's fields to be
// valid on the effective record; the opposite group is nulled on write.
type ExerciseUpdate struct {
	Name      *string
	Mode      *domain.ExerciseMode
	Sets      *int
	Reps      *string
	TimeValue *int
	TimeUnit  *domain.TimeUnit
}

// ExerciseService exposes the exercise lifecycle within a section.
type ExerciseService interface {
	Create(ctx context.Context, userID, sectionID string, in ExerciseInput) (*domain.Exercise, error)
	Get(ctx context.Context, userID, exerciseID string) (*domain.Exercise, error)
	List(ctx context.Context, userID, sectionID string) ([]domain.Exercise, error)
	Update(ctx context.Context, userID, exerciseID string, in ExerciseUpdate) (*domain.Exercise, error)
	Delete(ctx context.Context, userID, exerciseID string) error
}

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	resolver     OwnershipResolver
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, resolver OwnershipResolver) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		resolver:     resolver,
	}
}

// Create validates the discriminated union and inserts the exercise; the
// order value is assigned by the repository inside the insert transaction.
func (s *exerciseService) Create(ctx context.Context, userID, sectionID string, in ExerciseInput) (*domain.Exercise, error) {
	if err := s.resolver.CheckOwner(ctx, userID, domain.ResourceSection, sectionID); err != nil {
		return nil, err
	}

	ex := &domain.Exercise{
		Name:      in.Name,
		Mode:      in.Mode,
		Sets:      in.Sets,
		Reps:      in.Reps,
		TimeValue: in.TimeValue,
		TimeUnit:  in.TimeUnit,
		SectionID: sectionID,
	}
	if err := normalizeExercise(ex); err != nil {
		return nil, err
	}

	created, err := s.exerciseRepo.Create(ctx, ex)
	if err != nil {
		// The section passed the ownership check but was deleted before
		// the insert committed.
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return created, nil
}

func (s *exerciseService) Get(ctx context.Context, userID, exerciseID string) (*domain.Exercise, error) {
	if err := s.resolver.CheckOwner(ctx, userID, domain.ResourceExercise, exerciseID); err != nil {
		return nil, err
	}
	ex, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ex, nil
}

func (s *exerciseService) List(ctx context.Context, userID, sectionID string) ([]domain.Exercise, error) {
	if err := s.resolver.CheckOwner(ctx, userID, domain.ResourceSection, sectionID); err != nil {
		return nil, err
	}
	return s.exerciseRepo.ListBySectionID(ctx, sectionID)
}

// Update applies a partial field set on top of the stored record and then
// re-validates the whole union, so a PATCH can never leave an exercise with
// both field groups populated or a mode mismatched with its fields.
func (s *exerciseService) Update(ctx context.Context, userID, exerciseID string, in ExerciseUpdate) (*domain.Exercise, error) {
	if err := s.resolver.CheckOwner(ctx, userID, domain.ResourceExercise, exerciseID); err != nil {
		return nil, err
	}

	ex, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if in.Name != nil {
		ex.Name = *in.Name
	}
	if in.Mode != nil {
		ex.Mode = *in.Mode
	}
	if in.Sets != nil {
		ex.Sets = in.Sets
	}
	if in.Reps != nil {
		ex.Reps = in.Reps
	}
	if in.TimeValue != nil {
		ex.TimeValue = in.TimeValue
	}
	if in.TimeUnit != nil {
		ex.TimeUnit = in.TimeUnit
	}

	if err := normalizeExercise(ex); err != nil {
		return nil, err
	}

	updated, err := s.exerciseRepo.Update(ctx, ex)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *exerciseService) Delete(ctx context.Context, userID, exerciseID string) error {
	if err := s.resolver.CheckOwner(ctx, userID, domain.ResourceExercise, exerciseID); err != nil {
		return err
	}
	if err := s.exerciseRepo.Delete(ctx, exerciseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// normalizeExercise enforces the discriminated-union invariant on a record
// about to be written: exactly one mode field group populated and valid,
// the other nulled. Time bounds follow the domain rule of 1-59 for seconds
// and minutes and 1-12 for hours.
func normalizeExercise(ex *domain.Exercise) error {
	ex.Name = strings.TrimSpace(ex.Name)
	if ex.Name == "" {
		return validationError("exercise_name_required", "Exercise name required")
	}

	switch ex.Mode {
	case domain.ModeReps:
		if ex.Sets == nil || *ex.Sets < 1 {
			return validationError("sets_invalid", "Sets must be an integer of at least 1")
		}
		if ex.Reps == nil || strings.TrimSpace(*ex.Reps) == "" {
			return validationError("reps_required", "Reps required")
		}
		reps := strings.TrimSpace(*ex.Reps)
		ex.Reps = &reps
		ex.TimeValue = nil
		ex.TimeUnit = nil
	case domain.ModeTime:
		if ex.TimeUnit == nil {
			return validationError("time_unit_invalid", "Time unit must be 'sec', 'min' or 'hour'")
		}
		switch *ex.TimeUnit {
		case domain.UnitSec, domain.UnitMin:
			if ex.TimeValue == nil || *ex.TimeValue < 1 || *ex.TimeValue > 59 {
				return validationError("time_value_invalid", "Seconds and minutes must be between 1 and 59")
			}
		case domain.UnitHour:
			if ex.TimeValue == nil || *ex.TimeValue < 1 || *ex.TimeValue > 12 {
				return validationError("time_value_invalid", "Hours must be between 1 and 12")
			}
		default:
			return validationError("time_unit_invalid", "Time unit must be 'sec', 'min' or 'hour'")
		}
		ex.Sets = nil
		ex.Reps = nil
	default:
		return validationError("mode_invalid", "Mode must be 'reps' or 'time'")
	}
	return nil
}
