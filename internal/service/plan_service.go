package service

import (
	"context"
	"errors"
	"strings"

	"github.com/vasilikapapa/workout-app/internal/domain"
	"github.com/vasilikapapa/workout-app/internal/repository"
)

// PlanService exposes the plan lifecycle. Every operation on an existing
// plan runs the ownership resolver first; a plan that is missing or owned
// by someone else surfaces as ErrNotFound either way.
type PlanService interface {
	Create(ctx context.Context, userID, title string) (*domain.Plan, error)
	List(ctx context.Context, userID string) ([]domain.Plan, error)
	Rename(ctx context.Context, userID, planID, title string) (*domain.Plan, error)
	Delete(ctx context.Context, userID, planID string) error
}

type planService struct {
	planRepo repository.PlanRepository
	resolver OwnershipResolver
}

// NewPlanService creates a new instance of planService.
func NewPlanService(planRepo repository.PlanRepository, resolver OwnershipResolver) PlanService {
	return &planService{
		planRepo: planRepo,
		resolver: resolver,
	}
}

// Create makes a new plan owned by userID.
func (s *planService) Create(ctx context.Context, userID, title string) (*domain.Plan, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, validationError("title_required", "Plan title required")
	}
	return s.planRepo.Create(ctx, &domain.Plan{Title: title, UserID: userID})
}

// List returns all plans owned by userID, newest first.
func (s *planService) List(ctx context.Context, userID string) ([]domain.Plan, error) {
	return s.planRepo.ListByUserID(ctx, userID)
}

// Rename changes the plan's title.
func (s *planService) Rename(ctx context.Context, userID, planID, title string) (*domain.Plan, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, validationError("title_required", "Plan title required")
	}
	if err := s.resolver.CheckOwner(ctx, userID, domain.ResourcePlan, planID); err != nil {
		return nil, err
	}
	plan, err := s.planRepo.UpdateTitle(ctx, planID, title)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return plan, nil
}

// Delete removes the plan and everything beneath it. Deleting a plan that
// is already gone, or that the user never owned, reports ErrNotFound; there
// is no silent no-op success.
func (s *planService) Delete(ctx context.Context, userID, planID string) error {
	if err := s.resolver.CheckOwner(ctx, userID, domain.ResourcePlan, planID); err != nil {
		return err
	}
	if err := s.planRepo.Delete(ctx, planID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
