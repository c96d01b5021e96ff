package service

import (
	"context"
	"errors"
	"strings"

	"github.com/vasilikapapa/workout-app/internal/domain"
	"github.com/vasilikapapa/workout-app/internal/repository"
)

// DayService exposes the day lifecycle plus section listing. Sections have
// no independent lifecycle: the fixed warmup/workout/stretch triple is
// created together with its day and only ever read afterwards, so the day
// operator owns them.
type DayService interface {
	// Create adds a day to the plan along with its three sections, all in
	// one transaction. A blank name defaults to "Day <dayOrder>".
	Create(ctx context.Context, userID, planID, name string) (*domain.Day, []domain.Section, error)
	List(ctx context.Context, userID, planID string) ([]domain.Day, error)
	Rename(ctx context.Context, userID, dayID, name string) (*domain.Day, error)
	Delete(ctx context.Context, userID, dayID string) error
	ListSections(ctx context.Context, userID, dayID string) ([]domain.Section, error)
}

type dayService struct {
	dayRepo     repository.DayRepository
	sectionRepo repository.SectionRepository
	resolver    OwnershipResolver
}

// NewDayService creates a new instance of dayService.
func NewDayService(dayRepo repository.DayRepository, sectionRepo repository.SectionRepository, resolver OwnershipResolver) DayService {
	return &dayService{
		dayRepo:     dayRepo,
		sectionRepo: sectionRepo,
		resolver:    resolver,
	}
}

func (s *dayService) Create(ctx context.Context, userID, planID, name string) (*domain.Day, []domain.Section, error) {
	if err := s.resolver.CheckOwner(ctx, userID, domain.ResourcePlan, planID); err != nil {
		return nil, nil, err
	}
	day, sections, err := s.dayRepo.CreateWithSections(ctx, planID, strings.TrimSpace(name))
	if err != nil {
		// The plan passed the ownership check but vanished before the
		// insert; a concurrent plan delete won.
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	return day, sections, nil
}

func (s *dayService) List(ctx context.Context, userID, planID string) ([]domain.Day, error) {
	if err := s.resolver.CheckOwner(ctx, userID, domain.ResourcePlan, planID); err != nil {
		return nil, err
	}
	return s.dayRepo.ListByPlanID(ctx, planID)
}

func (s *dayService) Rename(ctx context.Context, userID, dayID, name string) (*domain.Day, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationError("name_required", "Day name required")
	}
	if err := s.resolver.CheckOwner(ctx, userID, domain.ResourceDay, dayID); err != nil {
		return nil, err
	}
	day, err := s.dayRepo.UpdateName(ctx, dayID, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return day, nil
}

func (s *dayService) Delete(ctx context.Context, userID, dayID string) error {
	if err := s.resolver.CheckOwner(ctx, userID, domain.ResourceDay, dayID); err != nil {
		return err
	}
	if err := s.dayRepo.Delete(ctx, dayID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *dayService) ListSections(ctx context.Context, userID, dayID string) ([]domain.Section, error) {
	if err := s.resolver.CheckOwner(ctx, userID, domain.ResourceDay, dayID); err != nil {
		return nil, err
	}
	return s.sectionRepo.ListByDayID(ctx, dayID)
}
