package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/vasilikapapa/workout-app/internal/domain"
	"github.com/vasilikapapa/workout-app/internal/repository"
)

// fakeOwners maps "<resource>/<id>" to the owning user id.
type fakeOwners struct {
	owners map[string]string
}

var _ repository.OwnershipRepository = (*fakeOwners)(nil)

func newFakeOwners() *fakeOwners {
	return &fakeOwners{owners: map[string]string{}}
}

func (f *fakeOwners) set(resource domain.Resource, id, ownerID string) {
	f.owners[string(resource)+"/"+id] = ownerID
}

func (f *fakeOwners) OwnerOf(_ context.Context, resource domain.Resource, id string) (string, error) {
	owner, ok := f.owners[string(resource)+"/"+id]
	if !ok {
		return "", repository.ErrNotFound
	}
	return owner, nil
}

// fakeUserRepo stores users keyed by id with an email index.
type fakeUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
	nextID  int
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[string]*domain.User{},
		byEmail: map[string]*domain.User{},
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := f.byEmail[user.Email]; ok {
		return nil, repository.ErrDuplicateEmail
	}
	f.nextID++
	u := *user
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	f.byID[u.ID] = &u
	f.byEmail[u.Email] = &u
	out := u
	return &out, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *u
	return &out, nil
}

// fakePlanRepo is a minimal in-memory plan store.
type fakePlanRepo struct {
	plans     map[string]*domain.Plan
	createdID int
}

var _ repository.PlanRepository = (*fakePlanRepo)(nil)

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: map[string]*domain.Plan{}}
}

func (f *fakePlanRepo) Create(_ context.Context, plan *domain.Plan) (*domain.Plan, error) {
	f.createdID++
	p := *plan
	p.ID = fmt.Sprintf("plan-%d", f.createdID)
	f.plans[p.ID] = &p
	return &p, nil
}

func (f *fakePlanRepo) GetByID(_ context.Context, id string) (*domain.Plan, error) {
	p, ok := f.plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (f *fakePlanRepo) ListByUserID(_ context.Context, userID string) ([]domain.Plan, error) {
	var out []domain.Plan
	for _, p := range f.plans {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePlanRepo) UpdateTitle(_ context.Context, id, title string) (*domain.Plan, error) {
	p, ok := f.plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.Title = title
	return p, nil
}

func (f *fakePlanRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.plans[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.plans, id)
	return nil
}

// fakeDayRepo records calls and replays canned results.
type fakeDayRepo struct {
	createPlanID string
	createName   string
	createOut    *domain.Day
	sectionsOut  []domain.Section
	createErr    error

	renameID   string
	renameName string
	renameOut  *domain.Day
	renameErr  error

	listOut []domain.Day

	deletedID string
	deleteErr error
}

var _ repository.DayRepository = (*fakeDayRepo)(nil)

func (f *fakeDayRepo) CreateWithSections(_ context.Context, planID, name string) (*domain.Day, []domain.Section, error) {
	f.createPlanID, f.createName = planID, name
	return f.createOut, f.sectionsOut, f.createErr
}

func (f *fakeDayRepo) GetByID(_ context.Context, id string) (*domain.Day, error) {
	return nil, repository.ErrNotFound
}

func (f *fakeDayRepo) ListByPlanID(_ context.Context, planID string) ([]domain.Day, error) {
	return f.listOut, nil
}

func (f *fakeDayRepo) UpdateName(_ context.Context, id, name string) (*domain.Day, error) {
	f.renameID, f.renameName = id, name
	return f.renameOut, f.renameErr
}

func (f *fakeDayRepo) Delete(_ context.Context, id string) error {
	f.deletedID = id
	return f.deleteErr
}

type fakeSectionRepo struct {
	listDayID string
	listOut   []domain.Section
}

var _ repository.SectionRepository = (*fakeSectionRepo)(nil)

func (f *fakeSectionRepo) ListByDayID(_ context.Context, dayID string) ([]domain.Section, error) {
	f.listDayID = dayID
	return f.listOut, nil
}

// fakeExerciseRepo is a stateful in-memory exercise store with per-section
// order counters, mutex-guarded so concurrency tests can hammer Create.
type fakeExerciseRepo struct {
	mu        sync.Mutex
	exercises map[string]*domain.Exercise
	counters  map[string]int
	nextID    int
}

var _ repository.ExerciseRepository = (*fakeExerciseRepo)(nil)

func newFakeExerciseRepo() *fakeExerciseRepo {
	return &fakeExerciseRepo{
		exercises: map[string]*domain.Exercise{},
		counters:  map[string]int{},
	}
}

func (f *fakeExerciseRepo) Create(_ context.Context, exercise *domain.Exercise) (*domain.Exercise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.counters[exercise.SectionID]++
	ex := *exercise
	ex.ID = fmt.Sprintf("ex-%d", f.nextID)
	ex.ExerciseOrder = f.counters[exercise.SectionID]
	f.exercises[ex.ID] = &ex
	out := ex
	return &out, nil
}

func (f *fakeExerciseRepo) GetByID(_ context.Context, id string) (*domain.Exercise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ex, ok := f.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *ex
	return &out, nil
}

func (f *fakeExerciseRepo) ListBySectionID(_ context.Context, sectionID string) ([]domain.Exercise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Exercise
	for _, ex := range f.exercises {
		if ex.SectionID == sectionID {
			out = append(out, *ex)
		}
	}
	return out, nil
}

func (f *fakeExerciseRepo) Update(_ context.Context, exercise *domain.Exercise) (*domain.Exercise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.exercises[exercise.ID]; !ok {
		return nil, repository.ErrNotFound
	}
	ex := *exercise
	f.exercises[ex.ID] = &ex
	out := ex
	return &out, nil
}

func (f *fakeExerciseRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.exercises[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.exercises, id)
	return nil
}
