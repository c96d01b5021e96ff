package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vasilikapapa/workout-app/internal/domain"
	"github.com/vasilikapapa/workout-app/internal/repository"
)

const dayColumns = "id, name, day_order, plan_id, created_at, updated_at"

// DayRepo implements repository.DayRepository using PostgreSQL.
type DayRepo struct{ db *DB }

// NewDayRepo creates a new day repository.
func NewDayRepo(db *DB) *DayRepo { return &DayRepo{db: db} }

// CreateWithSections inserts a day and its three fixed sections in a single
// transaction. The day's order comes from the plan's counter, bumped under
// the plan row lock so concurrent creations in the same plan serialize and
// never share an order value. The unique index on (plan_id, day_order) is a
// backstop; a violation gets one retry before surfacing as ErrOrderConflict.
func (r *DayRepo) CreateWithSections(ctx context.Context, planID, name string) (*domain.Day, []domain.Section, error) {
	day, sections, err := r.createWithSections(ctx, planID, name)
	if isUniqueViolation(err) {
		day, sections, err = r.createWithSections(ctx, planID, name)
		if isUniqueViolation(err) {
			return nil, nil, repository.ErrOrderConflict
		}
	}
	return day, sections, err
}

func (r *DayRepo) createWithSections(ctx context.Context, planID, name string) (day *domain.Day, sections []domain.Section, err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			day, sections, err = nil, nil, e
		}
	}()

	// Locks the plan row; also doubles as the existence check.
	const bump = `UPDATE plans SET day_counter = day_counter + 1 WHERE id=$1 RETURNING day_counter`
	var order int
	if err = tx.QueryRow(ctx, bump, planID).Scan(&order); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = repository.ErrNotFound
		}
		return nil, nil, err
	}

	if name == "" {
		name = fmt.Sprintf("Day %d", order)
	}
	now := time.Now().UTC()
	day = &domain.Day{
		ID:        uuid.NewString(),
		Name:      name,
		DayOrder:  order,
		PlanID:    planID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	const insDay = `INSERT INTO days (id, name, day_order, plan_id, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err = tx.Exec(ctx, insDay, day.ID, day.Name, day.DayOrder, day.PlanID, day.CreatedAt, day.UpdatedAt); err != nil {
		return nil, nil, err
	}

	const insSection = `INSERT INTO sections (id, type, section_order, day_id, created_at) VALUES ($1, $2, $3, $4, $5)`
	sections = make([]domain.Section, 0, len(domain.SectionTypesInOrder))
	for i, st := range domain.SectionTypesInOrder {
		sec := domain.Section{
			ID:           uuid.NewString(),
			Type:         st,
			SectionOrder: i + 1,
			DayID:        day.ID,
			CreatedAt:    now,
		}
		if _, err = tx.Exec(ctx, insSection, sec.ID, string(sec.Type), sec.SectionOrder, sec.DayID, sec.CreatedAt); err != nil {
			return nil, nil, err
		}
		sections = append(sections, sec)
	}
	return day, sections, nil
}

// GetByID retrieves a day by id.
func (r *DayRepo) GetByID(ctx context.Context, id string) (*domain.Day, error) {
	const q = `SELECT ` + dayColumns + ` FROM days WHERE id=$1`
	return scanDay(r.db.Pool.QueryRow(ctx, q, id))
}

// ListByPlanID returns the plan's days ordered ascending by dayOrder, with
// created_at and id as tie breakers.
func (r *DayRepo) ListByPlanID(ctx context.Context, planID string) ([]domain.Day, error) {
	const q = `SELECT ` + dayColumns + ` FROM days WHERE plan_id=$1 ORDER BY day_order ASC, created_at ASC, id ASC`
	rows, err := r.db.Pool.Query(ctx, q, planID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Day
	for rows.Next() {
		var d domain.Day
		if err := rows.Scan(&d.ID, &d.Name, &d.DayOrder, &d.PlanID, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// UpdateName renames a day and returns the updated row.
func (r *DayRepo) UpdateName(ctx context.Context, id, name string) (*domain.Day, error) {
	const q = `UPDATE days SET name=$2, updated_at=$3 WHERE id=$1 RETURNING ` + dayColumns
	return scanDay(r.db.Pool.QueryRow(ctx, q, id, name, time.Now().UTC()))
}

// Delete removes a day; its sections and exercises cascade.
func (r *DayRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM days WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanDay(row pgx.Row) (*domain.Day, error) {
	var d domain.Day
	if err := row.Scan(&d.ID, &d.Name, &d.DayOrder, &d.PlanID, &d.CreatedAt, &d.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}
