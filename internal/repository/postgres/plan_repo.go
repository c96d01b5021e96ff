package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vasilikapapa/workout-app/internal/domain"
	"github.com/vasilikapapa/workout-app/internal/repository"
)

const planColumns = "id, title, user_id, created_at, updated_at"

// PlanRepo implements repository.PlanRepository using PostgreSQL.
type PlanRepo struct{ db *DB }

// NewPlanRepo creates a new plan repository.
func NewPlanRepo(db *DB) *PlanRepo { return &PlanRepo{db: db} }

// Create inserts a new plan owned by plan.UserID.
func (r *PlanRepo) Create(ctx context.Context, plan *domain.Plan) (*domain.Plan, error) {
	now := time.Now().UTC()
	plan.ID = uuid.NewString()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	const q = `INSERT INTO plans (id, title, user_id, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.Pool.Exec(ctx, q, plan.ID, plan.Title, plan.UserID, plan.CreatedAt, plan.UpdatedAt); err != nil {
		return nil, err
	}
	return plan, nil
}

// GetByID retrieves a plan by id.
func (r *PlanRepo) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	const q = `SELECT ` + planColumns + ` FROM plans WHERE id=$1`
	return scanPlan(r.db.Pool.QueryRow(ctx, q, id))
}

// ListByUserID returns the user's plans, newest first. The id tie-break keeps
// the listing deterministic when two plans share a creation instant.
func (r *PlanRepo) ListByUserID(ctx context.Context, userID string) ([]domain.Plan, error) {
	const q = `SELECT ` + planColumns + ` FROM plans WHERE user_id=$1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Plan
	for rows.Next() {
		var p domain.Plan
		if err := rows.Scan(&p.ID, &p.Title, &p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// UpdateTitle renames a plan and returns the updated row.
func (r *PlanRepo) UpdateTitle(ctx context.Context, id, title string) (*domain.Plan, error) {
	const q = `UPDATE plans SET title=$2, updated_at=$3 WHERE id=$1 RETURNING ` + planColumns
	return scanPlan(r.db.Pool.QueryRow(ctx, q, id, title, time.Now().UTC()))
}

// Delete removes a plan. Days, sections and exercises beneath it are removed
// by the cascading foreign keys.
func (r *PlanRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM plans WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanPlan(row pgx.Row) (*domain.Plan, error) {
	var p domain.Plan
	if err := row.Scan(&p.ID, &p.Title, &p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
