package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/vasilikapapa/workout-app/internal/domain"
	"github.com/vasilikapapa/workout-app/internal/repository"
)

// Per-resource queries walking the parent chain up to the owning user.
const (
	ownerOfPlanSQL = `SELECT user_id FROM plans WHERE id=$1`

	ownerOfDaySQL = `SELECT p.user_id FROM days d
JOIN plans p ON p.id = d.plan_id
WHERE d.id=$1`

	ownerOfSectionSQL = `SELECT p.user_id FROM sections s
JOIN days d ON d.id = s.day_id
JOIN plans p ON p.id = d.plan_id
WHERE s.id=$1`

	ownerOfExerciseSQL = `SELECT p.user_id FROM exercises e
JOIN sections s ON s.id = e.section_id
JOIN days d ON d.id = s.day_id
JOIN plans p ON p.id = d.plan_id
WHERE e.id=$1`
)

// OwnershipRepo implements repository.OwnershipRepository using PostgreSQL.
type OwnershipRepo struct{ db *DB }

// NewOwnershipRepo creates a new ownership repository.
func NewOwnershipRepo(db *DB) *OwnershipRepo { return &OwnershipRepo{db: db} }

// OwnerOf returns the id of the user transitively owning the resource, or
// repository.ErrNotFound when the resource does not exist.
func (r *OwnershipRepo) OwnerOf(ctx context.Context, resource domain.Resource, id string) (string, error) {
	var q string
	switch resource {
	case domain.ResourcePlan:
		q = ownerOfPlanSQL
	case domain.ResourceDay:
		q = ownerOfDaySQL
	case domain.ResourceSection:
		q = ownerOfSectionSQL
	case domain.ResourceExercise:
		q = ownerOfExerciseSQL
	default:
		return "", fmt.Errorf("unknown resource type %q", resource)
	}

	var ownerID string
	if err := r.db.Pool.QueryRow(ctx, q, id).Scan(&ownerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", repository.ErrNotFound
		}
		return "", err
	}
	return ownerID, nil
}
