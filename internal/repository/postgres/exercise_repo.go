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

const exerciseColumns = "id, name, mode, sets, reps, time_value, time_unit, exercise_order, section_id, created_at, updated_at"

// ExerciseRepo implements repository.ExerciseRepository using PostgreSQL.
type ExerciseRepo struct{ db *DB }

// NewExerciseRepo creates a new exercise repository.
func NewExerciseRepo(db *DB) *ExerciseRepo { return &ExerciseRepo{db: db} }

// Create inserts the exercise, taking its order from the section's counter
// inside the same transaction. The counter bump locks the section row, so
// concurrent creations in one section serialize and get distinct orders.
// A (section_id, exercise_order) unique violation gets one retry.
func (r *ExerciseRepo) Create(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error) {
	created, err := r.create(ctx, exercise)
	if isUniqueViolation(err) {
		created, err = r.create(ctx, exercise)
		if isUniqueViolation(err) {
			return nil, repository.ErrOrderConflict
		}
	}
	return created, err
}

func (r *ExerciseRepo) create(ctx context.Context, exercise *domain.Exercise) (created *domain.Exercise, err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			created, err = nil, e
		}
	}()

	// Locks the section row; also doubles as the existence check.
	const bump = `UPDATE sections SET exercise_counter = exercise_counter + 1 WHERE id=$1 RETURNING exercise_counter`
	var order int
	if err = tx.QueryRow(ctx, bump, exercise.SectionID).Scan(&order); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = repository.ErrNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	ex := *exercise
	ex.ID = uuid.NewString()
	ex.ExerciseOrder = order
	ex.CreatedAt = now
	ex.UpdatedAt = now

	const ins = `INSERT INTO exercises (id, name, mode, sets, reps, time_value, time_unit, exercise_order, section_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	if _, err = tx.Exec(ctx, ins,
		ex.ID, ex.Name, string(ex.Mode), ex.Sets, ex.Reps, ex.TimeValue, timeUnitArg(ex.TimeUnit),
		ex.ExerciseOrder, ex.SectionID, ex.CreatedAt, ex.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &ex, nil
}

// GetByID retrieves an exercise by id.
func (r *ExerciseRepo) GetByID(ctx context.Context, id string) (*domain.Exercise, error) {
	const q = `SELECT ` + exerciseColumns + ` FROM exercises WHERE id=$1`
	return scanExercise(r.db.Pool.QueryRow(ctx, q, id))
}

// ListBySectionID returns the section's exercises ordered ascending by
// exerciseOrder, with created_at and id as deterministic tie-breaks.
func (r *ExerciseRepo) ListBySectionID(ctx context.Context, sectionID string) ([]domain.Exercise, error) {
	const q = `SELECT ` + exerciseColumns + ` FROM exercises WHERE section_id=$1 ORDER BY exercise_order ASC, created_at ASC, id ASC`
	rows, err := r.db.Pool.Query(ctx, q, sectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Exercise
	for rows.Next() {
		ex, err := scanExerciseRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *ex)
	}
	return out, rows.Err()
}

// Update overwrites the exercise's mutable fields (name, mode and the two
// mode field groups) and returns the updated row. Order and parent are
// immutable.
func (r *ExerciseRepo) Update(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error) {
	const q = `UPDATE exercises SET name=$2, mode=$3, sets=$4, reps=$5, time_value=$6, time_unit=$7, updated_at=$8
WHERE id=$1 RETURNING ` + exerciseColumns
	return scanExercise(r.db.Pool.QueryRow(ctx, q,
		exercise.ID, exercise.Name, string(exercise.Mode),
		exercise.Sets, exercise.Reps, exercise.TimeValue, timeUnitArg(exercise.TimeUnit),
		time.Now().UTC(),
	))
}

// Delete removes an exercise.
func (r *ExerciseRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM exercises WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// timeUnitArg converts the typed unit to a nullable text parameter.
func timeUnitArg(u *domain.TimeUnit) *string {
	if u == nil {
		return nil
	}
	s := string(*u)
	return &s
}

func scanExercise(row pgx.Row) (*domain.Exercise, error) {
	ex, err := scanExerciseRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return ex, nil
}

func scanExerciseRow(row pgx.Row) (*domain.Exercise, error) {
	var (
		ex       domain.Exercise
		mode     string
		timeUnit *string
	)
	if err := row.Scan(&ex.ID, &ex.Name, &mode, &ex.Sets, &ex.Reps, &ex.TimeValue, &timeUnit,
		&ex.ExerciseOrder, &ex.SectionID, &ex.CreatedAt, &ex.UpdatedAt); err != nil {
		return nil, err
	}
	ex.Mode = domain.ExerciseMode(mode)
	if timeUnit != nil {
		u := domain.TimeUnit(*timeUnit)
		ex.TimeUnit = &u
	}
	return &ex, nil
}
