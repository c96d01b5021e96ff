package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/vasilikapapa/workout-app/internal/domain"
	"github.com/vasilikapapa/workout-app/internal/repository"
)

func TestPlanRepo_Create(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewPlanRepo(db)

	mock.ExpectExec(`INSERT INTO plans`).
		WithArgs(pgxmock.AnyArg(), "Strength", "u1", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	plan, err := r.Create(context.Background(), &domain.Plan{Title: "Strength", UserID: "u1"})
	require.NoError(t, err)
	require.NotEmpty(t, plan.ID)
	require.Equal(t, "u1", plan.UserID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlanRepo_ListByUserID(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewPlanRepo(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT id, title, user_id, created_at, updated_at FROM plans WHERE user_id=\$1 ORDER BY created_at DESC, id DESC`).
		WithArgs("u1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "user_id", "created_at", "updated_at"}).
			AddRow("p2", "Newer", "u1", now, now).
			AddRow("p1", "Older", "u1", now.Add(-time.Hour), now.Add(-time.Hour)))
	plans, err := r.ListByUserID(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, plans, 2)
	require.Equal(t, "p2", plans[0].ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlanRepo_UpdateTitle_NotFound(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewPlanRepo(db)

	mock.ExpectQuery(`UPDATE plans SET title=\$2, updated_at=\$3 WHERE id=\$1 RETURNING`).
		WithArgs("missing", "New", pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)
	_, err := r.UpdateTitle(context.Background(), "missing", "New")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPlanRepo_Delete(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewPlanRepo(db)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM plans WHERE id=\$1`).
		WithArgs("p1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, r.Delete(ctx, "p1"))

	// Second delete of the same plan affects no rows.
	mock.ExpectExec(`DELETE FROM plans WHERE id=\$1`).
		WithArgs("p1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	require.ErrorIs(t, r.Delete(ctx, "p1"), repository.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
