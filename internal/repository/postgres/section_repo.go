package postgres

import (
	"context"

	"github.com/vasilikapapa/workout-app/internal/domain"
)

// SectionRepo implements repository.SectionRepository using PostgreSQL.
// Sections are written exclusively by DayRepo.CreateWithSections, so this
// repository is read-only.
type SectionRepo struct{ db *DB }

// NewSectionRepo creates a new section repository.
func NewSectionRepo(db *DB) *SectionRepo { return &SectionRepo{db: db} }

// ListByDayID returns the day's sections ordered ascending by sectionOrder.
func (r *SectionRepo) ListByDayID(ctx context.Context, dayID string) ([]domain.Section, error) {
	const q = `SELECT id, type, section_order, day_id, created_at FROM sections WHERE day_id=$1 ORDER BY section_order ASC`
	rows, err := r.db.Pool.Query(ctx, q, dayID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Section
	for rows.Next() {
		var (
			s       domain.Section
			secType string
		)
		if err := rows.Scan(&s.ID, &secType, &s.SectionOrder, &s.DayID, &s.CreatedAt); err != nil {
			return nil, err
		}
		s.Type = domain.SectionType(secType)
		out = append(out, s)
	}
	return out, rows.Err()
}
