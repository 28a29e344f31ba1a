package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/manualentry"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/timestamp"
)

type manualEntryRepositoryImpl struct {
	db *database.DB
}

func NewManualEntryRepository(db *database.DB) manualentry.ManualEntryRepository {
	return &manualEntryRepositoryImpl{db: db}
}

// Create implements manualentry.ManualEntryRepository.
func (m *manualEntryRepositoryImpl) Create(ctx context.Context, entry manualentry.ManualEntry) (manualentry.ManualEntry, error) {
	q := GetQuerier(ctx, m.db)

	query := `
		INSERT INTO manual_entries (employee_id, start_at, end_at, duration_minutes, entry_type, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		entry.EmployeeID, entry.Start, entry.End, entry.DurationMinutes, entry.Type, entry.Note,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return manualentry.ManualEntry{}, fmt.Errorf("failed to create manual entry: %w", database.Classify(err))
	}

	return entry, nil
}

// Delete implements manualentry.ManualEntryRepository.
func (m *manualEntryRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, m.db)

	tag, err := q.Exec(ctx, `DELETE FROM manual_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete manual entry %d: %w", id, database.Classify(err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("manual entry with id %d: %w", id, manualentry.ErrManualEntryNotFound)
	}

	return nil
}

// ListByMonth implements manualentry.ManualEntryRepository.
func (m *manualEntryRepositoryImpl) ListByMonth(ctx context.Context, month timestamp.Month) ([]manualentry.ManualEntry, error) {
	q := GetQuerier(ctx, m.db)

	query := `
		SELECT id, employee_id, start_at, end_at, duration_minutes, entry_type, note, created_at
		FROM manual_entries
		WHERE start_at >= $1 AND start_at < $2
		ORDER BY start_at ASC, id ASC
	`

	rows, err := q.Query(ctx, query, month.Start(), month.End())
	if err != nil {
		return nil, fmt.Errorf("failed to list manual entries for %s: %w", month, database.Classify(err))
	}
	defer rows.Close()

	entries := make([]manualentry.ManualEntry, 0)
	for rows.Next() {
		var e manualentry.ManualEntry
		if err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.Start, &e.End, &e.DurationMinutes, &e.Type, &e.Note, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan manual entry: %w", err)
		}
		e.Start = timestamp.WallClock(e.Start)
		e.End = timestamp.WallClock(e.End)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating manual entries: %w", database.Classify(err))
	}

	return entries, nil
}
