package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/checkin"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/timestamp"
	"github.com/jackc/pgx/v5"
)

type checkinRepositoryImpl struct {
	db *database.DB
}

func NewCheckinRepository(db *database.DB) checkin.CheckinRepository {
	return &checkinRepositoryImpl{db: db}
}

// InsertBatch implements checkin.CheckinRepository.
// Rows are streamed with COPY; a chunk is written entirely or not at all.
func (c *checkinRepositoryImpl) InsertBatch(ctx context.Context, events []checkin.CheckinEvent) (int64, error) {
	if len(events) == 0 {
		return 0, nil
	}

	q := GetQuerier(ctx, c.db)

	written, err := q.CopyFrom(
		ctx,
		pgx.Identifier{"checkins"},
		[]string{"employee_id", "checked_at"},
		pgx.CopyFromSlice(len(events), func(i int) ([]any, error) {
			return []any{events[i].EmployeeID, events[i].Timestamp}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to copy checkins: %w", database.Classify(err))
	}

	return written, nil
}

// ListByMonth implements checkin.CheckinRepository.
func (c *checkinRepositoryImpl) ListByMonth(ctx context.Context, month timestamp.Month) ([]checkin.CheckinEvent, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT employee_id, checked_at
		FROM checkins
		WHERE checked_at >= $1 AND checked_at < $2
		ORDER BY employee_id ASC, checked_at ASC, id ASC
	`

	rows, err := q.Query(ctx, query, month.Start(), month.End())
	if err != nil {
		return nil, fmt.Errorf("failed to list checkins for %s: %w", month, database.Classify(err))
	}
	defer rows.Close()

	events := make([]checkin.CheckinEvent, 0)
	for rows.Next() {
		var ev checkin.CheckinEvent
		if err := rows.Scan(&ev.EmployeeID, &ev.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan checkin: %w", err)
		}
		ev.Timestamp = timestamp.WallClock(ev.Timestamp)
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating checkins: %w", database.Classify(err))
	}

	return events, nil
}
