package checkin

import (
	"context"

	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/timestamp"
)

type CheckinRepository interface {
	// InsertBatch appends events. Duplicates are allowed.
	InsertBatch(ctx context.Context, events []CheckinEvent) (int64, error)

	// ListByMonth returns events whose local date falls inside month,
	// ordered by employee and timestamp.
	ListByMonth(ctx context.Context, month timestamp.Month) ([]CheckinEvent, error)
}
