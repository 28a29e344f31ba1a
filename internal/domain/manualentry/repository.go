package manualentry

import (
	"context"

	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/timestamp"
)

type ManualEntryRepository interface {
	Create(ctx context.Context, entry ManualEntry) (ManualEntry, error)

	// Delete hard deletes the entry. Returns ErrManualEntryNotFound when no row matched.
	Delete(ctx context.Context, id int64) error

	// ListByMonth returns entries whose start falls in month, ordered by start.
	ListByMonth(ctx context.Context, month timestamp.Month) ([]ManualEntry, error)
}
