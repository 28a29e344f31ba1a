package manualentry

import "context"

type ManualEntryService interface {
	// Create validates and stores a manual entry
	Create(ctx context.Context, req CreateManualEntryRequest) (ManualEntryResponse, error)

	// Delete removes a manual entry by ID
	Delete(ctx context.Context, id int64) error

	// ListByMonth lists entries for a YYYY-MM period
	ListByMonth(ctx context.Context, month string) ([]ManualEntryResponse, error)
}
