package employee

import "context"

type EmployeeRepository interface {
	// UpsertBatch inserts or updates employees keyed on ID. The whole slice is
	// written atomically; callers chunk large imports.
	UpsertBatch(ctx context.Context, employees []Employee) (int64, error)

	// List returns the full roster ordered by ID.
	List(ctx context.Context) ([]Employee, error)
}
