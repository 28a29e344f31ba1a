package imports

import "context"

// ImportService performs chunked, partially-successful batch writes.
type ImportService interface {
	ImportCheckins(ctx context.Context, rows []CheckinRow) (ImportResult, error)
	ImportEmployees(ctx context.Context, rows []EmployeeRow) (ImportResult, error)
}
