package imports

import "errors"

var (
	// ErrServiceBusy is returned when storage capacity was exhausted mid-batch.
	// Rows after the failing chunk were not attempted; the caller may retry.
	ErrServiceBusy = errors.New("service busy, retry later")

	// ErrRowWrite marks a row that could not be persisted for a non-fatal reason.
	ErrRowWrite = errors.New("row write failed")

	ErrEmptyFile      = errors.New("import file contains no data rows")
	ErrMissingColumns = errors.New("import file is missing required columns")
)
