package manualentry

import "errors"

var (
	ErrManualEntryNotFound = errors.New("manual entry not found")
	ErrInvalidID           = errors.New("manual entry id must be a positive integer")
)
