package response

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/imports"
	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/manualentry"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/validator"
)

// DefaultRetryAfter is advertised when a busy error reaches HandleError directly.
const DefaultRetryAfter = 30 * time.Second

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		PayloadTooLarge(w, "Upload exceeds the maximum allowed size")
		return
	}

	switch {
	// Import domain errors
	case errors.Is(err, imports.ErrServiceBusy), errors.Is(err, database.ErrResourceExhausted):
		ServiceUnavailable(w, "Service busy, retry later", DefaultRetryAfter, nil)
	case errors.Is(err, imports.ErrEmptyFile):
		BadRequest(w, "Import file contains no data rows", nil)
	case errors.Is(err, imports.ErrMissingColumns):
		BadRequest(w, err.Error(), nil)

	// Manual entry domain errors
	case errors.Is(err, manualentry.ErrManualEntryNotFound):
		NotFound(w, "Manual entry not found")
	case errors.Is(err, manualentry.ErrInvalidID):
		BadRequest(w, "Invalid manual entry id", nil)

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
