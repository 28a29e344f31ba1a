package manualentry

import (
	"regexp"
	"strings"
	"time"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/overtime"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/timestamp"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/validator"
)

var typeRegex = regexp.MustCompile(`^[a-z][a-z_]{1,31}$`)

type CreateManualEntryRequest struct {
	EmployeeID      int64   `json:"employee_id"`
	Start           string  `json:"start"`
	End             string  `json:"end"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	Type            string  `json:"type"`
	Note            *string `json:"note,omitempty"`

	// Populated by Validate
	StartTime time.Time `json:"-"`
	EndTime   time.Time `json:"-"`
}

func (r *CreateManualEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	startOK, endOK := false, false
	if validator.IsEmpty(r.Start) {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start is required",
		})
	} else if t, err := timestamp.ParseManual(r.Start); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must be YYYY-MM-DD HH:mm[:ss], DD/MM/YYYY HH:mm or ISO-8601",
		})
	} else {
		r.StartTime = t
		startOK = true
	}

	if validator.IsEmpty(r.End) {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end is required",
		})
	} else if t, err := timestamp.ParseManual(r.End); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be YYYY-MM-DD HH:mm[:ss], DD/MM/YYYY HH:mm or ISO-8601",
		})
	} else {
		r.EndTime = t
		endOK = true
	}

	if startOK && endOK && !r.EndTime.After(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be after start",
		})
	}

	if r.DurationMinutes != nil && *r.DurationMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "duration_minutes",
			Message: "duration_minutes must not be negative",
		})
	}

	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	if r.Type == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	} else if !typeRegex.MatchString(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be a lowercase category such as overtime or leave",
		})
	}

	if r.Note != nil {
		note := strings.TrimSpace(*r.Note)
		if note == "" {
			r.Note = nil
		} else if len(note) > 500 {
			errs = append(errs, validator.ValidationError{
				Field:   "note",
				Message: "note must not exceed 500 characters",
			})
		} else {
			r.Note = &note
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ManualEntryResponse struct {
	ID              int64   `json:"id"`
	EmployeeID      int64   `json:"employee_id"`
	Date            string  `json:"date"`
	Start           string  `json:"start"`
	End             string  `json:"end"`
	DurationMinutes int     `json:"duration_minutes"`
	DurationLabel   string  `json:"duration_label"`
	Type            string  `json:"type"`
	Note            *string `json:"note,omitempty"`
	Source          string  `json:"source"`
}

func ToResponse(e ManualEntry) ManualEntryResponse {
	return ManualEntryResponse{
		ID:              e.ID,
		EmployeeID:      e.EmployeeID,
		Date:            timestamp.DateKey(e.Start),
		Start:           timestamp.Format(e.Start),
		End:             timestamp.Format(e.End),
		DurationMinutes: e.DurationMinutes,
		DurationLabel:   overtime.FormatDuration(e.DurationMinutes),
		Type:            e.Type,
		Note:            e.Note,
		Source:          string(overtime.SourceManual),
	}
}

func ToResponses(entries []ManualEntry) []ManualEntryResponse {
	out := make([]ManualEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToResponse(e))
	}
	return out
}
