package manualentry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/manualentry"
	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/overtime"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/timestamp"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/validator"
)

type ManualEntryServiceImpl struct {
	manualEntryRepo manualentry.ManualEntryRepository
	rounding        overtime.Rounding
}

func NewManualEntryService(manualEntryRepo manualentry.ManualEntryRepository, rounding overtime.Rounding) manualentry.ManualEntryService {
	return &ManualEntryServiceImpl{
		manualEntryRepo: manualEntryRepo,
		rounding:        rounding,
	}
}

// Create implements manualentry.ManualEntryService.
func (s *ManualEntryServiceImpl) Create(ctx context.Context, req manualentry.CreateManualEntryRequest) (manualentry.ManualEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return manualentry.ManualEntryResponse{}, err
	}

	minutes := s.rounding.Minutes(req.EndTime.Sub(req.StartTime))
	if req.DurationMinutes != nil {
		minutes = *req.DurationMinutes
	}

	created, err := s.manualEntryRepo.Create(ctx, manualentry.ManualEntry{
		EmployeeID:      req.EmployeeID,
		Start:           req.StartTime,
		End:             req.EndTime,
		DurationMinutes: minutes,
		Type:            req.Type,
		Note:            req.Note,
	})
	if err != nil {
		return manualentry.ManualEntryResponse{}, fmt.Errorf("failed to create manual entry: %w", err)
	}

	slog.Info("Created manual entry", "id", created.ID, "employee_id", created.EmployeeID, "type", created.Type, "duration_minutes", created.DurationMinutes)
	return manualentry.ToResponse(created), nil
}

// Delete implements manualentry.ManualEntryService.
func (s *ManualEntryServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return manualentry.ErrInvalidID
	}
	if err := s.manualEntryRepo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("Deleted manual entry", "id", id)
	return nil
}

// ListByMonth implements manualentry.ManualEntryService.
func (s *ManualEntryServiceImpl) ListByMonth(ctx context.Context, month string) ([]manualentry.ManualEntryResponse, error) {
	period, err := timestamp.ParseMonth(month)
	if err != nil {
		return nil, validator.ValidationErrors{{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		}}
	}

	entries, err := s.manualEntryRepo.ListByMonth(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list manual entries: %w", err)
	}

	return manualentry.ToResponses(entries), nil
}
