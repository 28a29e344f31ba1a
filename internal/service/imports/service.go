package imports

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/checkin"
	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/imports"
	"github.com/cmlabs-hris/overtime-backend-go/internal/observability"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/timestamp"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

const (
	DefaultChunkSize = 50

	kindCheckins  = "checkins"
	kindEmployees = "employees"
)

type ImportServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	checkinRepo  checkin.CheckinRepository
	chunkSize    int
}

func NewImportService(
	employeeRepo employee.EmployeeRepository,
	checkinRepo checkin.CheckinRepository,
	chunkSize int,
) imports.ImportService {
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}
	return &ImportServiceImpl{
		employeeRepo: employeeRepo,
		checkinRepo:  checkinRepo,
		chunkSize:    chunkSize,
	}
}

// ImportCheckins implements imports.ImportService.
func (s *ImportServiceImpl) ImportCheckins(ctx context.Context, rows []imports.CheckinRow) (imports.ImportResult, error) {
	result := newResult(len(rows))
	logger := slog.With("batch_id", result.BatchID, "kind", kindCheckins)

	events := make([]checkin.CheckinEvent, 0, len(rows))
	lines := make([]int, 0, len(rows))
	for _, row := range rows {
		id, ok := validator.ParseID(strings.TrimSpace(row.UserID))
		if !ok {
			logger.Debug("Skipping row without valid user id", "line", row.Line)
			result.Skipped++
			continue
		}
		ts, err := timestamp.Parse(row.CheckTime)
		if err != nil {
			logger.Debug("Skipping row with invalid timestamp", "line", row.Line, "error", err)
			result.Skipped++
			continue
		}
		events = append(events, checkin.CheckinEvent{EmployeeID: id, Timestamp: ts})
		lines = append(lines, row.Line)
	}
	observability.RecordImportRows(kindCheckins, "skipped", result.Skipped)

	err := writeChunks(ctx, logger, kindCheckins, s.chunkSize, events, lines, &result, s.checkinRepo.InsertBatch)
	logger.Info("Check-in import finished",
		"received", result.Received, "written", result.Written, "skipped", result.Skipped,
		"failed", result.Failed, "chunks", result.Chunks, "aborted", result.Aborted)
	return result, err
}

// ImportEmployees implements imports.ImportService.
func (s *ImportServiceImpl) ImportEmployees(ctx context.Context, rows []imports.EmployeeRow) (imports.ImportResult, error) {
	result := newResult(len(rows))
	logger := slog.With("batch_id", result.BatchID, "kind", kindEmployees)

	employees := make([]employee.Employee, 0, len(rows))
	lines := make([]int, 0, len(rows))
	for _, row := range rows {
		id, ok := validator.ParseID(strings.TrimSpace(row.UserID))
		if !ok {
			logger.Debug("Skipping row without valid user id", "line", row.Line)
			result.Skipped++
			continue
		}
		badge, name := strings.TrimSpace(row.BadgeNumber), strings.TrimSpace(row.Name)
		if badge == "" || name == "" {
			// An upsert with blank identity would overwrite the stored one.
			logger.Debug("Skipping row without badge number or name", "line", row.Line)
			result.Skipped++
			continue
		}
		employees = append(employees, employee.Employee{
			ID:          id,
			BadgeNumber: badge,
			Name:        name,
		})
		lines = append(lines, row.Line)
	}
	observability.RecordImportRows(kindEmployees, "skipped", result.Skipped)

	err := writeChunks(ctx, logger, kindEmployees, s.chunkSize, employees, lines, &result, s.employeeRepo.UpsertBatch)
	logger.Info("Employee import finished",
		"received", result.Received, "written", result.Written, "skipped", result.Skipped,
		"failed", result.Failed, "chunks", result.Chunks, "aborted", result.Aborted)
	return result, err
}

func newResult(received int) imports.ImportResult {
	return imports.ImportResult{
		BatchID:  uuid.NewString(),
		Received: received,
		Errors:   []imports.RowError{},
	}
}

// writeChunks writes items sequentially in chunks of size. A failing chunk marks
// its rows failed and the loop continues; resource exhaustion stops the batch
// and leaves the remaining rows unattempted.
func writeChunks[T any](
	ctx context.Context,
	logger *slog.Logger,
	kind string,
	size int,
	items []T,
	lines []int,
	result *imports.ImportResult,
	write func(context.Context, []T) (int64, error),
) error {
	for start := 0; start < len(items); start += size {
		if err := ctx.Err(); err != nil {
			return err
		}

		end := min(start+size, len(items))
		chunk := items[start:end]
		result.Chunks++

		written, err := write(ctx, chunk)
		if err != nil {
			if errors.Is(err, database.ErrResourceExhausted) {
				result.Aborted = true
				observability.RecordBusyAbort(kind)
				logger.Error("Aborting import, storage exhausted", "chunk", result.Chunks, "error", err)
				return fmt.Errorf("%w: %w", imports.ErrServiceBusy, err)
			}

			result.Failed += len(chunk)
			observability.RecordFailedChunk(kind)
			observability.RecordImportRows(kind, "failed", len(chunk))
			logger.Warn("Chunk write failed", "chunk", result.Chunks, "rows", len(chunk), "error", err)

			reason := fmt.Errorf("%w: %v", imports.ErrRowWrite, err).Error()
			for _, line := range lines[start:end] {
				result.Errors = append(result.Errors, imports.RowError{Line: line, Reason: reason})
			}
			continue
		}

		result.Written += int(written)
		observability.RecordImportRows(kind, "written", int(written))
	}
	return nil
}
