package imports

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/checkin"
	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/imports"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/timestamp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCheckinRepo fails the chunks whose 1-based index appears in failAt.
type fakeCheckinRepo struct {
	calls   int
	failAt  map[int]error
	written []checkin.CheckinEvent
}

func (f *fakeCheckinRepo) InsertBatch(_ context.Context, events []checkin.CheckinEvent) (int64, error) {
	f.calls++
	if err, ok := f.failAt[f.calls]; ok {
		return 0, err
	}
	f.written = append(f.written, events...)
	return int64(len(events)), nil
}

func (f *fakeCheckinRepo) ListByMonth(context.Context, timestamp.Month) ([]checkin.CheckinEvent, error) {
	return f.written, nil
}

type fakeEmployeeRepo struct {
	calls   int
	failAt  map[int]error
	written []employee.Employee
}

func (f *fakeEmployeeRepo) UpsertBatch(_ context.Context, employees []employee.Employee) (int64, error) {
	f.calls++
	if err, ok := f.failAt[f.calls]; ok {
		return 0, err
	}
	f.written = append(f.written, employees...)
	return int64(len(employees)), nil
}

func (f *fakeEmployeeRepo) List(context.Context) ([]employee.Employee, error) {
	return f.written, nil
}

func checkinRows(n int) []imports.CheckinRow {
	rows := make([]imports.CheckinRow, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, imports.CheckinRow{
			Line:      i + 2,
			UserID:    fmt.Sprintf("%d", i%5+1),
			CheckTime: fmt.Sprintf("2024-03-05 08:%02d:00", i%60),
		})
	}
	return rows
}

func TestImportCheckins_AllChunksSucceed(t *testing.T) {
	repo := &fakeCheckinRepo{}
	svc := NewImportService(&fakeEmployeeRepo{}, repo, 50)

	result, err := svc.ImportCheckins(context.Background(), checkinRows(120))
	require.NoError(t, err)

	assert.Equal(t, 120, result.Received)
	assert.Equal(t, 120, result.Written)
	assert.Equal(t, 3, result.Chunks)
	assert.Equal(t, 3, repo.calls)
	assert.False(t, result.Aborted)
	assert.Empty(t, result.Errors)
	_, parseErr := uuid.Parse(result.BatchID)
	assert.NoError(t, parseErr)
}

func TestImportCheckins_FailedChunkDoesNotStopBatch(t *testing.T) {
	repo := &fakeCheckinRepo{failAt: map[int]error{2: errors.New("unique violation")}}
	svc := NewImportService(&fakeEmployeeRepo{}, repo, 50)

	rows := checkinRows(120)
	result, err := svc.ImportCheckins(context.Background(), rows)
	require.NoError(t, err)

	assert.Equal(t, 70, result.Written)
	assert.Equal(t, 50, result.Failed)
	assert.Equal(t, 3, result.Chunks)
	require.Len(t, result.Errors, 50)
	assert.Equal(t, rows[50].Line, result.Errors[0].Line)
	assert.Equal(t, rows[99].Line, result.Errors[49].Line)
	assert.Contains(t, result.Errors[0].Reason, imports.ErrRowWrite.Error())
	assert.Equal(t, result.Received, result.Written+result.Failed+result.Skipped)
}

func TestImportCheckins_ResourceExhaustionAborts(t *testing.T) {
	exhausted := fmt.Errorf("copy: %w", database.ErrResourceExhausted)
	repo := &fakeCheckinRepo{failAt: map[int]error{2: exhausted}}
	svc := NewImportService(&fakeEmployeeRepo{}, repo, 50)

	result, err := svc.ImportCheckins(context.Background(), checkinRows(200))
	require.Error(t, err)
	assert.ErrorIs(t, err, imports.ErrServiceBusy)
	assert.ErrorIs(t, err, database.ErrResourceExhausted)

	assert.True(t, result.Aborted)
	assert.Equal(t, 50, result.Written)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 2, result.Chunks)
	assert.Equal(t, 2, repo.calls, "chunks after the exhausted one must not be attempted")
}

func TestImportCheckins_SkipsInvalidRows(t *testing.T) {
	repo := &fakeCheckinRepo{}
	svc := NewImportService(&fakeEmployeeRepo{}, repo, 50)

	rows := []imports.CheckinRow{
		{Line: 2, UserID: "7", CheckTime: "05/03/2024 18:00"},
		{Line: 3, UserID: "", CheckTime: "2024-03-05 18:00"},
		{Line: 4, UserID: "7", CheckTime: "yesterday"},
		{Line: 5, UserID: "abc", CheckTime: "2024-03-05 18:00"},
		{Line: 6, UserID: "7", CheckTime: ""},
		{Line: 7, UserID: " 7 ", CheckTime: "2024-03-05 18:30:15"},
	}
	result, err := svc.ImportCheckins(context.Background(), rows)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Written)
	assert.Equal(t, 4, result.Skipped)
	require.Len(t, repo.written, 2)
	assert.Equal(t, "2024-03-05 18:00:00", timestamp.Format(repo.written[0].Timestamp))
	assert.Equal(t, int64(7), repo.written[1].EmployeeID)
}

func TestImportCheckins_EmptyInput(t *testing.T) {
	repo := &fakeCheckinRepo{}
	svc := NewImportService(&fakeEmployeeRepo{}, repo, 50)

	result, err := svc.ImportCheckins(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Chunks)
	assert.Equal(t, 0, repo.calls)
}

func TestImportCheckins_CancelledContext(t *testing.T) {
	repo := &fakeCheckinRepo{}
	svc := NewImportService(&fakeEmployeeRepo{}, repo, 50)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.ImportCheckins(ctx, checkinRows(10))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, repo.calls)
}

func TestImportEmployees_Upserts(t *testing.T) {
	repo := &fakeEmployeeRepo{failAt: map[int]error{1: errors.New("deadlock detected")}}
	svc := NewImportService(repo, &fakeCheckinRepo{}, 2)

	rows := []imports.EmployeeRow{
		{Line: 2, UserID: "1", BadgeNumber: "B1", Name: " Ani "},
		{Line: 3, UserID: "2", BadgeNumber: "B2", Name: "Budi"},
		{Line: 4, UserID: "", BadgeNumber: "B3", Name: "Citra"},
		{Line: 5, UserID: "4", BadgeNumber: " B4 ", Name: "Dewi"},
	}
	result, err := svc.ImportEmployees(context.Background(), rows)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 2, result.Failed)
	assert.Equal(t, 1, result.Written)
	assert.Equal(t, 2, result.Chunks)
	require.Len(t, repo.written, 1)
	assert.Equal(t, employee.Employee{ID: 4, BadgeNumber: "B4", Name: "Dewi"}, repo.written[0])
	assert.Equal(t, []imports.RowError{
		{Line: 2, Reason: result.Errors[0].Reason},
		{Line: 3, Reason: result.Errors[1].Reason},
	}, result.Errors)
}

func TestNewImportService_DefaultsChunkSize(t *testing.T) {
	svc := NewImportService(&fakeEmployeeRepo{}, &fakeCheckinRepo{}, 0).(*ImportServiceImpl)
	assert.Equal(t, DefaultChunkSize, svc.chunkSize)
}

func TestImportEmployees_SkipsBlankIdentity(t *testing.T) {
	repo := &fakeEmployeeRepo{}
	svc := NewImportService(repo, &fakeCheckinRepo{}, 50)

	rows := []imports.EmployeeRow{
		{Line: 2, UserID: "7", BadgeNumber: "", Name: ""},
		{Line: 3, UserID: "8", BadgeNumber: "B8", Name: "  "},
		{Line: 4, UserID: "9", BadgeNumber: "", Name: "Guard"},
	}
	result, err := svc.ImportEmployees(context.Background(), rows)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Skipped)
	assert.Equal(t, 0, result.Written)
	assert.Equal(t, 0, result.Chunks)
	assert.Equal(t, 0, repo.calls)
	assert.Empty(t, repo.written)
}

func TestImportCheckins_CountsBlankRowsAsSkipped(t *testing.T) {
	repo := &fakeCheckinRepo{}
	svc := NewImportService(&fakeEmployeeRepo{}, repo, 50)

	result, err := svc.ImportCheckins(context.Background(), []imports.CheckinRow{
		{Line: 2},
		{Line: 3, UserID: "7", CheckTime: "5/3/2024 09:05"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Received)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.Written)
}
