package http

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/imports"
)

// Column names of the badge system exports, matched case-insensitively.
const (
	colUserID      = "USERID"
	colCheckTime   = "CHECKTIME"
	colBadgeNumber = "BADGENUMBER"
	colName        = "NAME"
)

type csvRecord struct {
	line   int
	fields map[string]string
}

// readCSV reads a ';' delimited export with a header row. Cells are trimmed
// and short rows yield empty values for the missing columns. Rows with blank
// cells are kept so the import service counts them as skipped.
func readCSV(src io.Reader, required ...string) ([]csvRecord, error) {
	reader := csv.NewReader(src)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, imports.ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := columns[name]; !dup {
			columns[name] = i
		}
	}

	var missing []string
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", imports.ErrMissingColumns, strings.Join(missing, ", "))
	}

	var records []csvRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid CSV: %w", err)
		}

		line, _ := reader.FieldPos(0)
		fields := make(map[string]string, len(required))
		for _, name := range required {
			if idx := columns[name]; idx < len(row) {
				fields[name] = strings.TrimSpace(row[idx])
			}
		}
		records = append(records, csvRecord{line: line, fields: fields})
	}

	if len(records) == 0 {
		return nil, imports.ErrEmptyFile
	}
	return records, nil
}

func readCheckinRows(src io.Reader) ([]imports.CheckinRow, error) {
	records, err := readCSV(src, colUserID, colCheckTime)
	if err != nil {
		return nil, err
	}

	rows := make([]imports.CheckinRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, imports.CheckinRow{
			Line:      rec.line,
			UserID:    rec.fields[colUserID],
			CheckTime: rec.fields[colCheckTime],
		})
	}
	return rows, nil
}

func readEmployeeRows(src io.Reader) ([]imports.EmployeeRow, error) {
	records, err := readCSV(src, colUserID, colBadgeNumber, colName)
	if err != nil {
		return nil, err
	}

	rows := make([]imports.EmployeeRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, imports.EmployeeRow{
			Line:        rec.line,
			UserID:      rec.fields[colUserID],
			BadgeNumber: rec.fields[colBadgeNumber],
			Name:        rec.fields[colName],
		})
	}
	return rows, nil
}
