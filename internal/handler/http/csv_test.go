package http

import (
	"strings"
	"testing"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/imports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEmployeeRows_QuotedAndShortRows(t *testing.T) {
	src := "USERID;Badgenumber;Name;Dept\n" +
		"1;\"B;001\";\"Ani, S.\";HR\n" +
		"2;B002\n" +
		"\n" +
		"3;B003;Citra\n"

	rows, err := readEmployeeRows(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, imports.EmployeeRow{Line: 2, UserID: "1", BadgeNumber: "B;001", Name: "Ani, S."}, rows[0])
	assert.Equal(t, imports.EmployeeRow{Line: 3, UserID: "2", BadgeNumber: "B002"}, rows[1])
	assert.Equal(t, 5, rows[2].Line)
}

func TestReadCheckinRows_Errors(t *testing.T) {
	_, err := readCheckinRows(strings.NewReader(""))
	assert.ErrorIs(t, err, imports.ErrEmptyFile)

	_, err = readCheckinRows(strings.NewReader("USERID;CHECKTIME\n"))
	assert.ErrorIs(t, err, imports.ErrEmptyFile)

	_, err = readCheckinRows(strings.NewReader("ID;TIME\n1;2024-03-05 18:00\n"))
	require.ErrorIs(t, err, imports.ErrMissingColumns)
	assert.Contains(t, err.Error(), "USERID, CHECKTIME")
}

func TestReadCheckinRows_KeepsBlankRows(t *testing.T) {
	rows, err := readCheckinRows(strings.NewReader("USERID;CHECKTIME\n;\n7;2024-03-05 18:00\n"))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, imports.CheckinRow{Line: 2}, rows[0])
	assert.Equal(t, "7", rows[1].UserID)
}
