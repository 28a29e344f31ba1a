package employee

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	roster []employee.Employee
	err    error
}

func (f *fakeEmployeeRepo) UpsertBatch(context.Context, []employee.Employee) (int64, error) {
	return 0, nil
}

func (f *fakeEmployeeRepo) List(context.Context) ([]employee.Employee, error) {
	return f.roster, f.err
}

func TestEmployeeService_List(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{roster: []employee.Employee{
		{ID: 1, BadgeNumber: "B1", Name: "Ani"},
		{ID: 2, BadgeNumber: "B2", Name: "Budi"},
	}})

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []employee.EmployeeResponse{
		{ID: 1, BadgeNumber: "B1", Name: "Ani"},
		{ID: 2, BadgeNumber: "B2", Name: "Budi"},
	}, got)
}

func TestEmployeeService_List_Error(t *testing.T) {
	cause := errors.New("pool closed")
	svc := NewEmployeeService(&fakeEmployeeRepo{err: cause})

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, cause)
}
