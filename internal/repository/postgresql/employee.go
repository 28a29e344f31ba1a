package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// UpsertBatch implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) UpsertBatch(ctx context.Context, employees []employee.Employee) (int64, error) {
	if len(employees) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO employees (id, badge_number, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET badge_number = EXCLUDED.badge_number,
			name = EXCLUDED.name,
			updated_at = NOW()
	`

	var written int64
	err := WithTransaction(ctx, e.db, func(ctx context.Context, tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, emp := range employees {
			batch.Queue(query, emp.ID, emp.BadgeNumber, emp.Name)
		}

		results := tx.SendBatch(ctx, batch)
		for range employees {
			tag, err := results.Exec()
			if err != nil {
				_ = results.Close()
				return fmt.Errorf("failed to upsert employee: %w", database.Classify(err))
			}
			written += tag.RowsAffected()
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("failed to close upsert batch: %w", database.Classify(err))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return written, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, badge_number, name, created_at, updated_at
		FROM employees
		ORDER BY id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", database.Classify(err))
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.ID, &emp.BadgeNumber, &emp.Name, &emp.CreatedAt, &emp.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", database.Classify(err))
	}

	return employees, nil
}
