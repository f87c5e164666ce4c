package employee

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGStore struct {
	DB *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{DB: db}
}

const employeeColumns = `
    id, employee_id, first_name, last_name, email,
    COALESCE(phone, ''), COALESCE(address, ''),
    department, position, start_date, salary, employment_type, status, created_at`

func scanEmployee(row pgx.Row) (*Employee, error) {
	var emp Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeID, &emp.FirstName, &emp.LastName, &emp.Email,
		&emp.Phone, &emp.Address,
		&emp.Department, &emp.Position, &emp.StartDate, &emp.Salary,
		&emp.EmploymentType, &emp.Status, &emp.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *PGStore) List(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *emp)
	}
	return out, rows.Err()
}

func (s *PGStore) Get(ctx context.Context, id int) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
	return scanEmployee(row)
}

func (s *PGStore) GetByEmployeeID(ctx context.Context, employeeID string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE employee_id = $1`, employeeID)
	return scanEmployee(row)
}

func (s *PGStore) Create(ctx context.Context, emp Employee) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO employees (employee_id, first_name, last_name, email, phone, address,
      department, position, start_date, salary, employment_type, status)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    RETURNING `+employeeColumns,
		emp.EmployeeID, emp.FirstName, emp.LastName, emp.Email, nullIfEmpty(emp.Phone), nullIfEmpty(emp.Address),
		emp.Department, emp.Position, emp.StartDate, emp.Salary, emp.EmploymentType, emp.Status,
	)
	return scanEmployee(row)
}

func (s *PGStore) Update(ctx context.Context, id int, patch Patch) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    UPDATE employees SET
      first_name = COALESCE($1, first_name),
      last_name = COALESCE($2, last_name),
      email = COALESCE($3, email),
      phone = COALESCE($4, phone),
      address = COALESCE($5, address),
      department = COALESCE($6, department),
      position = COALESCE($7, position),
      start_date = COALESCE($8, start_date),
      salary = COALESCE($9, salary),
      employment_type = COALESCE($10, employment_type),
      status = COALESCE($11, status)
    WHERE id = $12
    RETURNING `+employeeColumns,
		patch.FirstName, patch.LastName, patch.Email, patch.Phone, patch.Address,
		patch.Department, patch.Position, patch.StartDate, patch.Salary,
		patch.EmploymentType, patch.Status, id,
	)
	return scanEmployee(row)
}

func (s *PGStore) Delete(ctx context.Context, id int) (bool, error) {
	cmd, err := s.DB.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
