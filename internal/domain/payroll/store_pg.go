package payroll

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

const recordColumns = `id, employee_id, pay_period, basic_salary, overtime, bonuses, deductions, gross_pay, net_pay, processed_at`

func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.PayPeriod, &rec.BasicSalary, &rec.Overtime,
		&rec.Bonuses, &rec.Deductions, &rec.GrossPay, &rec.NetPay, &rec.ProcessedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *PGStore) list(ctx context.Context, query string, args ...any) ([]Record, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func (s *PGStore) List(ctx context.Context) ([]Record, error) {
	return s.list(ctx, `SELECT `+recordColumns+` FROM payroll ORDER BY id`)
}

func (s *PGStore) ListByEmployee(ctx context.Context, employeeID string) ([]Record, error) {
	return s.list(ctx, `SELECT `+recordColumns+` FROM payroll WHERE employee_id = $1 ORDER BY id`, employeeID)
}

func (s *PGStore) Get(ctx context.Context, id int) (*Record, error) {
	row := s.DB.QueryRow(ctx, `SELECT `+recordColumns+` FROM payroll WHERE id = $1`, id)
	return scanRecord(row)
}

func (s *PGStore) Create(ctx context.Context, rec Record) (*Record, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO payroll (employee_id, pay_period, basic_salary, overtime, bonuses, deductions, gross_pay, net_pay)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING `+recordColumns,
		rec.EmployeeID, rec.PayPeriod, rec.BasicSalary, rec.Overtime, rec.Bonuses,
		rec.Deductions, rec.GrossPay, rec.NetPay,
	)
	return scanRecord(row)
}

func (s *PGStore) Update(ctx context.Context, id int, patch Patch) (*Record, error) {
	row := s.DB.QueryRow(ctx, `
    UPDATE payroll SET
      employee_id = COALESCE($1, employee_id),
      pay_period = COALESCE($2, pay_period),
      basic_salary = COALESCE($3, basic_salary),
      overtime = COALESCE($4, overtime),
      bonuses = COALESCE($5, bonuses),
      deductions = COALESCE($6, deductions),
      gross_pay = COALESCE($7, gross_pay),
      net_pay = COALESCE($8, net_pay)
    WHERE id = $9
    RETURNING `+recordColumns,
		patch.EmployeeID, patch.PayPeriod, patch.BasicSalary, patch.Overtime,
		patch.Bonuses, patch.Deductions, patch.GrossPay, patch.NetPay, id,
	)
	return scanRecord(row)
}
