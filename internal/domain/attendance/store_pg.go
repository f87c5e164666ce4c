package attendance

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

const recordColumns = `id, employee_id, date, clock_in, clock_out, status, hours_worked, created_at`

func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.ClockIn, &rec.ClockOut,
		&rec.Status, &rec.HoursWorked, &rec.CreatedAt,
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
	return s.list(ctx, `SELECT `+recordColumns+` FROM attendance ORDER BY id`)
}

func (s *PGStore) ListByEmployee(ctx context.Context, employeeID string) ([]Record, error) {
	return s.list(ctx, `SELECT `+recordColumns+` FROM attendance WHERE employee_id = $1 ORDER BY id`, employeeID)
}

func (s *PGStore) ListByDate(ctx context.Context, date string) ([]Record, error) {
	return s.list(ctx, `SELECT `+recordColumns+` FROM attendance WHERE date = $1 ORDER BY id`, date)
}

func (s *PGStore) Get(ctx context.Context, id int) (*Record, error) {
	row := s.DB.QueryRow(ctx, `SELECT `+recordColumns+` FROM attendance WHERE id = $1`, id)
	return scanRecord(row)
}

func (s *PGStore) Create(ctx context.Context, rec Record) (*Record, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO attendance (employee_id, date, clock_in, clock_out, status, hours_worked)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING `+recordColumns,
		rec.EmployeeID, rec.Date, rec.ClockIn, rec.ClockOut, rec.Status, rec.HoursWorked,
	)
	return scanRecord(row)
}

func (s *PGStore) Update(ctx context.Context, id int, patch Patch) (*Record, error) {
	row := s.DB.QueryRow(ctx, `
    UPDATE attendance SET
      employee_id = COALESCE($1, employee_id),
      date = COALESCE($2, date),
      clock_in = COALESCE($3, clock_in),
      clock_out = COALESCE($4, clock_out),
      status = COALESCE($5, status),
      hours_worked = COALESCE($6, hours_worked)
    WHERE id = $7
    RETURNING `+recordColumns,
		patch.EmployeeID, patch.Date, patch.ClockIn, patch.ClockOut, patch.Status, patch.HoursWorked, id,
	)
	return scanRecord(row)
}
