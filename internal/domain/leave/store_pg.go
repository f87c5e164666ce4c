package leave

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

const requestColumns = `id, employee_id, leave_type, start_date, end_date, COALESCE(reason, ''), status, applied_at, reviewed_at, reviewed_by`

func scanRequest(row pgx.Row) (*Request, error) {
	var req Request
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate,
		&req.Reason, &req.Status, &req.AppliedAt, &req.ReviewedAt, &req.ReviewedBy,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *PGStore) list(ctx context.Context, query string, args ...any) ([]Request, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *req)
	}
	return out, rows.Err()
}

func (s *PGStore) List(ctx context.Context) ([]Request, error) {
	return s.list(ctx, `SELECT `+requestColumns+` FROM leave_requests ORDER BY id`)
}

func (s *PGStore) ListByEmployee(ctx context.Context, employeeID string) ([]Request, error) {
	return s.list(ctx, `SELECT `+requestColumns+` FROM leave_requests WHERE employee_id = $1 ORDER BY id`, employeeID)
}

func (s *PGStore) Get(ctx context.Context, id int) (*Request, error) {
	row := s.DB.QueryRow(ctx, `SELECT `+requestColumns+` FROM leave_requests WHERE id = $1`, id)
	return scanRequest(row)
}

func (s *PGStore) Create(ctx context.Context, req Request) (*Request, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO leave_requests (employee_id, leave_type, start_date, end_date, reason, status)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING `+requestColumns,
		req.EmployeeID, req.LeaveType, req.StartDate, req.EndDate, nullIfEmpty(req.Reason), req.Status,
	)
	return scanRequest(row)
}

func (s *PGStore) Update(ctx context.Context, id int, patch Patch) (*Request, error) {
	row := s.DB.QueryRow(ctx, `
    UPDATE leave_requests SET
      employee_id = COALESCE($1, employee_id),
      leave_type = COALESCE($2, leave_type),
      start_date = COALESCE($3, start_date),
      end_date = COALESCE($4, end_date),
      reason = COALESCE($5, reason),
      status = COALESCE($6, status),
      reviewed_at = COALESCE($7, reviewed_at),
      reviewed_by = COALESCE($8, reviewed_by)
    WHERE id = $9
    RETURNING `+requestColumns,
		patch.EmployeeID, patch.LeaveType, patch.StartDate, patch.EndDate, patch.Reason,
		patch.Status, patch.ReviewedAt, patch.ReviewedBy, id,
	)
	return scanRequest(row)
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
