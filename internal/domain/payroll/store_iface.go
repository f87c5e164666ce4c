package payroll

import "context"

type Store interface {
	List(ctx context.Context) ([]Record, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)
	Get(ctx context.Context, id int) (*Record, error)
	Create(ctx context.Context, rec Record) (*Record, error)
	Update(ctx context.Context, id int, patch Patch) (*Record, error)
}
