package employee

import "context"

// Store persists employee records. Two implementations exist: the pgx-backed
// store and an in-memory table for tests and database-less development.
type Store interface {
	List(ctx context.Context) ([]Employee, error)
	Get(ctx context.Context, id int) (*Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	Create(ctx context.Context, emp Employee) (*Employee, error)
	Update(ctx context.Context, id int, patch Patch) (*Employee, error)
	Delete(ctx context.Context, id int) (bool, error)
}
