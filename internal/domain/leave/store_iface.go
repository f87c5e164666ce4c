package leave

import "context"

type Store interface {
	List(ctx context.Context) ([]Request, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Request, error)
	Get(ctx context.Context, id int) (*Request, error)
	Create(ctx context.Context, req Request) (*Request, error)
	Update(ctx context.Context, id int, patch Patch) (*Request, error)
}
