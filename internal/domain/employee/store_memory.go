package employee

import (
	"context"
	"time"

	"hrdesk/internal/platform/memstore"
)

// MemoryStore keeps employees in a per-instance table. Construct one per test
// run; it is never shared process-wide.
type MemoryStore struct {
	table *memstore.Table[Employee]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{table: memstore.NewTable[Employee]()}
}

func (s *MemoryStore) List(_ context.Context) ([]Employee, error) {
	return s.table.List(), nil
}

func (s *MemoryStore) Get(_ context.Context, id int) (*Employee, error) {
	emp, ok := s.table.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &emp, nil
}

func (s *MemoryStore) GetByEmployeeID(_ context.Context, employeeID string) (*Employee, error) {
	matches := s.table.Find(func(emp Employee) bool { return emp.EmployeeID == employeeID })
	if len(matches) == 0 {
		return nil, ErrNotFound
	}
	return &matches[0], nil
}

func (s *MemoryStore) Create(_ context.Context, emp Employee) (*Employee, error) {
	created := s.table.Insert(func(id int) Employee {
		emp.ID = id
		emp.CreatedAt = time.Now().UTC()
		return emp
	})
	return &created, nil
}

func (s *MemoryStore) Update(_ context.Context, id int, patch Patch) (*Employee, error) {
	updated, ok := s.table.Update(id, patch.apply)
	if !ok {
		return nil, ErrNotFound
	}
	return &updated, nil
}

func (s *MemoryStore) Delete(_ context.Context, id int) (bool, error) {
	return s.table.Delete(id), nil
}
