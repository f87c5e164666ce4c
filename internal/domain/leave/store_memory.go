package leave

import (
	"context"
	"time"

	"hrdesk/internal/platform/memstore"
)

type MemoryStore struct {
	table *memstore.Table[Request]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{table: memstore.NewTable[Request]()}
}

func (s *MemoryStore) List(_ context.Context) ([]Request, error) {
	return s.table.List(), nil
}

func (s *MemoryStore) ListByEmployee(_ context.Context, employeeID string) ([]Request, error) {
	return s.table.Find(func(req Request) bool { return req.EmployeeID == employeeID }), nil
}

func (s *MemoryStore) Get(_ context.Context, id int) (*Request, error) {
	req, ok := s.table.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &req, nil
}

func (s *MemoryStore) Create(_ context.Context, req Request) (*Request, error) {
	created := s.table.Insert(func(id int) Request {
		req.ID = id
		req.AppliedAt = time.Now().UTC()
		return req
	})
	return &created, nil
}

func (s *MemoryStore) Update(_ context.Context, id int, patch Patch) (*Request, error) {
	updated, ok := s.table.Update(id, patch.apply)
	if !ok {
		return nil, ErrNotFound
	}
	return &updated, nil
}
