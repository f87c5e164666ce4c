package payroll

import (
	"context"
	"time"

	"hrdesk/internal/platform/memstore"
)

type MemoryStore struct {
	table *memstore.Table[Record]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{table: memstore.NewTable[Record]()}
}

func (s *MemoryStore) List(_ context.Context) ([]Record, error) {
	return s.table.List(), nil
}

func (s *MemoryStore) ListByEmployee(_ context.Context, employeeID string) ([]Record, error) {
	return s.table.Find(func(rec Record) bool { return rec.EmployeeID == employeeID }), nil
}

func (s *MemoryStore) Get(_ context.Context, id int) (*Record, error) {
	rec, ok := s.table.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (s *MemoryStore) Create(_ context.Context, rec Record) (*Record, error) {
	created := s.table.Insert(func(id int) Record {
		rec.ID = id
		rec.ProcessedAt = time.Now().UTC()
		return rec
	})
	return &created, nil
}

func (s *MemoryStore) Update(_ context.Context, id int, patch Patch) (*Record, error) {
	updated, ok := s.table.Update(id, patch.apply)
	if !ok {
		return nil, ErrNotFound
	}
	return &updated, nil
}
