// Package memstore provides the in-memory backing table shared by the four
// record stores. It exists for tests and database-less development; construct
// one per run, never share a process-wide instance.
package memstore

import (
	"sort"
	"sync"
)

// Table holds records of one type keyed by a serial surrogate id. All methods
// are safe for concurrent use.
type Table[T any] struct {
	mu     sync.Mutex
	rows   map[int]T
	nextID int
}

func NewTable[T any]() *Table[T] {
	return &Table[T]{rows: make(map[int]T), nextID: 1}
}

// Insert stores a new record. assign receives the allocated id and must
// return the record to persist.
func (t *Table[T]) Insert(assign func(id int) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextID
	t.nextID++
	row := assign(id)
	t.rows[id] = row
	return row
}

func (t *Table[T]) Get(id int) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	return row, ok
}

// Update applies merge to the stored record and persists the result. Returns
// false when no record has the given id.
func (t *Table[T]) Update(id int, merge func(current T) T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	current, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	updated := merge(current)
	t.rows[id] = updated
	return updated, true
}

func (t *Table[T]) Delete(id int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// List returns every record in ascending id order, so repeated reads observe
// a stable ordering.
func (t *Table[T]) List() []T {
	return t.Find(func(T) bool { return true })
}

// Find returns the records matching the predicate in ascending id order.
func (t *Table[T]) Find(match func(T) bool) []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	ids := make([]int, 0, len(t.rows))
	for id, row := range t.rows {
		if match(row) {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}
