package memstore

import "testing"

type row struct {
	ID   int
	Name string
}

func insert(t *Table[row], name string) row {
	return t.Insert(func(id int) row { return row{ID: id, Name: name} })
}

func TestInsertAllocatesSerialIDs(t *testing.T) {
	table := NewTable[row]()

	first := insert(table, "a")
	second := insert(table, "b")
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
}

func TestListStableOrder(t *testing.T) {
	table := NewTable[row]()
	for _, name := range []string{"c", "a", "b"} {
		insert(table, name)
	}

	rows := table.List()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i, r := range rows {
		if r.ID != i+1 {
			t.Fatalf("expected ascending id order, got %v", rows)
		}
	}
}

func TestUpdateMissing(t *testing.T) {
	table := NewTable[row]()
	if _, ok := table.Update(9, func(r row) row { return r }); ok {
		t.Fatal("expected update of missing row to report false")
	}
}

func TestDeleteFreesRowButNotID(t *testing.T) {
	table := NewTable[row]()
	first := insert(table, "a")

	if !table.Delete(first.ID) {
		t.Fatal("expected delete to succeed")
	}
	if table.Delete(first.ID) {
		t.Fatal("expected second delete to report false")
	}

	next := insert(table, "b")
	if next.ID != 2 {
		t.Fatalf("ids must not be reused, got %d", next.ID)
	}
}

func TestFind(t *testing.T) {
	table := NewTable[row]()
	insert(table, "keep")
	insert(table, "drop")
	insert(table, "keep")

	kept := table.Find(func(r row) bool { return r.Name == "keep" })
	if len(kept) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(kept))
	}
}
