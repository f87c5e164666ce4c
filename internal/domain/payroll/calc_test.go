package payroll

import (
	"context"
	"testing"
)

func TestComputeTotals(t *testing.T) {
	gross, net := ComputeTotals(5000, 200, 300, 150)
	if gross != 5500 {
		t.Fatalf("expected gross 5500, got %v", gross)
	}
	if net != 5350 {
		t.Fatalf("expected net 5350, got %v", net)
	}
}

func TestComputeTotalsZeroComponents(t *testing.T) {
	gross, net := ComputeTotals(0, 0, 0, 0)
	if gross != 0 || net != 0 {
		t.Fatalf("expected zero totals, got gross %v net %v", gross, net)
	}
}

func TestCreateRecomputesTotals(t *testing.T) {
	svc := NewService(NewMemoryStore())

	rec, err := svc.Create(context.Background(), NewRecord{
		EmployeeID:  "EMP-AAAA1111",
		PayPeriod:   "2025-06",
		BasicSalary: 5000,
		Overtime:    200,
		Bonuses:     300,
		Deductions:  150,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if rec.GrossPay != 5500 {
		t.Fatalf("expected gross 5500, got %v", rec.GrossPay)
	}
	if rec.NetPay != 5350 {
		t.Fatalf("expected net 5350, got %v", rec.NetPay)
	}
	if rec.ProcessedAt.IsZero() {
		t.Fatal("expected processed-at to be stamped")
	}
}

func TestUpdateMergesWithoutRecompute(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	rec, err := svc.Create(ctx, NewRecord{EmployeeID: "EMP-AAAA1111", PayPeriod: "2025-06", BasicSalary: 5000})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	bonuses := 500.0
	updated, err := svc.Update(ctx, rec.ID, Patch{Bonuses: &bonuses})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Bonuses != 500 {
		t.Fatalf("expected bonuses 500, got %v", updated.Bonuses)
	}
	if updated.GrossPay != rec.GrossPay {
		t.Fatalf("update must not recompute gross, got %v", updated.GrossPay)
	}
}

func TestUpdateMissingRecord(t *testing.T) {
	svc := NewService(NewMemoryStore())
	if _, err := svc.Update(context.Background(), 99, Patch{}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
