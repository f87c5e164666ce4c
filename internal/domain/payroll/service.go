package payroll

import "context"

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.store.List(ctx)
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID string) ([]Record, error) {
	return s.store.ListByEmployee(ctx, employeeID)
}

// Create persists a payroll record with gross and net pay recomputed from the
// components immediately before persistence.
func (s *Service) Create(ctx context.Context, in NewRecord) (*Record, error) {
	gross, net := ComputeTotals(in.BasicSalary, in.Overtime, in.Bonuses, in.Deductions)
	return s.store.Create(ctx, Record{
		EmployeeID:  in.EmployeeID,
		PayPeriod:   in.PayPeriod,
		BasicSalary: in.BasicSalary,
		Overtime:    in.Overtime,
		Bonuses:     in.Bonuses,
		Deductions:  in.Deductions,
		GrossPay:    gross,
		NetPay:      net,
	})
}

func (s *Service) Update(ctx context.Context, id int, patch Patch) (*Record, error) {
	return s.store.Update(ctx, id, patch)
}
