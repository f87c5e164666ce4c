package attendance

import (
	"context"
	"time"
)

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.store.List(ctx)
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID string) ([]Record, error) {
	return s.store.ListByEmployee(ctx, employeeID)
}

func (s *Service) ListByDate(ctx context.Context, date string) ([]Record, error) {
	return s.store.ListByDate(ctx, date)
}

// Create handles the full-form entry path. When both clock strings are
// supplied the hours worked are derived from them, overriding any
// caller-supplied value.
func (s *Service) Create(ctx context.Context, in NewRecord) (*Record, error) {
	rec := Record{
		EmployeeID:  in.EmployeeID,
		Date:        in.Date,
		ClockIn:     in.ClockIn,
		ClockOut:    in.ClockOut,
		Status:      in.Status,
		HoursWorked: in.HoursWorked,
	}

	if hasValue(in.ClockIn) && hasValue(in.ClockOut) {
		hours, err := DeriveHours(in.Date, *in.ClockIn, *in.ClockOut)
		if err != nil {
			return nil, err
		}
		rec.HoursWorked = &hours
	}

	return s.store.Create(ctx, rec)
}

// QuickMark records attendance without clock times: a present mark credits
// the standard day and stamps the current time-of-day as clock-in; any other
// status records zero hours and no clock-in.
func (s *Service) QuickMark(ctx context.Context, employeeID, date, status string) (*Record, error) {
	rec := Record{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
	}

	hours := 0.0
	if status == StatusPresent {
		hours = QuickMarkHours
		clockIn := s.now().Format("15:04")
		rec.ClockIn = &clockIn
	}
	rec.HoursWorked = &hours

	return s.store.Create(ctx, rec)
}

func (s *Service) Update(ctx context.Context, id int, patch Patch) (*Record, error) {
	return s.store.Update(ctx, id, patch)
}

func hasValue(value *string) bool {
	return value != nil && *value != ""
}
