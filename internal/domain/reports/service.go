package reports

import (
	"context"
	"math"

	"hrdesk/internal/domain/attendance"
	"hrdesk/internal/domain/employee"
	"hrdesk/internal/domain/leave"
	"hrdesk/internal/domain/payroll"
)

type EmployeeSource interface {
	List(ctx context.Context) ([]employee.Employee, error)
}

type AttendanceSource interface {
	ListByDate(ctx context.Context, date string) ([]attendance.Record, error)
}

type LeaveSource interface {
	List(ctx context.Context) ([]leave.Request, error)
}

type PayrollSource interface {
	List(ctx context.Context) ([]payroll.Record, error)
}

// Service computes read-side projections over already-materialized record
// collections. Nothing here is persisted.
type Service struct {
	employees  EmployeeSource
	attendance AttendanceSource
	leaves     LeaveSource
	payrolls   PayrollSource
}

func NewService(employees EmployeeSource, att AttendanceSource, leaves LeaveSource, payrolls PayrollSource) *Service {
	return &Service{employees: employees, attendance: att, leaves: leaves, payrolls: payrolls}
}

// Stats are the dashboard counters.
type Stats struct {
	TotalEmployees int `json:"totalEmployees"`
	PresentToday   int `json:"presentToday"`
	LeaveRequests  int `json:"leaveRequests"`
	AvgSalary      int `json:"avgSalary"`
}

// Dashboard computes the four dashboard counters for the given calendar day.
func (s *Service) Dashboard(ctx context.Context, today string) (Stats, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	todayRecords, err := s.attendance.ListByDate(ctx, today)
	if err != nil {
		return Stats{}, err
	}
	leaves, err := s.leaves.List(ctx)
	if err != nil {
		return Stats{}, err
	}

	presentToday := 0
	for _, rec := range latestPerEmployee(todayRecords) {
		if rec.Status == attendance.StatusPresent {
			presentToday++
		}
	}

	pending := 0
	for _, req := range leaves {
		if req.Status == leave.StatusPending {
			pending++
		}
	}

	totalSalary := Sum(employees, func(emp employee.Employee) float64 {
		if emp.Salary == nil {
			return 0
		}
		return *emp.Salary
	})

	return Stats{
		TotalEmployees: len(employees),
		PresentToday:   presentToday,
		LeaveRequests:  pending,
		AvgSalary:      int(math.Round(Rate(totalSalary, float64(len(employees))))),
	}, nil
}

// PayrollSummary totals a payroll record set.
type PayrollSummary struct {
	TotalGross      float64 `json:"totalGross"`
	TotalNet        float64 `json:"totalNet"`
	TotalDeductions float64 `json:"totalDeductions"`
	AvgNet          float64 `json:"avgNet"`
}

// Overview is the extended read-side projection: categorical breakdowns plus
// payroll totals.
type Overview struct {
	Departments        []Distribution `json:"departments"`
	EmploymentTypes    []Distribution `json:"employmentTypes"`
	LeaveTypes         []Distribution `json:"leaveTypes"`
	AttendanceToday    []Distribution `json:"attendanceToday"`
	Payroll            PayrollSummary `json:"payroll"`
	PayrollRecordCount int            `json:"payrollRecordCount"`
}

func (s *Service) Overview(ctx context.Context, today string) (Overview, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return Overview{}, err
	}
	todayRecords, err := s.attendance.ListByDate(ctx, today)
	if err != nil {
		return Overview{}, err
	}
	leaves, err := s.leaves.List(ctx)
	if err != nil {
		return Overview{}, err
	}
	payrolls, err := s.payrolls.List(ctx)
	if err != nil {
		return Overview{}, err
	}

	dayRecords := latestPerEmployee(todayRecords)

	summary := PayrollSummary{
		TotalGross:      Sum(payrolls, func(rec payroll.Record) float64 { return rec.GrossPay }),
		TotalNet:        Sum(payrolls, func(rec payroll.Record) float64 { return rec.NetPay }),
		TotalDeductions: Sum(payrolls, func(rec payroll.Record) float64 { return rec.Deductions }),
	}
	summary.AvgNet = Rate(summary.TotalNet, float64(len(payrolls)))

	return Overview{
		Departments: Distribute(
			GroupCount(employees, func(emp employee.Employee) string { return emp.Department }),
			len(employees)),
		EmploymentTypes: Distribute(
			GroupCount(employees, func(emp employee.Employee) string { return emp.EmploymentType }),
			len(employees)),
		LeaveTypes: Distribute(
			GroupCount(leaves, func(req leave.Request) string { return req.LeaveType }),
			len(leaves)),
		AttendanceToday: Distribute(
			GroupCount(dayRecords, func(rec attendance.Record) string { return rec.Status }),
			len(dayRecords)),
		Payroll:            summary,
		PayrollRecordCount: len(payrolls),
	}, nil
}

// latestPerEmployee collapses duplicate records for the same employee to the
// most recently created one (highest id). Nothing stops two attendance rows
// for one employee+day, so projections need a deterministic pick.
func latestPerEmployee(records []attendance.Record) []attendance.Record {
	latest := make(map[string]attendance.Record, len(records))
	for _, rec := range records {
		if existing, ok := latest[rec.EmployeeID]; !ok || rec.ID > existing.ID {
			latest[rec.EmployeeID] = rec
		}
	}
	out := make([]attendance.Record, 0, len(latest))
	for _, rec := range latest {
		out = append(out, rec)
	}
	return out
}
