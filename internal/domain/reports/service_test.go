package reports

import (
	"context"
	"testing"

	"hrdesk/internal/domain/attendance"
	"hrdesk/internal/domain/employee"
	"hrdesk/internal/domain/leave"
	"hrdesk/internal/domain/payroll"
)

const today = "2025-06-02"

type fixture struct {
	employees  *employee.MemoryStore
	attendance *attendance.MemoryStore
	leaves     *leave.MemoryStore
	payrolls   *payroll.MemoryStore
	service    *Service
}

func newFixture() *fixture {
	f := &fixture{
		employees:  employee.NewMemoryStore(),
		attendance: attendance.NewMemoryStore(),
		leaves:     leave.NewMemoryStore(),
		payrolls:   payroll.NewMemoryStore(),
	}
	f.service = NewService(f.employees, f.attendance, f.leaves, f.payrolls)
	return f
}

func (f *fixture) addEmployee(t *testing.T, number, department string, salary float64) {
	t.Helper()
	_, err := f.employees.Create(context.Background(), employee.Employee{
		EmployeeID:     number,
		FirstName:      "Test",
		LastName:       "Person",
		Email:          number + "@example.com",
		Department:     department,
		Position:       "Staff",
		StartDate:      "2025-01-01",
		Salary:         &salary,
		EmploymentType: "full-time",
		Status:         employee.StatusActive,
	})
	if err != nil {
		t.Fatalf("seed employee failed: %v", err)
	}
}

func (f *fixture) addAttendance(t *testing.T, number, date, status string) {
	t.Helper()
	_, err := f.attendance.Create(context.Background(), attendance.Record{
		EmployeeID: number,
		Date:       date,
		Status:     status,
	})
	if err != nil {
		t.Fatalf("seed attendance failed: %v", err)
	}
}

func TestDashboardCounters(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.addEmployee(t, "EMP-AAAA1111", "engineering", 5000)
	f.addEmployee(t, "EMP-BBBB2222", "engineering", 6000)
	f.addEmployee(t, "EMP-CCCC3333", "sales", 4000)

	f.addAttendance(t, "EMP-AAAA1111", today, attendance.StatusPresent)
	f.addAttendance(t, "EMP-BBBB2222", today, attendance.StatusAbsent)
	f.addAttendance(t, "EMP-CCCC3333", "2025-06-01", attendance.StatusPresent)

	for _, status := range []string{leave.StatusPending, leave.StatusPending, leave.StatusApproved} {
		if _, err := f.leaves.Create(ctx, leave.Request{
			EmployeeID: "EMP-AAAA1111",
			LeaveType:  "vacation",
			StartDate:  "2025-07-01",
			EndDate:    "2025-07-05",
			Status:     status,
		}); err != nil {
			t.Fatalf("seed leave failed: %v", err)
		}
	}

	stats, err := f.service.Dashboard(ctx, today)
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if stats.TotalEmployees != 3 {
		t.Fatalf("expected 3 employees, got %d", stats.TotalEmployees)
	}
	if stats.PresentToday != 1 {
		t.Fatalf("expected 1 present today, got %d", stats.PresentToday)
	}
	if stats.LeaveRequests != 2 {
		t.Fatalf("expected 2 pending requests, got %d", stats.LeaveRequests)
	}
	if stats.AvgSalary != 5000 {
		t.Fatalf("expected average salary 5000, got %d", stats.AvgSalary)
	}
}

func TestDashboardEmpty(t *testing.T) {
	f := newFixture()

	stats, err := f.service.Dashboard(context.Background(), today)
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if stats.TotalEmployees != 0 || stats.PresentToday != 0 || stats.LeaveRequests != 0 || stats.AvgSalary != 0 {
		t.Fatalf("expected zeroed stats, got %+v", stats)
	}
}

func TestDashboardDeduplicatesSameDayRecords(t *testing.T) {
	f := newFixture()

	f.addEmployee(t, "EMP-AAAA1111", "engineering", 5000)
	f.addAttendance(t, "EMP-AAAA1111", today, attendance.StatusPresent)
	f.addAttendance(t, "EMP-AAAA1111", today, attendance.StatusAbsent)

	stats, err := f.service.Dashboard(context.Background(), today)
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if stats.PresentToday != 0 {
		t.Fatalf("latest record is absent, expected 0 present, got %d", stats.PresentToday)
	}
}

func TestOverviewTotals(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.addEmployee(t, "EMP-AAAA1111", "engineering", 5000)
	f.addEmployee(t, "EMP-BBBB2222", "sales", 4000)

	for _, rec := range []payroll.Record{
		{EmployeeID: "EMP-AAAA1111", PayPeriod: "2025-06", GrossPay: 5500, NetPay: 5350, Deductions: 150},
		{EmployeeID: "EMP-BBBB2222", PayPeriod: "2025-06", GrossPay: 4000, NetPay: 3800, Deductions: 200},
	} {
		if _, err := f.payrolls.Create(ctx, rec); err != nil {
			t.Fatalf("seed payroll failed: %v", err)
		}
	}

	overview, err := f.service.Overview(ctx, today)
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if overview.Payroll.TotalGross != 9500 {
		t.Fatalf("expected total gross 9500, got %v", overview.Payroll.TotalGross)
	}
	if overview.Payroll.TotalNet != 9150 {
		t.Fatalf("expected total net 9150, got %v", overview.Payroll.TotalNet)
	}
	if overview.Payroll.TotalDeductions != 350 {
		t.Fatalf("expected total deductions 350, got %v", overview.Payroll.TotalDeductions)
	}
	if overview.Payroll.AvgNet != 4575 {
		t.Fatalf("expected avg net 4575, got %v", overview.Payroll.AvgNet)
	}
	if overview.PayrollRecordCount != 2 {
		t.Fatalf("expected 2 payroll records, got %d", overview.PayrollRecordCount)
	}
	if len(overview.Departments) != 2 {
		t.Fatalf("expected 2 department slices, got %d", len(overview.Departments))
	}
}
