package payroll

import "time"

type Record struct {
	ID          int       `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	PayPeriod   string    `json:"payPeriod"`
	BasicSalary float64   `json:"basicSalary"`
	Overtime    float64   `json:"overtime"`
	Bonuses     float64   `json:"bonuses"`
	Deductions  float64   `json:"deductions"`
	GrossPay    float64   `json:"grossPay"`
	NetPay      float64   `json:"netPay"`
	ProcessedAt time.Time `json:"processedAt"`
}

// NewRecord is the insertable form. Gross and net pay are always recomputed
// from the four components; caller-supplied totals are ignored.
type NewRecord struct {
	EmployeeID  string
	PayPeriod   string
	BasicSalary float64
	Overtime    float64
	Bonuses     float64
	Deductions  float64
}

// Patch merges caller fields as-is, totals included. A record with
// inconsistent totals can be persisted this way; that mirrors the submission
// surface, which only recomputes on create.
type Patch struct {
	EmployeeID  *string
	PayPeriod   *string
	BasicSalary *float64
	Overtime    *float64
	Bonuses     *float64
	Deductions  *float64
	GrossPay    *float64
	NetPay      *float64
}

func (p Patch) apply(rec Record) Record {
	if p.EmployeeID != nil {
		rec.EmployeeID = *p.EmployeeID
	}
	if p.PayPeriod != nil {
		rec.PayPeriod = *p.PayPeriod
	}
	if p.BasicSalary != nil {
		rec.BasicSalary = *p.BasicSalary
	}
	if p.Overtime != nil {
		rec.Overtime = *p.Overtime
	}
	if p.Bonuses != nil {
		rec.Bonuses = *p.Bonuses
	}
	if p.Deductions != nil {
		rec.Deductions = *p.Deductions
	}
	if p.GrossPay != nil {
		rec.GrossPay = *p.GrossPay
	}
	if p.NetPay != nil {
		rec.NetPay = *p.NetPay
	}
	return rec
}
