package attendance

import "time"

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
)

var Statuses = []string{StatusPresent, StatusAbsent, StatusLate}

// QuickMarkHours is credited for a quick present mark; other statuses get 0.
const QuickMarkHours = 8.0

type Record struct {
	ID          int       `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	Date        string    `json:"date"`
	ClockIn     *string   `json:"clockIn"`
	ClockOut    *string   `json:"clockOut"`
	Status      string    `json:"status"`
	HoursWorked *float64  `json:"hoursWorked"`
	CreatedAt   time.Time `json:"createdAt"`
}

type NewRecord struct {
	EmployeeID  string
	Date        string
	ClockIn     *string
	ClockOut    *string
	Status      string
	HoursWorked *float64
}

type Patch struct {
	EmployeeID  *string
	Date        *string
	ClockIn     *string
	ClockOut    *string
	Status      *string
	HoursWorked *float64
}

func (p Patch) apply(rec Record) Record {
	if p.EmployeeID != nil {
		rec.EmployeeID = *p.EmployeeID
	}
	if p.Date != nil {
		rec.Date = *p.Date
	}
	if p.ClockIn != nil {
		rec.ClockIn = p.ClockIn
	}
	if p.ClockOut != nil {
		rec.ClockOut = p.ClockOut
	}
	if p.Status != nil {
		rec.Status = *p.Status
	}
	if p.HoursWorked != nil {
		rec.HoursWorked = p.HoursWorked
	}
	return rec
}
