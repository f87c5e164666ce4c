package employee

import "time"

const (
	StatusActive   = "active"
	StatusOnLeave  = "on-leave"
	StatusInactive = "inactive"
)

var Statuses = []string{StatusActive, StatusOnLeave, StatusInactive}

type Employee struct {
	ID             int       `json:"id"`
	EmployeeID     string    `json:"employeeId"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Address        string    `json:"address,omitempty"`
	Department     string    `json:"department"`
	Position       string    `json:"position"`
	StartDate      string    `json:"startDate"`
	Salary         *float64  `json:"salary,omitempty"`
	EmploymentType string    `json:"employmentType"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewEmployee is the insertable form. The business employee id is always
// assigned by the service, never taken from the caller.
type NewEmployee struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Address        string
	Department     string
	Position       string
	StartDate      string
	Salary         *float64
	EmploymentType string
	Status         string
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	FirstName      *string
	LastName       *string
	Email          *string
	Phone          *string
	Address        *string
	Department     *string
	Position       *string
	StartDate      *string
	Salary         *float64
	EmploymentType *string
	Status         *string
}

func (p Patch) apply(emp Employee) Employee {
	if p.FirstName != nil {
		emp.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		emp.LastName = *p.LastName
	}
	if p.Email != nil {
		emp.Email = *p.Email
	}
	if p.Phone != nil {
		emp.Phone = *p.Phone
	}
	if p.Address != nil {
		emp.Address = *p.Address
	}
	if p.Department != nil {
		emp.Department = *p.Department
	}
	if p.Position != nil {
		emp.Position = *p.Position
	}
	if p.StartDate != nil {
		emp.StartDate = *p.StartDate
	}
	if p.Salary != nil {
		emp.Salary = p.Salary
	}
	if p.EmploymentType != nil {
		emp.EmploymentType = *p.EmploymentType
	}
	if p.Status != nil {
		emp.Status = *p.Status
	}
	return emp
}
