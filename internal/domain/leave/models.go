package leave

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

var Statuses = []string{StatusPending, StatusApproved, StatusRejected}

var Types = []string{"vacation", "sick", "personal", "maternity", "paternity", "emergency"}

type Request struct {
	ID         int        `json:"id"`
	EmployeeID string     `json:"employeeId"`
	LeaveType  string     `json:"leaveType"`
	StartDate  string     `json:"startDate"`
	EndDate    string     `json:"endDate"`
	Reason     string     `json:"reason,omitempty"`
	Status     string     `json:"status"`
	AppliedAt  time.Time  `json:"appliedAt"`
	ReviewedAt *time.Time `json:"reviewedAt"`
	ReviewedBy *string    `json:"reviewedBy"`
}

// NewRequest is the insertable form. The status is always forced to pending;
// review fields start null.
type NewRequest struct {
	EmployeeID string
	LeaveType  string
	StartDate  string
	EndDate    string
	Reason     string
}

// Patch carries a partial update. ReviewedAt and ReviewedBy are stamped by
// the service during a review transition, never taken from the caller.
type Patch struct {
	EmployeeID *string
	LeaveType  *string
	StartDate  *string
	EndDate    *string
	Reason     *string
	Status     *string
	ReviewedAt *time.Time
	ReviewedBy *string
}

func (p Patch) apply(req Request) Request {
	if p.EmployeeID != nil {
		req.EmployeeID = *p.EmployeeID
	}
	if p.LeaveType != nil {
		req.LeaveType = *p.LeaveType
	}
	if p.StartDate != nil {
		req.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		req.EndDate = *p.EndDate
	}
	if p.Reason != nil {
		req.Reason = *p.Reason
	}
	if p.Status != nil {
		req.Status = *p.Status
	}
	if p.ReviewedAt != nil {
		req.ReviewedAt = p.ReviewedAt
	}
	if p.ReviewedBy != nil {
		req.ReviewedBy = p.ReviewedBy
	}
	return req
}
