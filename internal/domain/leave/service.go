package leave

import (
	"context"
	"time"
)

type Service struct {
	store    Store
	reviewer string
	now      func() time.Time
}

// NewService wires the leave workflow. reviewer names the identity stamped on
// review transitions; there is no authenticated actor to take it from.
func NewService(store Store, reviewer string) *Service {
	return &Service{store: store, reviewer: reviewer, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Request, error) {
	return s.store.List(ctx)
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID string) ([]Request, error) {
	return s.store.ListByEmployee(ctx, employeeID)
}

// Create submits a leave request. The status is forced to pending no matter
// what the caller sent.
func (s *Service) Create(ctx context.Context, in NewRequest) (*Request, error) {
	return s.store.Create(ctx, Request{
		EmployeeID: in.EmployeeID,
		LeaveType:  in.LeaveType,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		Reason:     in.Reason,
		Status:     StatusPending,
	})
}

// Update merges a partial update. A status change away from pending is a
// review transition: it stamps reviewed-at and reviewed-by server-side.
// Approved and rejected are terminal, so once reviewed a request rejects any
// status change, including back to pending.
func (s *Service) Update(ctx context.Context, id int, patch Patch) (*Request, error) {
	patch.ReviewedAt = nil
	patch.ReviewedBy = nil

	if patch.Status != nil {
		current, err := s.store.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if current.Status != StatusPending && *patch.Status != current.Status {
			return nil, ErrAlreadyReviewed
		}
		if current.Status == StatusPending && *patch.Status != StatusPending {
			reviewedAt := s.now().UTC()
			reviewer := s.reviewer
			patch.ReviewedAt = &reviewedAt
			patch.ReviewedBy = &reviewer
		}
	}

	return s.store.Update(ctx, id, patch)
}
