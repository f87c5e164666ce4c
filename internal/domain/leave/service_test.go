package leave

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestService() *Service {
	svc := NewService(NewMemoryStore(), "HR Manager")
	svc.now = func() time.Time {
		return time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func submit(t *testing.T, svc *Service) *Request {
	t.Helper()
	req, err := svc.Create(context.Background(), NewRequest{
		EmployeeID: "EMP-AAAA1111",
		LeaveType:  "vacation",
		StartDate:  "2025-07-01",
		EndDate:    "2025-07-05",
		Reason:     "summer trip",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	return req
}

func TestCreateForcesPending(t *testing.T) {
	req := submit(t, newTestService())

	if req.Status != StatusPending {
		t.Fatalf("expected pending, got %s", req.Status)
	}
	if req.ReviewedAt != nil || req.ReviewedBy != nil {
		t.Fatal("expected review fields to start null")
	}
	if req.AppliedAt.IsZero() {
		t.Fatal("expected applied-at to be stamped")
	}
}

func TestApproveStampsReview(t *testing.T) {
	svc := newTestService()
	req := submit(t, svc)

	status := StatusApproved
	updated, err := svc.Update(context.Background(), req.ID, Patch{Status: &status})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != StatusApproved {
		t.Fatalf("expected approved, got %s", updated.Status)
	}
	if updated.ReviewedAt == nil || !updated.ReviewedAt.Equal(time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected stamped reviewed-at, got %v", updated.ReviewedAt)
	}
	if updated.ReviewedBy == nil || *updated.ReviewedBy != "HR Manager" {
		t.Fatalf("expected reviewer HR Manager, got %v", updated.ReviewedBy)
	}
}

func TestReviewedRequestIsTerminal(t *testing.T) {
	svc := newTestService()
	req := submit(t, svc)
	ctx := context.Background()

	rejected := StatusRejected
	if _, err := svc.Update(ctx, req.ID, Patch{Status: &rejected}); err != nil {
		t.Fatalf("first review failed: %v", err)
	}

	approved := StatusApproved
	if _, err := svc.Update(ctx, req.ID, Patch{Status: &approved}); !errors.Is(err, ErrAlreadyReviewed) {
		t.Fatalf("expected ErrAlreadyReviewed, got %v", err)
	}
}

func TestReviewedRequestCannotReopen(t *testing.T) {
	svc := newTestService()
	req := submit(t, svc)
	ctx := context.Background()

	approved := StatusApproved
	if _, err := svc.Update(ctx, req.ID, Patch{Status: &approved}); err != nil {
		t.Fatalf("review failed: %v", err)
	}

	pending := StatusPending
	if _, err := svc.Update(ctx, req.ID, Patch{Status: &pending}); !errors.Is(err, ErrAlreadyReviewed) {
		t.Fatalf("expected ErrAlreadyReviewed for reopen, got %v", err)
	}

	current, err := svc.store.Get(ctx, req.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if current.Status != StatusApproved {
		t.Fatalf("expected request to stay approved, got %s", current.Status)
	}
	if current.ReviewedAt == nil || current.ReviewedBy == nil {
		t.Fatal("expected review stamps to survive the rejected reopen")
	}

	rejected := StatusRejected
	if _, err := svc.Update(ctx, req.ID, Patch{Status: &rejected}); !errors.Is(err, ErrAlreadyReviewed) {
		t.Fatalf("expected ErrAlreadyReviewed for second review, got %v", err)
	}
}

func TestReviewedRequestAcceptsSameStatus(t *testing.T) {
	svc := newTestService()
	req := submit(t, svc)
	ctx := context.Background()

	approved := StatusApproved
	reviewed, err := svc.Update(ctx, req.ID, Patch{Status: &approved})
	if err != nil {
		t.Fatalf("review failed: %v", err)
	}

	again, err := svc.Update(ctx, req.ID, Patch{Status: &approved})
	if err != nil {
		t.Fatalf("same-status update failed: %v", err)
	}
	if again.Status != StatusApproved {
		t.Fatalf("expected approved, got %s", again.Status)
	}
	if again.ReviewedAt == nil || !again.ReviewedAt.Equal(*reviewed.ReviewedAt) {
		t.Fatalf("expected original review stamp to survive, got %v", again.ReviewedAt)
	}
}

func TestNonStatusUpdateLeavesReviewFieldsAlone(t *testing.T) {
	svc := newTestService()
	req := submit(t, svc)

	reason := "family visit"
	updated, err := svc.Update(context.Background(), req.ID, Patch{Reason: &reason})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Reason != "family visit" {
		t.Fatalf("expected merged reason, got %q", updated.Reason)
	}
	if updated.ReviewedAt != nil || updated.ReviewedBy != nil {
		t.Fatal("expected review fields to stay null")
	}
}

func TestCallerCannotForgeReviewFields(t *testing.T) {
	svc := newTestService()
	req := submit(t, svc)

	forgedAt := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	forgedBy := "intruder"
	updated, err := svc.Update(context.Background(), req.ID, Patch{ReviewedAt: &forgedAt, ReviewedBy: &forgedBy})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ReviewedAt != nil || updated.ReviewedBy != nil {
		t.Fatal("expected forged review fields to be discarded")
	}
}
