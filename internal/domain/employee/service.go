package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	return s.store.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*Employee, error) {
	return s.store.Get(ctx, id)
}

// Create assigns a fresh business employee id regardless of caller input and
// defaults the status to active.
func (s *Service) Create(ctx context.Context, in NewEmployee) (*Employee, error) {
	number, err := s.generateEmployeeID(ctx)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = StatusActive
	}

	return s.store.Create(ctx, Employee{
		EmployeeID:     number,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
		Department:     in.Department,
		Position:       in.Position,
		StartDate:      in.StartDate,
		Salary:         in.Salary,
		EmploymentType: in.EmploymentType,
		Status:         status,
	})
}

func (s *Service) Update(ctx context.Context, id int, patch Patch) (*Employee, error) {
	return s.store.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id int) (bool, error) {
	return s.store.Delete(ctx, id)
}

// generateEmployeeID allocates an EMP-XXXXXXXX token, retrying on the rare
// collision so the business id stays unique across all employees.
func (s *Service) generateEmployeeID(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		candidate := "EMP-" + strings.ToUpper(uuid.NewString()[:8])
		_, err := s.store.GetByEmployeeID(ctx, candidate)
		if errors.Is(err, ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("could not allocate a unique employee id")
}
