package employeeshandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/employee"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
	"hrdesk/internal/transport/http/shared"
)

type Handler struct {
	Service *employee.Service
}

func NewHandler(service *employee.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{id}", h.handleGet)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})
}

type createPayload struct {
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	Address        string         `json:"address"`
	Department     string         `json:"department"`
	Position       string         `json:"position"`
	StartDate      string         `json:"startDate"`
	Salary         *shared.Number `json:"salary"`
	EmploymentType string         `json:"employmentType"`
	Status         string         `json:"status"`
}

type patchPayload struct {
	FirstName      *string        `json:"firstName"`
	LastName       *string        `json:"lastName"`
	Email          *string        `json:"email"`
	Phone          *string        `json:"phone"`
	Address        *string        `json:"address"`
	Department     *string        `json:"department"`
	Position       *string        `json:"position"`
	StartDate      *string        `json:"startDate"`
	Salary         *shared.Number `json:"salary"`
	EmploymentType *string        `json:"employmentType"`
	Status         *string        `json:"status"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.List(r.Context())
	if err != nil {
		slog.Error("list employees failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "Failed to fetch employees")
		return
	}
	api.Success(w, employees)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		api.Fail(w, http.StatusNotFound, "Employee not found")
		return
	}
	emp, err := h.Service.Get(r.Context(), id)
	if errors.Is(err, employee.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "Employee not found")
		return
	}
	if err != nil {
		slog.Error("get employee failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "Failed to fetch employee")
		return
	}
	api.Success(w, emp)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload createPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid employee data")
		return
	}

	v := shared.NewValidator()
	v.Required("firstName", payload.FirstName, "is required")
	v.Required("lastName", payload.LastName, "is required")
	v.Required("email", payload.Email, "is required")
	v.Required("department", payload.Department, "is required")
	v.Required("position", payload.Position, "is required")
	v.Required("employmentType", payload.EmploymentType, "is required")
	if payload.StartDate == "" {
		v.Add("startDate", "is required")
	} else {
		v.Date("startDate", payload.StartDate)
	}
	v.Enum("status", payload.Status, employee.Statuses, "must be one of active, on-leave, inactive")
	if v.Reject(w) {
		return
	}

	created, err := h.Service.Create(r.Context(), employee.NewEmployee{
		FirstName:      payload.FirstName,
		LastName:       payload.LastName,
		Email:          payload.Email,
		Phone:          payload.Phone,
		Address:        payload.Address,
		Department:     payload.Department,
		Position:       payload.Position,
		StartDate:      payload.StartDate,
		Salary:         payload.Salary.Ptr(),
		EmploymentType: payload.EmploymentType,
		Status:         payload.Status,
	})
	if err != nil {
		slog.Error("create employee failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "Failed to create employee")
		return
	}
	api.Created(w, created)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		api.Fail(w, http.StatusNotFound, "Employee not found")
		return
	}

	var payload patchPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid employee data")
		return
	}

	v := shared.NewValidator()
	if payload.Status != nil {
		v.Enum("status", *payload.Status, employee.Statuses, "must be one of active, on-leave, inactive")
	}
	if payload.StartDate != nil {
		v.Date("startDate", *payload.StartDate)
	}
	if v.Reject(w) {
		return
	}

	updated, err := h.Service.Update(r.Context(), id, employee.Patch{
		FirstName:      payload.FirstName,
		LastName:       payload.LastName,
		Email:          payload.Email,
		Phone:          payload.Phone,
		Address:        payload.Address,
		Department:     payload.Department,
		Position:       payload.Position,
		StartDate:      payload.StartDate,
		Salary:         payload.Salary.Ptr(),
		EmploymentType: payload.EmploymentType,
		Status:         payload.Status,
	})
	if errors.Is(err, employee.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "Employee not found")
		return
	}
	if err != nil {
		slog.Error("update employee failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "Failed to update employee")
		return
	}
	api.Success(w, updated)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		api.Fail(w, http.StatusNotFound, "Employee not found")
		return
	}
	deleted, err := h.Service.Delete(r.Context(), id)
	if err != nil {
		slog.Error("delete employee failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "Failed to delete employee")
		return
	}
	if !deleted {
		api.Fail(w, http.StatusNotFound, "Employee not found")
		return
	}
	api.Success(w, map[string]string{"message": "Employee deleted successfully"})
}

func parseID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
