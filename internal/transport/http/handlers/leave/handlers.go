package leavehandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/leave"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
	"hrdesk/internal/transport/http/shared"
)

type Handler struct {
	Service *leave.Service
}

func NewHandler(service *leave.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave-requests", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Put("/{id}", h.handleUpdate)
	})
}

type createPayload struct {
	EmployeeID string `json:"employeeId"`
	LeaveType  string `json:"leaveType"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Reason     string `json:"reason"`
}

type patchPayload struct {
	EmployeeID *string `json:"employeeId"`
	LeaveType  *string `json:"leaveType"`
	StartDate  *string `json:"startDate"`
	EndDate    *string `json:"endDate"`
	Reason     *string `json:"reason"`
	Status     *string `json:"status"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	var (
		requests []leave.Request
		err      error
	)
	if employeeID := r.URL.Query().Get("employeeId"); employeeID != "" {
		requests, err = h.Service.ListByEmployee(r.Context(), employeeID)
	} else {
		requests, err = h.Service.List(r.Context())
	}
	if err != nil {
		slog.Error("list leave requests failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "Failed to fetch leave requests")
		return
	}
	api.Success(w, requests)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload createPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid leave request data")
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "is required")
	v.Required("leaveType", payload.LeaveType, "is required")
	v.Enum("leaveType", payload.LeaveType, leave.Types, "must be one of vacation, sick, personal, maternity, paternity, emergency")
	if payload.StartDate == "" {
		v.Add("startDate", "is required")
	} else {
		v.Date("startDate", payload.StartDate)
	}
	if payload.EndDate == "" {
		v.Add("endDate", "is required")
	} else {
		v.Date("endDate", payload.EndDate)
	}
	if v.Reject(w) {
		return
	}

	created, err := h.Service.Create(r.Context(), leave.NewRequest{
		EmployeeID: payload.EmployeeID,
		LeaveType:  payload.LeaveType,
		StartDate:  payload.StartDate,
		EndDate:    payload.EndDate,
		Reason:     payload.Reason,
	})
	if err != nil {
		slog.Error("create leave request failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "Failed to create leave request")
		return
	}
	api.Created(w, created)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		api.Fail(w, http.StatusNotFound, "Leave request not found")
		return
	}

	var payload patchPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid leave request data")
		return
	}

	v := shared.NewValidator()
	if payload.LeaveType != nil {
		v.Enum("leaveType", *payload.LeaveType, leave.Types, "must be one of vacation, sick, personal, maternity, paternity, emergency")
	}
	if payload.Status != nil {
		v.Enum("status", *payload.Status, leave.Statuses, "must be one of pending, approved, rejected")
	}
	if payload.StartDate != nil {
		v.Date("startDate", *payload.StartDate)
	}
	if payload.EndDate != nil {
		v.Date("endDate", *payload.EndDate)
	}
	if v.Reject(w) {
		return
	}

	updated, err := h.Service.Update(r.Context(), id, leave.Patch{
		EmployeeID: payload.EmployeeID,
		LeaveType:  payload.LeaveType,
		StartDate:  payload.StartDate,
		EndDate:    payload.EndDate,
		Reason:     payload.Reason,
		Status:     payload.Status,
	})
	if errors.Is(err, leave.ErrAlreadyReviewed) {
		api.Fail(w, http.StatusBadRequest, "Leave request already reviewed")
		return
	}
	if errors.Is(err, leave.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "Leave request not found")
		return
	}
	if err != nil {
		slog.Error("update leave request failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "Failed to update leave request")
		return
	}
	api.Success(w, updated)
}

func parseID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
