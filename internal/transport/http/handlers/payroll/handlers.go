package payrollhandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/payroll"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
	"hrdesk/internal/transport/http/shared"
)

type Handler struct {
	Service *payroll.Service
}

func NewHandler(service *payroll.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Put("/{id}", h.handleUpdate)
	})
}

// createPayload tolerates numeric strings for the money fields; absent fields
// default to zero.
type createPayload struct {
	EmployeeID  string        `json:"employeeId"`
	PayPeriod   string        `json:"payPeriod"`
	BasicSalary shared.Number `json:"basicSalary"`
	Overtime    shared.Number `json:"overtime"`
	Bonuses     shared.Number `json:"bonuses"`
	Deductions  shared.Number `json:"deductions"`
}

type patchPayload struct {
	EmployeeID  *string        `json:"employeeId"`
	PayPeriod   *string        `json:"payPeriod"`
	BasicSalary *shared.Number `json:"basicSalary"`
	Overtime    *shared.Number `json:"overtime"`
	Bonuses     *shared.Number `json:"bonuses"`
	Deductions  *shared.Number `json:"deductions"`
	GrossPay    *shared.Number `json:"grossPay"`
	NetPay      *shared.Number `json:"netPay"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	var (
		records []payroll.Record
		err     error
	)
	if employeeID := r.URL.Query().Get("employeeId"); employeeID != "" {
		records, err = h.Service.ListByEmployee(r.Context(), employeeID)
	} else {
		records, err = h.Service.List(r.Context())
	}
	if err != nil {
		slog.Error("list payroll failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "Failed to fetch payroll records")
		return
	}
	api.Success(w, records)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload createPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid payroll data")
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "is required")
	v.Required("payPeriod", payload.PayPeriod, "is required")
	if v.Reject(w) {
		return
	}

	created, err := h.Service.Create(r.Context(), payroll.NewRecord{
		EmployeeID:  payload.EmployeeID,
		PayPeriod:   payload.PayPeriod,
		BasicSalary: payload.BasicSalary.Float64(),
		Overtime:    payload.Overtime.Float64(),
		Bonuses:     payload.Bonuses.Float64(),
		Deductions:  payload.Deductions.Float64(),
	})
	if err != nil {
		slog.Error("create payroll failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "Failed to create payroll record")
		return
	}
	api.Created(w, created)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		api.Fail(w, http.StatusNotFound, "Payroll record not found")
		return
	}

	var payload patchPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid payroll data")
		return
	}

	updated, err := h.Service.Update(r.Context(), id, payroll.Patch{
		EmployeeID:  payload.EmployeeID,
		PayPeriod:   payload.PayPeriod,
		BasicSalary: payload.BasicSalary.Ptr(),
		Overtime:    payload.Overtime.Ptr(),
		Bonuses:     payload.Bonuses.Ptr(),
		Deductions:  payload.Deductions.Ptr(),
		GrossPay:    payload.GrossPay.Ptr(),
		NetPay:      payload.NetPay.Ptr(),
	})
	if errors.Is(err, payroll.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "Payroll record not found")
		return
	}
	if err != nil {
		slog.Error("update payroll failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "Failed to update payroll record")
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
