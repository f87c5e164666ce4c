package attendancehandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/attendance"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
	"hrdesk/internal/transport/http/shared"
)

type Handler struct {
	Service *attendance.Service
}

func NewHandler(service *attendance.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Put("/{id}", h.handleUpdate)
	})
}

type createPayload struct {
	EmployeeID  string         `json:"employeeId"`
	Date        string         `json:"date"`
	ClockIn     *string        `json:"clockIn"`
	ClockOut    *string        `json:"clockOut"`
	Status      string         `json:"status"`
	HoursWorked *shared.Number `json:"hoursWorked"`
	QuickMark   bool           `json:"quickMark"`
}

type patchPayload struct {
	EmployeeID  *string        `json:"employeeId"`
	Date        *string        `json:"date"`
	ClockIn     *string        `json:"clockIn"`
	ClockOut    *string        `json:"clockOut"`
	Status      *string        `json:"status"`
	HoursWorked *shared.Number `json:"hoursWorked"`
}

// handleList serves the full log, or a single employee's log, or a single
// day's log depending on the query.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	var (
		records []attendance.Record
		err     error
	)
	switch {
	case r.URL.Query().Get("employeeId") != "":
		records, err = h.Service.ListByEmployee(r.Context(), r.URL.Query().Get("employeeId"))
	case r.URL.Query().Get("date") != "":
		records, err = h.Service.ListByDate(r.Context(), r.URL.Query().Get("date"))
	default:
		records, err = h.Service.List(r.Context())
	}
	if err != nil {
		slog.Error("list attendance failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "Failed to fetch attendance records")
		return
	}
	api.Success(w, records)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload createPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid attendance data")
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "is required")
	v.Required("status", payload.Status, "is required")
	v.Enum("status", payload.Status, attendance.Statuses, "must be one of present, absent, late")
	if payload.Date == "" {
		v.Add("date", "is required")
	} else {
		v.Date("date", payload.Date)
	}
	if payload.ClockIn != nil {
		v.Clock("clockIn", *payload.ClockIn)
	}
	if payload.ClockOut != nil {
		v.Clock("clockOut", *payload.ClockOut)
	}
	if v.Reject(w) {
		return
	}

	var (
		created *attendance.Record
		err     error
	)
	if payload.QuickMark {
		created, err = h.Service.QuickMark(r.Context(), payload.EmployeeID, payload.Date, payload.Status)
	} else {
		created, err = h.Service.Create(r.Context(), attendance.NewRecord{
			EmployeeID:  payload.EmployeeID,
			Date:        payload.Date,
			ClockIn:     payload.ClockIn,
			ClockOut:    payload.ClockOut,
			Status:      payload.Status,
			HoursWorked: payload.HoursWorked.Ptr(),
		})
	}
	if err != nil {
		slog.Error("create attendance failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "Failed to create attendance record")
		return
	}
	api.Created(w, created)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		api.Fail(w, http.StatusNotFound, "Attendance record not found")
		return
	}

	var payload patchPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid attendance data")
		return
	}

	v := shared.NewValidator()
	if payload.Status != nil {
		v.Enum("status", *payload.Status, attendance.Statuses, "must be one of present, absent, late")
	}
	if payload.Date != nil {
		v.Date("date", *payload.Date)
	}
	if payload.ClockIn != nil {
		v.Clock("clockIn", *payload.ClockIn)
	}
	if payload.ClockOut != nil {
		v.Clock("clockOut", *payload.ClockOut)
	}
	if v.Reject(w) {
		return
	}

	updated, err := h.Service.Update(r.Context(), id, attendance.Patch{
		EmployeeID:  payload.EmployeeID,
		Date:        payload.Date,
		ClockIn:     payload.ClockIn,
		ClockOut:    payload.ClockOut,
		Status:      payload.Status,
		HoursWorked: payload.HoursWorked.Ptr(),
	})
	if errors.Is(err, attendance.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "Attendance record not found")
		return
	}
	if err != nil {
		slog.Error("update attendance failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "Failed to update attendance record")
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
