package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// FieldError is one entry of the errors list returned on validation failure.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type messageBody struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, data)
}

// Fail writes a bare message body. Internal detail never reaches the caller;
// handlers log the underlying error with the request id instead.
func Fail(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, messageBody{Message: message})
}

func FailValidation(w http.ResponseWriter, issues []FieldError) {
	WriteJSON(w, http.StatusBadRequest, messageBody{Message: "Invalid data", Errors: issues})
}
