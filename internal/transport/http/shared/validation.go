package shared

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"hrdesk/internal/transport/http/api"
)

// Validator collects field-level issues so a request either passes whole or
// fails whole with every problem reported at once.
type Validator struct {
	issues []api.FieldError
}

func NewValidator() *Validator {
	return &Validator{issues: make([]api.FieldError, 0, 4)}
}

func (v *Validator) Add(field, reason string) {
	if v == nil {
		return
	}
	field = strings.TrimSpace(field)
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return
	}
	v.issues = append(v.issues, api.FieldError{
		Field:  field,
		Reason: reason,
	})
}

func (v *Validator) Required(field, value, reason string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, reason)
	}
}

func (v *Validator) Enum(field, value string, allowed []string, reason string) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return
	}
	for _, candidate := range allowed {
		if normalized == strings.ToLower(strings.TrimSpace(candidate)) {
			return
		}
	}
	v.Add(field, reason)
}

func (v *Validator) Date(field, raw string) (time.Time, bool) {
	parsed, err := ParseDate(strings.TrimSpace(raw))
	if err != nil || parsed.IsZero() {
		v.Add(field, "must be a valid date in YYYY-MM-DD format")
		return time.Time{}, false
	}
	return parsed, true
}

// Clock validates an optional time-of-day string. Empty values pass.
func (v *Validator) Clock(field, raw string) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return
	}
	if _, err := ParseClock(value); err != nil {
		v.Add(field, "must be a valid time in HH:MM format")
	}
}

func (v *Validator) HasIssues() bool {
	return v != nil && len(v.issues) > 0
}

func (v *Validator) Issues() []api.FieldError {
	if v == nil || len(v.issues) == 0 {
		return nil
	}
	out := make([]api.FieldError, len(v.issues))
	copy(out, v.issues)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Field == out[j].Field {
			return out[i].Reason < out[j].Reason
		}
		return out[i].Field < out[j].Field
	})
	return out
}

// Reject writes the validation failure response when issues were collected.
// Returns true when the request was rejected.
func (v *Validator) Reject(w http.ResponseWriter) bool {
	if !v.HasIssues() {
		return false
	}
	api.FailValidation(w, v.Issues())
	return true
}
