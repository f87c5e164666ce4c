package shared

import (
	"encoding/json"
	"testing"
)

func TestNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "number", raw: `5000`, want: 5000},
		{name: "decimal", raw: `5000.5`, want: 5000.5},
		{name: "numeric string", raw: `"5000.50"`, want: 5000.5},
		{name: "padded string", raw: `" 42 "`, want: 42},
		{name: "unparsable string coerces to zero", raw: `"abc"`, want: 0},
		{name: "empty string coerces to zero", raw: `""`, want: 0},
		{name: "null", raw: `null`, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var n Number
			if err := json.Unmarshal([]byte(tc.raw), &n); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if n.Float64() != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, n.Float64())
			}
		})
	}
}

func TestNumberRejectsNonNumericTypes(t *testing.T) {
	var n Number
	if err := json.Unmarshal([]byte(`{"nested":true}`), &n); err == nil {
		t.Fatal("expected error for object value")
	}
}

func TestNumberPtr(t *testing.T) {
	var absent *Number
	if absent.Ptr() != nil {
		t.Fatal("expected nil for absent field")
	}

	present := Number(12.5)
	ptr := present.Ptr()
	if ptr == nil || *ptr != 12.5 {
		t.Fatalf("expected 12.5, got %v", ptr)
	}
}
