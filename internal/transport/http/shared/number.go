package shared

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Number is a decimal request field that accepts either a JSON number or its
// string representation ("5000", 5000 and "5000.50" all parse). Unparsable
// strings coerce to zero, matching the upstream form behavior.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*n = 0
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = Number(parsed)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("must be a number or numeric string: %w", err)
	}
	*n = Number(f)
	return nil
}

func (n Number) Float64() float64 {
	return float64(n)
}

// Ptr returns the value as *float64, or nil when the field was absent.
func (n *Number) Ptr() *float64 {
	if n == nil {
		return nil
	}
	value := float64(*n)
	return &value
}
