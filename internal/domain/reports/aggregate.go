package reports

import (
	"math"
	"sort"
)

// GroupCount tallies records by the key function's result.
func GroupCount[T any](records []T, key func(T) string) map[string]int {
	counts := make(map[string]int, len(records))
	for _, record := range records {
		counts[key(record)]++
	}
	return counts
}

// Sum totals the field function's result over every record.
func Sum[T any](records []T, field func(T) float64) float64 {
	var total float64
	for _, record := range records {
		total += field(record)
	}
	return total
}

// Rate returns part/whole, or 0 when whole is 0.
func Rate(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole
}

// Distribution is one slice of a categorical breakdown.
type Distribution struct {
	Key     string  `json:"key"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Distribute turns grouped counts into count+percentage slices, sorted by
// descending count then key for a stable presentation order. Percentages are
// rounded to one decimal place and sum to ~100 over a non-empty total.
func Distribute(counts map[string]int, total int) []Distribution {
	out := make([]Distribution, 0, len(counts))
	for key, count := range counts {
		out = append(out, Distribution{
			Key:     key,
			Count:   count,
			Percent: math.Round(Rate(float64(count), float64(total))*1000) / 10,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Key < out[j].Key
		}
		return out[i].Count > out[j].Count
	})
	return out
}
