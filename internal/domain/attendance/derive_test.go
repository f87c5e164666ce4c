package attendance

import "testing"

func TestDeriveHours(t *testing.T) {
	tests := []struct {
		name     string
		clockIn  string
		clockOut string
		want     float64
	}{
		{name: "full day", clockIn: "09:00", clockOut: "17:30", want: 8.5},
		{name: "with seconds", clockIn: "09:00:00", clockOut: "17:00:30", want: 8.01},
		{name: "short shift", clockIn: "13:15", clockOut: "15:45", want: 2.5},
		{name: "out before in clamps to zero", clockIn: "09:00", clockOut: "08:00", want: 0},
		{name: "equal times", clockIn: "09:00", clockOut: "09:00", want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DeriveHours("2025-06-02", tc.clockIn, tc.clockOut)
			if err != nil {
				t.Fatalf("DeriveHours failed: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %.2f hours, got %.2f", tc.want, got)
			}
		})
	}
}

func TestDeriveHoursRejectsMalformedClock(t *testing.T) {
	if _, err := DeriveHours("2025-06-02", "9am", "17:00"); err == nil {
		t.Fatal("expected error for malformed clock-in")
	}
	if _, err := DeriveHours("2025-06-02", "09:00", "5pm"); err == nil {
		t.Fatal("expected error for malformed clock-out")
	}
}
