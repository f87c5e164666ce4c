package reports

import "testing"

func TestRate(t *testing.T) {
	if got := Rate(1, 4); got != 0.25 {
		t.Fatalf("expected 0.25, got %v", got)
	}
	if got := Rate(5, 0); got != 0 {
		t.Fatalf("expected 0 for zero whole, got %v", got)
	}
}

func TestGroupCount(t *testing.T) {
	counts := GroupCount([]string{"a", "b", "a", "a"}, func(s string) string { return s })
	if counts["a"] != 3 || counts["b"] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestSum(t *testing.T) {
	total := Sum([]float64{1.5, 2.5, 3}, func(f float64) float64 { return f })
	if total != 7 {
		t.Fatalf("expected 7, got %v", total)
	}
}

func TestDistribute(t *testing.T) {
	counts := map[string]int{"engineering": 2, "sales": 1, "hr": 1}
	dist := Distribute(counts, 4)

	if len(dist) != 3 {
		t.Fatalf("expected 3 slices, got %d", len(dist))
	}
	if dist[0].Key != "engineering" || dist[0].Count != 2 || dist[0].Percent != 50 {
		t.Fatalf("unexpected leading slice: %+v", dist[0])
	}
	if dist[1].Key != "hr" || dist[2].Key != "sales" {
		t.Fatalf("expected ties broken by key, got %s then %s", dist[1].Key, dist[2].Key)
	}

	var percent float64
	for _, d := range dist {
		percent += d.Percent
	}
	if percent != 100 {
		t.Fatalf("expected percentages to total 100, got %v", percent)
	}
}

func TestDistributeEmpty(t *testing.T) {
	dist := Distribute(map[string]int{}, 0)
	if len(dist) != 0 {
		t.Fatalf("expected empty distribution, got %v", dist)
	}
}
