package events

import (
	"testing"
	"time"
)

func day(n int) Timestamp {
	return TimestampFromTime(time.Date(2024, 1, n, 12, 0, 0, 0, time.UTC))
}

func ids(evts []Event) []int64 {
	out := make([]int64, 0, len(evts))
	for _, e := range evts {
		out = append(out, e.ID)
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sample() []Event {
	return []Event{
		{ID: 1, Category: "HEALTH", DateTime: day(1)},
		{ID: 2, Category: "OWNERSHIP", DateTime: day(3)},
		{ID: 3, Category: "HEALTH", DateTime: day(2)},
	}
}

func TestFilterByCategory_AllKeepsOrder(t *testing.T) {
	got := FilterByCategory(sample(), FilterAll)
	if !equalIDs(ids(got), []int64{1, 2, 3}) {
		t.Fatalf("expected all events in source order, got %v", ids(got))
	}

	got = FilterByCategory(sample(), "")
	if len(got) != 3 {
		t.Fatalf("empty filter should behave like ALL, got %v", ids(got))
	}
}

func TestFilterByCategory_OnlyMatches(t *testing.T) {
	got := FilterByCategory(sample(), "HEALTH")
	if !equalIDs(ids(got), []int64{1, 3}) {
		t.Fatalf("expected [1 3], got %v", ids(got))
	}

	got = FilterByCategory(sample(), "BEHAVIOUR")
	if len(got) != 0 {
		t.Fatalf("expected no events, got %v", ids(got))
	}
}

func TestSortByDate(t *testing.T) {
	desc := Derive(sample(), FilterAll, SortDescending)
	if !equalIDs(ids(desc), []int64{2, 3, 1}) {
		t.Fatalf("desc: expected [day3 day2 day1] = [2 3 1], got %v", ids(desc))
	}

	asc := Derive(sample(), FilterAll, SortAscending)
	if !equalIDs(ids(asc), []int64{1, 3, 2}) {
		t.Fatalf("asc: expected [1 3 2], got %v", ids(asc))
	}
}

func TestDerive_DoesNotMutateInput(t *testing.T) {
	in := sample()
	_ = Derive(in, FilterAll, SortDescending)
	if !equalIDs(ids(in), []int64{1, 2, 3}) {
		t.Fatalf("input was reordered: %v", ids(in))
	}
}

func TestCompareByDate_InvalidDatesTie(t *testing.T) {
	cmp := CompareByDate(SortDescending)
	bad := Event{ID: 9}
	if got := cmp(bad, Event{DateTime: day(1)}); got != 0 {
		t.Fatalf("expected tie with invalid date, got %d", got)
	}
	if got := cmp(Event{DateTime: day(1)}, bad); got != 0 {
		t.Fatalf("expected tie with invalid date, got %d", got)
	}

	// No debe romper; el orden exacto alrededor de fechas inválidas no está definido.
	evts := append(sample(), bad)
	SortByDate(evts, SortAscending)
	if len(evts) != 4 {
		t.Fatalf("expected 4 events after sort, got %d", len(evts))
	}
}

func TestParseSortMode(t *testing.T) {
	cases := map[string]SortMode{
		"":           SortDescending,
		"desc":       SortDescending,
		"Descending": SortDescending,
		"asc":        SortAscending,
		"ASCENDING":  SortAscending,
	}
	for in, want := range cases {
		got, ok := ParseSortMode(in)
		if !ok || got != want {
			t.Fatalf("ParseSortMode(%q) = %q,%v want %q", in, got, ok, want)
		}
	}
	if _, ok := ParseSortMode("newest"); ok {
		t.Fatalf("expected unknown sort mode to fail")
	}
}
