package schedule

import (
	"testing"
	"time"
)

func inst(id string, start, end string) Instance {
	s, _ := time.Parse("2006-01-02 15:04", start)
	e, _ := time.Parse("2006-01-02 15:04", end)
	return Instance{ID: id, Status: StatusActive, StartsAt: s, EndsAt: e}
}

func TestInstanceOverlaps(t *testing.T) {
	a := inst("a", "2025-03-10 09:00", "2025-03-10 17:00")

	cases := []struct {
		name  string
		other Instance
		want  bool
	}{
		{"identical", inst("b", "2025-03-10 09:00", "2025-03-10 17:00"), true},
		{"partial", inst("b", "2025-03-10 16:00", "2025-03-10 20:00"), true},
		{"contained", inst("b", "2025-03-10 12:00", "2025-03-10 13:00"), true},
		{"adjacent after", inst("b", "2025-03-10 17:00", "2025-03-10 20:00"), false},
		{"adjacent before", inst("b", "2025-03-10 06:00", "2025-03-10 09:00"), false},
		{"different day", inst("b", "2025-03-11 09:00", "2025-03-11 17:00"), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := a.Overlaps(c.other); got != c.want {
				t.Errorf("Overlaps = %v, want %v", got, c.want)
			}
		})
	}
}

func TestFindOverlapAgainstExisting(t *testing.T) {
	existing := []Instance{
		inst("e1", "2025-03-10 09:00", "2025-03-10 17:00"),
		inst("e2", "2025-03-11 09:00", "2025-03-11 17:00"),
	}

	clean := []Instance{inst("c1", "2025-03-12 09:00", "2025-03-12 17:00")}
	if _, _, ok := FindOverlap(clean, existing); ok {
		t.Error("clean candidate reported as overlapping")
	}

	conflict := []Instance{inst("c1", "2025-03-10 16:00", "2025-03-10 18:00")}
	if _, _, ok := FindOverlap(conflict, existing); !ok {
		t.Error("expected overlap against existing instance")
	}
}

func TestFindOverlapWithinBatch(t *testing.T) {
	batch := []Instance{
		inst("c1", "2025-03-10 09:00", "2025-03-10 17:00"),
		inst("c2", "2025-03-10 13:00", "2025-03-10 21:00"),
	}
	a, b, ok := FindOverlap(batch, nil)
	if !ok {
		t.Fatal("expected overlap inside the batch")
	}
	if a != "c1" || b != "c2" {
		t.Errorf("conflicting pair = (%s, %s), want (c1, c2)", a, b)
	}
}

func TestFindOverlapIgnoresReplacedAndCancelled(t *testing.T) {
	cancelled := inst("e1", "2025-03-10 09:00", "2025-03-10 17:00")
	cancelled.Status = StatusCancelled

	existing := []Instance{
		cancelled,
		inst("e2", "2025-03-11 09:00", "2025-03-11 17:00"),
	}

	// Candidate shares e2's id: it replaces it, so moving inside e2's old
	// window is not a conflict.
	replacement := []Instance{inst("e2", "2025-03-11 10:00", "2025-03-11 18:00")}
	if _, _, ok := FindOverlap(replacement, existing); ok {
		t.Error("replacement conflicting only with its own previous version must pass")
	}

	// Overlapping the cancelled instance is fine too.
	overCancelled := []Instance{inst("c1", "2025-03-10 10:00", "2025-03-10 12:00")}
	if _, _, ok := FindOverlap(overCancelled, existing); ok {
		t.Error("overlap with a cancelled instance must not be reported")
	}
}

func TestFindOverlapOvernight(t *testing.T) {
	existing := []Instance{inst("e1", "2025-03-10 22:00", "2025-03-11 06:00")}

	early := []Instance{inst("c1", "2025-03-11 05:00", "2025-03-11 09:00")}
	if _, _, ok := FindOverlap(early, existing); !ok {
		t.Error("expected overlap with the tail of an overnight instance")
	}

	after := []Instance{inst("c2", "2025-03-11 06:00", "2025-03-11 09:00")}
	if _, _, ok := FindOverlap(after, existing); ok {
		t.Error("instance starting exactly at the overnight end must not overlap")
	}
}
