package absence

import (
	"errors"
	"testing"
	"time"
)

func TestNoteResolveOnce(t *testing.T) {
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	reason := "medical certificate attached"

	n := &Note{Status: StatusPending}
	if err := n.Resolve(true, "admin-1", &reason, now); err != nil {
		t.Fatalf("first resolution: %v", err)
	}
	if n.Status != StatusApproved {
		t.Errorf("status = %s, want approved", n.Status)
	}
	if n.ResolvedBy == nil || *n.ResolvedBy != "admin-1" {
		t.Errorf("resolved by = %v, want admin-1", n.ResolvedBy)
	}
	if n.ResolvedAt == nil || !n.ResolvedAt.Equal(now) {
		t.Errorf("resolved at = %v", n.ResolvedAt)
	}

	if err := n.Resolve(false, "admin-2", nil, now); !errors.Is(err, ErrAlreadyResolved) {
		t.Errorf("second resolution = %v, want ErrAlreadyResolved", err)
	}
}

func TestNoteReject(t *testing.T) {
	n := &Note{Status: StatusPending}
	if err := n.Resolve(false, "admin-1", nil, time.Now()); err != nil {
		t.Fatal(err)
	}
	if n.Status != StatusRejected {
		t.Errorf("status = %s, want rejected", n.Status)
	}

	if err := n.Resolve(true, "admin-1", nil, time.Now()); !errors.Is(err, ErrAlreadyResolved) {
		t.Errorf("resolving a rejected note = %v, want ErrAlreadyResolved", err)
	}
}
