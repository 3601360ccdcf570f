package domain

import (
	"testing"
)

func TestStatus_Valid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusSubmitted, StatusApproved, StatusRejected} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if Status("draft").Valid() {
		t.Error("unknown status should not be valid")
	}
	if Status("").Valid() {
		t.Error("empty status should not be valid")
	}
}

func TestStatus_Terminal(t *testing.T) {
	if !StatusApproved.Terminal() {
		t.Error("approved should be terminal")
	}
	for _, s := range []Status{StatusPending, StatusSubmitted, StatusRejected} {
		if s.Terminal() {
			t.Errorf("%q should not be terminal", s)
		}
	}
}

func TestCanTransition(t *testing.T) {
	allowed := map[[2]Status]bool{
		{StatusPending, StatusSubmitted}:  true,
		{StatusSubmitted, StatusApproved}: true,
		{StatusSubmitted, StatusRejected}: true,
		{StatusRejected, StatusPending}:   true,
	}

	statuses := []Status{StatusPending, StatusSubmitted, StatusApproved, StatusRejected}
	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]Status{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%q, %q) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestTimeEntry_StatusHelpers(t *testing.T) {
	pending := TimeEntry{Status: StatusPending, UserID: "user-1"}
	approved := TimeEntry{Status: StatusApproved, UserID: "user-1"}

	if !pending.IsEditable() || !pending.IsDeletable() {
		t.Error("pending entries should be editable and deletable")
	}
	if approved.IsEditable() || approved.IsDeletable() {
		t.Error("approved entries should be immutable")
	}
	if !pending.IsOwnedBy("user-1") {
		t.Error("expected ownership match")
	}
	if pending.IsOwnedBy("user-2") {
		t.Error("expected ownership mismatch")
	}
}
