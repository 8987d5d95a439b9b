package models

import "testing"

func TestStatusTransitionTable(t *testing.T) {
	all := []Status{StatusPending, StatusApproved, StatusRejected, StatusIssued}
	allowed := map[[2]Status]bool{
		{StatusPending, StatusApproved}: true,
		{StatusPending, StatusRejected}: true,
		{StatusApproved, StatusIssued}:  true,
	}

	for _, from := range all {
		for _, to := range all {
			got := from.CanTransition(to)
			want := allowed[[2]Status{from, to}]
			if got != want {
				t.Errorf("CanTransition(%s -> %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestStatusTerminalStates(t *testing.T) {
	all := []Status{StatusPending, StatusApproved, StatusRejected, StatusIssued}
	for _, to := range all {
		if StatusRejected.CanTransition(to) {
			t.Errorf("Rejected must be terminal, allowed -> %s", to)
		}
		if StatusIssued.CanTransition(to) {
			t.Errorf("Issued must be terminal, allowed -> %s", to)
		}
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"Pending", "Approved", "Rejected", "Issued"} {
		if _, err := ParseStatus(s); err != nil {
			t.Errorf("ParseStatus(%q) failed: %v", s, err)
		}
	}
	for _, s := range []string{"", "pending", "Cancelled", "ISSUED"} {
		if _, err := ParseStatus(s); err == nil {
			t.Errorf("ParseStatus(%q) should fail", s)
		}
	}
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"user", "supervisor", "lab"} {
		if _, err := ParseRole(s); err != nil {
			t.Errorf("ParseRole(%q) failed: %v", s, err)
		}
	}
	for _, s := range []string{"", "admin", "User"} {
		if _, err := ParseRole(s); err == nil {
			t.Errorf("ParseRole(%q) should fail", s)
		}
	}
}
