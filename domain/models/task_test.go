package models

import (
	"testing"
	"time"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(value string) *time.Time {
	d := date(value)
	return &d
}

func TestDeriveStatus(t *testing.T) {
	today := date("2025-06-15")

	tests := []struct {
		name      string
		deadline  *time.Time
		completed bool
		expected  Status
	}{
		{"no deadline, not completed", nil, false, StatusActive},
		{"no deadline, completed", nil, true, StatusCompleted},
		{"future deadline, not completed", datePtr("2025-06-20"), false, StatusActive},
		{"future deadline, completed", datePtr("2025-06-20"), true, StatusCompleted},
		{"past deadline, not completed", datePtr("2025-06-14"), false, StatusOverdue},
		{"past deadline, completed", datePtr("2025-06-14"), true, StatusLate},
		// the deadline day itself is not overdue
		{"deadline today, not completed", datePtr("2025-06-15"), false, StatusActive},
		{"deadline today, completed", datePtr("2025-06-15"), true, StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(tt.deadline, tt.completed, today)
			if got != tt.expected {
				t.Errorf("DeriveStatus(%v, %v) = %q, want %q", tt.deadline, tt.completed, got, tt.expected)
			}
		})
	}
}

func TestPriorityRank(t *testing.T) {
	tests := []struct {
		priority Priority
		rank     int
	}{
		{PriorityLow, 1},
		{PriorityMedium, 2},
		{PriorityHigh, 3},
		{PriorityCritical, 4},
		{Priority("Urgent"), 5},
		{Priority(""), 5},
	}

	for _, tt := range tests {
		if got := tt.priority.Rank(); got != tt.rank {
			t.Errorf("Priority(%q).Rank() = %d, want %d", tt.priority, got, tt.rank)
		}
	}
}

func TestPriorityValid(t *testing.T) {
	for _, p := range Priorities {
		if !p.Valid() {
			t.Errorf("Priority(%q).Valid() = false, want true", p)
		}
	}

	for _, invalid := range []Priority{"", "low", "URGENT", "Critical "} {
		if invalid.Valid() {
			t.Errorf("Priority(%q).Valid() = true, want false", invalid)
		}
	}
}
