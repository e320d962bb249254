package enums

import "fmt"

// GroupStatus describes where a training group sits in its schedule.
type GroupStatus string

const (
	GroupStatusActive    GroupStatus = "active"
	GroupStatusCompleted GroupStatus = "completed"
	GroupStatusUpcoming  GroupStatus = "upcoming"
)

var validGroupStatuses = []GroupStatus{
	GroupStatusActive,
	GroupStatusCompleted,
	GroupStatusUpcoming,
}

// IsValid reports whether the value matches the canonical group status enum.
func (g GroupStatus) IsValid() bool {
	for _, candidate := range validGroupStatuses {
		if candidate == g {
			return true
		}
	}
	return false
}

// ParseGroupStatus converts the raw string to GroupStatus.
func ParseGroupStatus(value string) (GroupStatus, error) {
	for _, candidate := range validGroupStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid group status %q", value)
}
