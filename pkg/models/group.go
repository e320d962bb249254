package models

import (
	"time"

	"github.com/salescampus/salescampus-backend/pkg/enums"
)

// Group is a training cohort. Materials are embedded because the device
// stores the whole group list as one record.
type Group struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	TrainerID   string            `json:"trainerId"`
	TrainerName string            `json:"trainerName"`
	MemberIDs   []string          `json:"memberIds"`
	MemberCount int               `json:"memberCount"`
	Status      enums.GroupStatus `json:"status"`
	Materials   []Material        `json:"materials"`
	StartDate   *time.Time        `json:"startDate,omitempty"`
	EndDate     *time.Time        `json:"endDate,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// Material is a piece of training content attached to a group.
type Material struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Type       enums.MaterialType `json:"type"`
	URL        string             `json:"url,omitempty"`
	Size       string             `json:"size,omitempty"`
	UploadDate time.Time          `json:"uploadDate"`
}
