package models

import (
	"time"

	"github.com/salescampus/salescampus-backend/pkg/enums"
)

// AdminStats is the dashboard summary computed over the live collections.
// The quiz counters are placeholders until quiz results are persisted.
type AdminStats struct {
	TotalUsers       int     `json:"totalUsers"`
	ActiveTrainers   int     `json:"activeTrainers"`
	TotalGroups      int     `json:"totalGroups"`
	PendingPosts     int     `json:"pendingPosts"`
	UpcomingEvents   int     `json:"upcomingEvents"`
	QuizzesCompleted int     `json:"quizzesCompleted"`
	AvgQuizScore     float64 `json:"avgQuizScore"`
}

// Activity is a recent-activity feed row derived from posts.
type Activity struct {
	ID          string             `json:"id"`
	Type        enums.ActivityType `json:"type"`
	UserName    string             `json:"userName"`
	Description string             `json:"description"`
	Points      int                `json:"points"`
	Timestamp   time.Time          `json:"timestamp"`
}
