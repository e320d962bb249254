package records

import (
	"context"

	"github.com/salescampus/salescampus-backend/pkg/enums"
	"github.com/salescampus/salescampus-backend/pkg/models"
)

const (
	recentActivityLimit  = 5
	activityPointsPerNew = 10
)

// AdminStats aggregates over the live collections. The quiz counters are
// intentionally fixed at zero until quiz results are persisted; do not
// derive them from the quizzes record.
func (s *Store) AdminStats(ctx context.Context) models.AdminStats {
	stats := models.AdminStats{}

	users := s.Users(ctx)
	stats.TotalUsers = len(users)
	for _, u := range users {
		if u.Role == enums.RoleTrainer && u.Status == enums.AccountStatusActive {
			stats.ActiveTrainers++
		}
	}

	stats.TotalGroups = len(s.Groups(ctx))

	for _, p := range s.Posts(ctx) {
		if p.Status == enums.PostStatusPending {
			stats.PendingPosts++
		}
	}

	now := s.now()
	var events []models.Event
	readList(ctx, s, KeyEvents, &events)
	for _, e := range events {
		if e.Date.After(now) {
			stats.UpcomingEvents++
		}
	}

	stats.QuizzesCompleted = 0
	stats.AvgQuizScore = 0
	return stats
}

// RecentActivities derives one activity per stored post, most recently
// stored first, capped at five. Posts are kept in storage order, not
// re-sorted by timestamp.
func (s *Store) RecentActivities(ctx context.Context) []models.Activity {
	posts := s.Posts(ctx)
	if len(posts) > recentActivityLimit {
		posts = posts[:recentActivityLimit]
	}

	activities := make([]models.Activity, 0, len(posts))
	for _, p := range posts {
		activities = append(activities, models.Activity{
			ID:          "activity_" + p.ID,
			Type:        enums.ActivityNewPost,
			UserName:    p.UserName,
			Description: "hat einen neuen Beitrag veröffentlicht",
			Points:      activityPointsPerNew,
			Timestamp:   p.Timestamp,
		})
	}
	return activities
}
