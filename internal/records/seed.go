package records

import (
	"context"
	"time"

	"github.com/salescampus/salescampus-backend/pkg/enums"
	"github.com/salescampus/salescampus-backend/pkg/models"
)

// Initialize writes the first-run seed data. A populated users record
// suppresses reseeding entirely, so repeated calls leave every collection
// untouched.
func (s *Store) Initialize(ctx context.Context) {
	var users []models.User
	if readList(ctx, s, KeyUsers, &users) && len(users) > 0 {
		return
	}

	now := s.now().UTC()

	s.writeRecord(ctx, KeyUsers, seedUsers(now))
	s.writeRecord(ctx, KeyGroups, seedGroups(now))
	s.writeRecord(ctx, KeyPosts, seedPosts(now))

	s.writeRecord(ctx, KeyConversations, []models.Conversation{})
	s.writeRecord(ctx, KeyMessages, []models.Message{})
	s.writeRecord(ctx, KeyQuizzes, []models.Quiz{})
	s.writeRecord(ctx, KeyEvents, []models.Event{})
	s.writeRecord(ctx, KeyChallenges, []models.Challenge{})
	s.writeRecord(ctx, KeyForumPosts, []models.ForumPost{})
	s.writeRecord(ctx, KeyTermsVersions, []models.TermsVersion{})

	s.logg.Info(ctx, "record store seeded")
}

func seedUsers(now time.Time) []models.User {
	created := now.AddDate(0, -3, 0)
	return []models.User{
		{
			ID:        "1",
			Email:     "admin@salescampus.de",
			Name:      "Andreas Weber",
			Role:      enums.RoleAdmin,
			Company:   "SalesCampus GmbH",
			Position:  "Plattform-Administrator",
			Location:  "München",
			Points:    1250,
			Level:     5,
			Status:    enums.AccountStatusActive,
			CreatedAt: created,
		},
		{
			ID:        "2",
			Email:     "trainer@salescampus.de",
			Name:      "Sandra Schmidt",
			Role:      enums.RoleTrainer,
			Company:   "SalesCampus GmbH",
			Position:  "Vertriebstrainerin",
			Bio:       "Seit 12 Jahren im B2B-Vertriebstraining.",
			Location:  "Hamburg",
			Points:    890,
			Level:     4,
			Status:    enums.AccountStatusActive,
			CreatedAt: created,
		},
		{
			ID:        "3",
			Email:     "max.mueller@beispiel.de",
			Name:      "Max Müller",
			Role:      enums.RoleUser,
			Company:   "Beispiel AG",
			Position:  "Account Manager",
			Location:  "Berlin",
			Points:    340,
			Level:     2,
			Status:    enums.AccountStatusActive,
			CreatedAt: created,
		},
		{
			ID:        "4",
			Email:     "julia.becker@beispiel.de",
			Name:      "Julia Becker",
			Role:      enums.RoleUser,
			Company:   "Beispiel AG",
			Position:  "Sales Consultant",
			Location:  "Köln",
			Points:    120,
			Level:     1,
			Status:    enums.AccountStatusSuspended,
			CreatedAt: created,
		},
	}
}

func seedGroups(now time.Time) []models.Group {
	created := now.AddDate(0, -2, 0)
	upload := now.AddDate(0, -1, 0)
	start := now.AddDate(0, -1, -15)
	return []models.Group{
		{
			ID:          "g1",
			Name:        "Vertriebsgrundlagen 2026",
			Description: "Einstiegstraining für neue Vertriebsmitarbeiter.",
			TrainerID:   "2",
			TrainerName: "Sandra Schmidt",
			MemberIDs:   []string{"3", "4"},
			MemberCount: 12,
			Status:      enums.GroupStatusActive,
			Materials: []models.Material{
				{ID: "m1", Name: "Gesprächsleitfaden.pdf", Type: enums.MaterialTypePDF, URL: "/materials/gespraechsleitfaden.pdf", Size: "2,4 MB", UploadDate: upload},
				{ID: "m2", Name: "Einwandbehandlung", Type: enums.MaterialTypeVideo, URL: "/materials/einwandbehandlung.mp4", UploadDate: upload},
			},
			StartDate: &start,
			CreatedAt: created,
		},
		{
			ID:          "g2",
			Name:        "Key-Account-Management",
			Description: "Aufbautraining für erfahrene Account Manager.",
			TrainerID:   "2",
			TrainerName: "Sandra Schmidt",
			MemberIDs:   []string{"3"},
			MemberCount: 8,
			Status:      enums.GroupStatusUpcoming,
			Materials: []models.Material{
				{ID: "m3", Name: "Account-Plan-Vorlage", Type: enums.MaterialTypeLink, URL: "https://intranet.salescampus.de/vorlagen/account-plan", UploadDate: upload},
			},
			CreatedAt: created,
		},
	}
}

func seedPosts(now time.Time) []models.Post {
	return []models.Post{
		{
			ID:        "p1",
			UserID:    "2",
			UserName:  "Sandra Schmidt",
			Content:   "Willkommen im neuen Trainingsjahrgang! Die Materialien zur ersten Woche sind online.",
			Timestamp: now.Add(-48 * time.Hour),
			Likes:     8,
			Comments:  1,
			Status:    enums.PostStatusApproved,
			CommentsData: []models.Comment{
				{ID: "c1", UserName: "Max Müller", Content: "Danke, freue mich auf den Start!", Timestamp: now.Add(-47 * time.Hour)},
			},
		},
		{
			ID:           "p2",
			UserID:       "3",
			UserName:     "Max Müller",
			Content:      "Erster Abschluss nach dem Einwandbehandlungs-Modul — die Techniken funktionieren wirklich.",
			Timestamp:    now.Add(-24 * time.Hour),
			Likes:        5,
			Status:       enums.PostStatusApproved,
			CommentsData: []models.Comment{},
		},
	}
}
