package records

import (
	"context"

	"github.com/salescampus/salescampus-backend/pkg/models"
)

// Shape-only collections: seeded empty, read as-is. No mutation surface
// exists for them yet.

func (s *Store) Conversations(ctx context.Context) []models.Conversation {
	conversations := []models.Conversation{}
	readList(ctx, s, KeyConversations, &conversations)
	return conversations
}

func (s *Store) Quizzes(ctx context.Context) []models.Quiz {
	quizzes := []models.Quiz{}
	readList(ctx, s, KeyQuizzes, &quizzes)
	return quizzes
}

func (s *Store) Events(ctx context.Context) []models.Event {
	events := []models.Event{}
	readList(ctx, s, KeyEvents, &events)
	return events
}

func (s *Store) Challenges(ctx context.Context) []models.Challenge {
	challenges := []models.Challenge{}
	readList(ctx, s, KeyChallenges, &challenges)
	return challenges
}

func (s *Store) ForumPosts(ctx context.Context) []models.ForumPost {
	forumPosts := []models.ForumPost{}
	readList(ctx, s, KeyForumPosts, &forumPosts)
	return forumPosts
}

func (s *Store) TermsVersions(ctx context.Context) []models.TermsVersion {
	termsVersions := []models.TermsVersion{}
	readList(ctx, s, KeyTermsVersions, &termsVersions)
	return termsVersions
}
