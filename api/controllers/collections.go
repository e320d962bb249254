package controllers

import (
	"context"
	"net/http"

	"github.com/salescampus/salescampus-backend/api/responses"
	"github.com/salescampus/salescampus-backend/pkg/logger"
	"github.com/salescampus/salescampus-backend/pkg/models"
)

type collectionStore interface {
	Quizzes(ctx context.Context) []models.Quiz
	Events(ctx context.Context) []models.Event
	Challenges(ctx context.Context) []models.Challenge
	ForumPosts(ctx context.Context) []models.ForumPost
	TermsVersions(ctx context.Context) []models.TermsVersion
}

// The collection endpoints serve lists that stay empty until future features
// populate them. They exist so the client contract is stable.

func QuizzesList(store collectionStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, store.Quizzes(r.Context()))
	}
}

func EventsList(store collectionStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, store.Events(r.Context()))
	}
}

func ChallengesList(store collectionStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, store.Challenges(r.Context()))
	}
}

func ForumList(store collectionStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, store.ForumPosts(r.Context()))
	}
}

func TermsList(store collectionStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, store.TermsVersions(r.Context()))
	}
}
