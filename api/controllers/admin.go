package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/salescampus/salescampus-backend/api/responses"
	"github.com/salescampus/salescampus-backend/api/validators"
	"github.com/salescampus/salescampus-backend/internal/records"
	"github.com/salescampus/salescampus-backend/pkg/enums"
	"github.com/salescampus/salescampus-backend/pkg/logger"
	"github.com/salescampus/salescampus-backend/pkg/models"
)

type adminStore interface {
	AdminStats(ctx context.Context) models.AdminStats
	RecentActivities(ctx context.Context) []models.Activity
	Posts(ctx context.Context) []models.Post
	ApprovePost(ctx context.Context, id string)
	RejectPost(ctx context.Context, id string)
	Users(ctx context.Context) []models.User
	UpdateUser(ctx context.Context, id string, patch records.UserPatch) (*models.User, error)
}

// AdminStatsSummary aggregates platform counters for the dashboard.
func AdminStatsSummary(store adminStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, store.AdminStats(r.Context()))
	}
}

// AdminActivities lists the latest feed-derived activity entries.
func AdminActivities(store adminStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, store.RecentActivities(r.Context()))
	}
}

// AdminPendingPosts lists posts awaiting moderation.
func AdminPendingPosts(store adminStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts := store.Posts(r.Context())
		pending := make([]models.Post, 0, len(posts))
		for _, post := range posts {
			if post.Status == enums.PostStatusPending {
				pending = append(pending, post)
			}
		}
		responses.WriteSuccess(w, pending)
	}
}

// AdminApprovePost marks a pending post approved. Unknown ids are ignored.
func AdminApprovePost(store adminStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.ApprovePost(r.Context(), chi.URLParam(r, "postId"))
		responses.WriteSuccess(w, map[string]string{"status": "approved"})
	}
}

// AdminRejectPost marks a pending post rejected. Unknown ids are ignored.
func AdminRejectPost(store adminStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.RejectPost(r.Context(), chi.URLParam(r, "postId"))
		responses.WriteSuccess(w, map[string]string{"status": "rejected"})
	}
}

// AdminUsers lists every registered user.
func AdminUsers(store adminStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, store.Users(r.Context()))
	}
}

// AdminUpdateUser merges the submitted fields into a user record.
func AdminUpdateUser(store adminStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch records.UserPatch
		if err := validators.DecodeJSONBody(r, &patch); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := store.UpdateUser(r.Context(), chi.URLParam(r, "userId"), patch)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, user)
	}
}
