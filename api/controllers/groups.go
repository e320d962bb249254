package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/salescampus/salescampus-backend/api/responses"
	"github.com/salescampus/salescampus-backend/api/validators"
	"github.com/salescampus/salescampus-backend/internal/records"
	pkgerrors "github.com/salescampus/salescampus-backend/pkg/errors"
	"github.com/salescampus/salescampus-backend/pkg/logger"
	"github.com/salescampus/salescampus-backend/pkg/models"
)

type groupStore interface {
	Groups(ctx context.Context) []models.Group
	UpdateGroup(ctx context.Context, id string, patch records.GroupPatch) (*models.Group, error)
	Materials(ctx context.Context) []models.Material
	CurrentUser(ctx context.Context) (*models.User, error)
}

type chatLog interface {
	History(ctx context.Context, groupID string) []models.Message
	Append(ctx context.Context, groupID string, msg models.Message)
	Compose(groupID string, sender models.User, content string) models.Message
}

const maxChatMessageLen = 1000

type chatMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

// GroupsList returns every training group.
func GroupsList(store groupStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, store.Groups(r.Context()))
	}
}

// GroupUpdate merges the submitted fields into an existing group.
func GroupUpdate(store groupStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch records.GroupPatch
		if err := validators.DecodeJSONBody(r, &patch); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		groupID := chi.URLParam(r, "groupId")
		group, err := store.UpdateGroup(r.Context(), groupID, patch)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if group == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "group not found"))
			return
		}

		responses.WriteSuccess(w, group)
	}
}

// MaterialsList flattens the materials embedded in every group.
func MaterialsList(store groupStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, store.Materials(r.Context()))
	}
}

// GroupChatHistory returns the conversation for a group, seeding the welcome
// thread on first read.
func GroupChatHistory(log chatLog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID := chi.URLParam(r, "groupId")
		responses.WriteSuccess(w, log.History(r.Context(), groupID))
	}
}

// GroupChatPost appends a message from the signed-in user to the group chat.
func GroupChatPost(log chatLog, store groupStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body chatMessageRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := store.CurrentUser(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "read current user"))
			return
		}
		if user == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "no current user"))
			return
		}

		groupID := chi.URLParam(r, "groupId")
		msg := log.Compose(groupID, *user, validators.SanitizeString(body.Content, maxChatMessageLen))
		log.Append(r.Context(), groupID, msg)

		responses.WriteSuccessStatus(w, http.StatusCreated, msg)
	}
}
