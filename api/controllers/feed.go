package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/salescampus/salescampus-backend/api/middleware"
	"github.com/salescampus/salescampus-backend/api/responses"
	"github.com/salescampus/salescampus-backend/api/validators"
	"github.com/salescampus/salescampus-backend/internal/records"
	"github.com/salescampus/salescampus-backend/pkg/enums"
	pkgerrors "github.com/salescampus/salescampus-backend/pkg/errors"
	"github.com/salescampus/salescampus-backend/pkg/logger"
	"github.com/salescampus/salescampus-backend/pkg/models"
)

type feedStore interface {
	Posts(ctx context.Context) []models.Post
	Post(ctx context.Context, id string) (*models.Post, error)
	CreatePost(ctx context.Context, input records.CreatePostInput) (*models.Post, error)
	UpdatePost(ctx context.Context, id string, patch records.PostPatch) (*models.Post, error)
	CurrentUser(ctx context.Context) (*models.User, error)
}

const (
	maxPostContentLen = 4000
	maxCommentLen     = 1000
)

type createPostRequest struct {
	Content string `json:"content" validate:"required"`
	Image   string `json:"image,omitempty"`
	Video   string `json:"video,omitempty"`
}

type addCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// FeedList returns the feed. Members see approved posts only; admins see
// everything including pending entries.
func FeedList(store feedStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts := store.Posts(r.Context())

		if middleware.RoleFromContext(r.Context()) != string(enums.RoleAdmin) {
			visible := make([]models.Post, 0, len(posts))
			for _, post := range posts {
				if post.Status == enums.PostStatusApproved {
					visible = append(visible, post)
				}
			}
			posts = visible
		}

		responses.WriteSuccess(w, posts)
	}
}

// FeedCreate publishes a new post for the signed-in user.
func FeedCreate(store feedStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body createPostRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		post, err := store.CreatePost(r.Context(), records.CreatePostInput{
			Content: validators.SanitizeString(body.Content, maxPostContentLen),
			Image:   body.Image,
			Video:   body.Video,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, post)
	}
}

// FeedLike flips the like flag on a post and adjusts the counter.
func FeedLike(store feedStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID := chi.URLParam(r, "postId")

		post, err := store.Post(r.Context(), postID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if post == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "post not found"))
			return
		}

		liked := !post.IsLiked
		likes := post.Likes
		if liked {
			likes++
		} else if likes > 0 {
			likes--
		}

		updated, err := store.UpdatePost(r.Context(), postID, records.PostPatch{
			IsLiked: &liked,
			Likes:   &likes,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if updated == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "post not found"))
			return
		}

		responses.WriteSuccess(w, updated)
	}
}

// FeedComment appends a comment authored by the signed-in user.
func FeedComment(store feedStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body addCommentRequest
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

		postID := chi.URLParam(r, "postId")
		post, err := store.Post(r.Context(), postID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if post == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "post not found"))
			return
		}

		comment := models.Comment{
			ID:        strconv.FormatInt(time.Now().UnixMilli(), 10),
			UserName:  user.Name,
			Content:   validators.SanitizeString(body.Content, maxCommentLen),
			Timestamp: time.Now().UTC(),
		}
		commentsData := append(append([]models.Comment{}, post.CommentsData...), comment)
		count := len(commentsData)

		updated, err := store.UpdatePost(r.Context(), postID, records.PostPatch{
			Comments:     &count,
			CommentsData: &commentsData,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if updated == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "post not found"))
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, updated)
	}
}
