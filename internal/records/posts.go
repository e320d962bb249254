package records

import (
	"context"

	pkgerrors "github.com/salescampus/salescampus-backend/pkg/errors"
	"github.com/salescampus/salescampus-backend/pkg/enums"
	"github.com/salescampus/salescampus-backend/pkg/models"
)

// Posts returns the full posts record in storage order (newest first,
// because creation prepends).
func (s *Store) Posts(ctx context.Context) []models.Post {
	posts := []models.Post{}
	readList(ctx, s, KeyPosts, &posts)
	return posts
}

// Post looks a post up by id; absence is a soft miss.
func (s *Store) Post(ctx context.Context, id string) (*models.Post, error) {
	for _, post := range s.Posts(ctx) {
		if post.ID == id {
			p := post
			return &p, nil
		}
	}
	return nil, nil
}

// CreatePostInput carries the author-provided post content.
type CreatePostInput struct {
	Content string
	Image   string
	Video   string
}

// CreatePost prepends a post authored by the current user. Admin authors
// publish immediately; everyone else lands in moderation.
func (s *Store) CreatePost(ctx context.Context, input CreatePostInput) (*models.Post, error) {
	current, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "no current user")
	}

	status := enums.PostStatusPending
	if current.Role == enums.RoleAdmin {
		status = enums.PostStatusApproved
	}

	post := models.Post{
		ID:           s.newID(),
		UserID:       current.ID,
		UserName:     current.Name,
		UserAvatar:   current.Avatar,
		Content:      input.Content,
		Image:        input.Image,
		Video:        input.Video,
		Timestamp:    s.now().UTC(),
		Status:       status,
		CommentsData: []models.Comment{},
	}

	posts := s.Posts(ctx)
	posts = append([]models.Post{post}, posts...)
	s.writeRecord(ctx, KeyPosts, posts)

	return &post, nil
}

// UpdatePost shallow-merges the patch over the stored post. An absent
// target is a soft miss: (nil, nil).
func (s *Store) UpdatePost(ctx context.Context, id string, patch PostPatch) (*models.Post, error) {
	var posts []models.Post
	readList(ctx, s, KeyPosts, &posts)

	for i := range posts {
		if posts[i].ID != id {
			continue
		}
		patch.apply(&posts[i])
		s.writeRecord(ctx, KeyPosts, posts)

		post := posts[i]
		return &post, nil
	}
	return nil, nil
}

// ApprovePost publishes a pending post; unknown ids are ignored.
func (s *Store) ApprovePost(ctx context.Context, id string) {
	s.setPostStatus(ctx, id, enums.PostStatusApproved)
}

// RejectPost rejects a pending post; unknown ids are ignored.
func (s *Store) RejectPost(ctx context.Context, id string) {
	s.setPostStatus(ctx, id, enums.PostStatusRejected)
}

func (s *Store) setPostStatus(ctx context.Context, id string, status enums.PostStatus) {
	var posts []models.Post
	readList(ctx, s, KeyPosts, &posts)

	for i := range posts {
		if posts[i].ID == id {
			posts[i].Status = status
			s.writeRecord(ctx, KeyPosts, posts)
			return
		}
	}
}
