package models

import (
	"time"

	"github.com/salescampus/salescampus-backend/pkg/enums"
)

// Post is a feed entry. CommentsData carries the full comment objects while
// Comments mirrors its length for quick rendering.
type Post struct {
	ID           string           `json:"id"`
	UserID       string           `json:"userId"`
	UserName     string           `json:"userName"`
	UserAvatar   string           `json:"userAvatar,omitempty"`
	Content      string           `json:"content"`
	Image        string           `json:"image,omitempty"`
	Video        string           `json:"video,omitempty"`
	Timestamp    time.Time        `json:"timestamp"`
	Likes        int              `json:"likes"`
	Comments     int              `json:"comments"`
	IsLiked      bool             `json:"isLiked"`
	Status       enums.PostStatus `json:"status"`
	CommentsData []Comment        `json:"commentsData"`
}

type Comment struct {
	ID        string    `json:"id"`
	UserName  string    `json:"userName"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
