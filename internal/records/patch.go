package records

import (
	"github.com/salescampus/salescampus-backend/pkg/enums"
	"github.com/salescampus/salescampus-backend/pkg/models"
)

// Typed patches: only set fields are merged over the stored record, later
// writes win. Fields never cleared by a patch stay absent here on purpose
// (id, email, createdAt).

type UserPatch struct {
	Name     *string              `json:"name,omitempty"`
	Company  *string              `json:"company,omitempty"`
	Position *string              `json:"position,omitempty"`
	Bio      *string              `json:"bio,omitempty"`
	Phone    *string              `json:"phone,omitempty"`
	Location *string              `json:"location,omitempty"`
	Avatar   *string              `json:"avatar,omitempty"`
	Points   *int                 `json:"points,omitempty"`
	Level    *int                 `json:"level,omitempty"`
	Role     *enums.Role          `json:"role,omitempty"`
	Status   *enums.AccountStatus `json:"status,omitempty"`
}

func (p UserPatch) apply(u *models.User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Company != nil {
		u.Company = *p.Company
	}
	if p.Position != nil {
		u.Position = *p.Position
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Points != nil {
		u.Points = *p.Points
	}
	if p.Level != nil {
		u.Level = *p.Level
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
}

type GroupPatch struct {
	Name        *string            `json:"name,omitempty"`
	Description *string            `json:"description,omitempty"`
	TrainerID   *string            `json:"trainerId,omitempty"`
	TrainerName *string            `json:"trainerName,omitempty"`
	MemberIDs   *[]string          `json:"memberIds,omitempty"`
	MemberCount *int               `json:"memberCount,omitempty"`
	Status      *enums.GroupStatus `json:"status,omitempty"`
	Materials   *[]models.Material `json:"materials,omitempty"`
}

func (p GroupPatch) apply(g *models.Group) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.TrainerID != nil {
		g.TrainerID = *p.TrainerID
	}
	if p.TrainerName != nil {
		g.TrainerName = *p.TrainerName
	}
	if p.MemberIDs != nil {
		g.MemberIDs = *p.MemberIDs
	}
	if p.MemberCount != nil {
		g.MemberCount = *p.MemberCount
	}
	if p.Status != nil {
		g.Status = *p.Status
	}
	if p.Materials != nil {
		g.Materials = *p.Materials
	}
}

type PostPatch struct {
	Content      *string           `json:"content,omitempty"`
	Image        *string           `json:"image,omitempty"`
	Video        *string           `json:"video,omitempty"`
	Likes        *int              `json:"likes,omitempty"`
	Comments     *int              `json:"comments,omitempty"`
	IsLiked      *bool             `json:"isLiked,omitempty"`
	Status       *enums.PostStatus `json:"status,omitempty"`
	CommentsData *[]models.Comment `json:"commentsData,omitempty"`
}

func (p PostPatch) apply(post *models.Post) {
	if p.Content != nil {
		post.Content = *p.Content
	}
	if p.Image != nil {
		post.Image = *p.Image
	}
	if p.Video != nil {
		post.Video = *p.Video
	}
	if p.Likes != nil {
		post.Likes = *p.Likes
	}
	if p.Comments != nil {
		post.Comments = *p.Comments
	}
	if p.IsLiked != nil {
		post.IsLiked = *p.IsLiked
	}
	if p.Status != nil {
		post.Status = *p.Status
	}
	if p.CommentsData != nil {
		post.CommentsData = *p.CommentsData
	}
}
