package models

import (
	"time"

	"github.com/salescampus/salescampus-backend/pkg/enums"
)

// User is the canonical identity record. The zero LastLogin means the user
// has never signed in.
type User struct {
	ID       string              `json:"id"`
	Email    string              `json:"email"`
	Name     string              `json:"name"`
	Role     enums.Role          `json:"role"`
	Company  string              `json:"company,omitempty"`
	Position string              `json:"position,omitempty"`
	Bio      string              `json:"bio,omitempty"`
	Phone    string              `json:"phone,omitempty"`
	Location string              `json:"location,omitempty"`
	Avatar   string              `json:"avatar,omitempty"`
	Points   int                 `json:"points"`
	Level    int                 `json:"level"`
	Status   enums.AccountStatus `json:"status"`

	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
