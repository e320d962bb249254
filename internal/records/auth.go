package records

import (
	"context"
	"encoding/json"
	"strings"

	pkgerrors "github.com/salescampus/salescampus-backend/pkg/errors"
	"github.com/salescampus/salescampus-backend/pkg/enums"
	"github.com/salescampus/salescampus-backend/pkg/models"
)

// SentinelPassword is the fixed demo gate. It is not an authentication
// mechanism and must not be replaced with real credential checking here.
const SentinelPassword = "demo123"

// Login matches email against the users record behind the demo gate.
// Any mismatch (wrong password, unknown email, suspended account) returns
// (nil, nil); a match updates lastLogin and the current-user marker.
func (s *Store) Login(ctx context.Context, email, password string) (*models.User, error) {
	if password != SentinelPassword {
		return nil, nil
	}

	var users []models.User
	readList(ctx, s, KeyUsers, &users)

	normalized := strings.ToLower(strings.TrimSpace(email))
	for i := range users {
		if strings.ToLower(users[i].Email) != normalized {
			continue
		}
		if users[i].Status == enums.AccountStatusSuspended {
			return nil, nil
		}
		now := s.now().UTC()
		users[i].LastLogin = &now

		s.writeRecord(ctx, KeyUsers, users)
		s.writeRecord(ctx, KeyCurrentUser, users[i])

		user := users[i]
		return &user, nil
	}
	return nil, nil
}

// CurrentUser reads the current-user marker; absence is not an error.
func (s *Store) CurrentUser(ctx context.Context) (*models.User, error) {
	raw, found, err := s.device.Get(ctx, KeyCurrentUser)
	if err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "record", KeyCurrentUser), "record read failed: "+err.Error())
		return nil, nil
	}
	if !found {
		return nil, nil
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "record", KeyCurrentUser), "record is not valid JSON: "+err.Error())
		return nil, nil
	}
	return &user, nil
}

// Logout removes the current-user marker and nothing else.
func (s *Store) Logout(ctx context.Context) {
	if err := s.device.Delete(ctx, KeyCurrentUser); err != nil {
		s.logg.Error(s.logg.WithField(ctx, "record", KeyCurrentUser), "record delete failed", err)
	}
}

// RegisterInput carries the profile fields accepted at registration.
type RegisterInput struct {
	Email    string
	Name     string
	Company  string
	Position string
	Phone    string
	Location string
}

// Register creates a new user, appends it to the users record, and makes it
// the current user. A duplicate email is a hard conflict.
func (s *Store) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	var users []models.User
	readList(ctx, s, KeyUsers, &users)

	normalized := strings.ToLower(strings.TrimSpace(input.Email))
	for i := range users {
		if strings.ToLower(users[i].Email) == normalized {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		}
	}

	now := s.now().UTC()
	user := models.User{
		ID:        s.newID(),
		Email:     input.Email,
		Name:      input.Name,
		Role:      enums.RoleUser,
		Company:   input.Company,
		Position:  input.Position,
		Phone:     input.Phone,
		Location:  input.Location,
		Points:    0,
		Level:     1,
		Status:    enums.AccountStatusActive,
		CreatedAt: now,
	}

	users = append(users, user)
	s.writeRecord(ctx, KeyUsers, users)
	s.writeRecord(ctx, KeyCurrentUser, user)

	return &user, nil
}
