package records

import (
	"context"

	pkgerrors "github.com/salescampus/salescampus-backend/pkg/errors"
	"github.com/salescampus/salescampus-backend/pkg/models"
)

// Users returns the full users record, empty when absent or unreadable.
func (s *Store) Users(ctx context.Context) []models.User {
	users := []models.User{}
	readList(ctx, s, KeyUsers, &users)
	return users
}

// UpdateUser shallow-merges the patch over the stored user. An absent
// target is a hard fault on the user path.
func (s *Store) UpdateUser(ctx context.Context, id string, patch UserPatch) (*models.User, error) {
	var users []models.User
	readList(ctx, s, KeyUsers, &users)

	for i := range users {
		if users[i].ID != id {
			continue
		}
		patch.apply(&users[i])
		s.writeRecord(ctx, KeyUsers, users)

		if current, _ := s.CurrentUser(ctx); current != nil && current.ID == id {
			s.writeRecord(ctx, KeyCurrentUser, users[i])
		}

		user := users[i]
		return &user, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
}
