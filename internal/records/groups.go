package records

import (
	"context"

	"github.com/salescampus/salescampus-backend/pkg/models"
)

// Groups returns the full groups record, empty when absent or unreadable.
func (s *Store) Groups(ctx context.Context) []models.Group {
	groups := []models.Group{}
	readList(ctx, s, KeyGroups, &groups)
	return groups
}

// UpdateGroup shallow-merges the patch over the stored group. An absent
// target is a soft miss: (nil, nil).
func (s *Store) UpdateGroup(ctx context.Context, id string, patch GroupPatch) (*models.Group, error) {
	var groups []models.Group
	readList(ctx, s, KeyGroups, &groups)

	for i := range groups {
		if groups[i].ID != id {
			continue
		}
		patch.apply(&groups[i])
		s.writeRecord(ctx, KeyGroups, groups)

		group := groups[i]
		return &group, nil
	}
	return nil, nil
}

// Materials flattens every group's embedded materials list, preserving
// group iteration order and per-group order.
func (s *Store) Materials(ctx context.Context) []models.Material {
	materials := []models.Material{}
	for _, group := range s.Groups(ctx) {
		materials = append(materials, group.Materials...)
	}
	return materials
}
