package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is the relational row backing one record key.
type KVEntry struct {
	K         string    `gorm:"column:k;primaryKey"`
	V         string    `gorm:"column:v;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

// Gorm is a Device persisted through a GORM connection. It serves both the
// sqlite and postgres drivers; the dialect is decided when the connection
// is opened.
type Gorm struct {
	conn *gorm.DB
}

func NewGorm(conn *gorm.DB) *Gorm {
	return &Gorm{conn: conn}
}

func (g *Gorm) Get(ctx context.Context, key string) (string, bool, error) {
	var entry KVEntry
	err := g.conn.WithContext(ctx).Take(&entry, "k = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrapErr(OpGet, key, err)
	}
	return entry.V, true, nil
}

func (g *Gorm) Set(ctx context.Context, key, value string) error {
	now := time.Now().UTC()
	entry := KVEntry{K: key, V: value, CreatedAt: now, UpdatedAt: now}
	err := g.conn.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "k"}},
		DoUpdates: clause.Assignments(map[string]any{"v": value, "updated_at": now}),
	}).Create(&entry).Error
	return wrapErr(OpSet, key, err)
}

func (g *Gorm) Delete(ctx context.Context, key string) error {
	err := g.conn.WithContext(ctx).Delete(&KVEntry{}, "k = ?", key).Error
	return wrapErr(OpDelete, key, err)
}
