// Package records implements the platform's record store: every collection
// is one JSON document on the storage device, read and rewritten whole.
package records

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/salescampus/salescampus-backend/pkg/logger"
	"github.com/salescampus/salescampus-backend/pkg/storage"
)

// Record keys on the storage device. One key holds one whole collection.
const (
	KeyUsers         = "users"
	KeyCurrentUser   = "current_user"
	KeyGroups        = "groups"
	KeyPosts         = "posts"
	KeyConversations = "conversations"
	KeyMessages      = "messages"
	KeyQuizzes       = "quizzes"
	KeyEvents        = "events"
	KeyChallenges    = "challenges"
	KeyForumPosts    = "forum_posts"
	KeyTermsVersions = "terms_versions"
)

// Store reads and writes whole record collections on a Device. Reads of a
// faulty device degrade to empty collections; writes are logged and the
// in-memory result is still returned so the caller flow continues.
type Store struct {
	device storage.Device
	logg   *logger.Logger
	now    func() time.Time
}

// StoreParams bundles the dependencies required to build a record store.
type StoreParams struct {
	Device storage.Device
	Logger *logger.Logger

	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// NewStore constructs a record store with the provided dependencies.
func NewStore(params StoreParams) (*Store, error) {
	if params.Device == nil {
		return nil, fmt.Errorf("storage device is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Store{
		device: params.Device,
		logg:   params.Logger,
		now:    now,
	}, nil
}

// newID derives a string record ID from the current clock.
func (s *Store) newID() string {
	return strconv.FormatInt(s.now().UnixMilli(), 10)
}

// readList loads a JSON array record into dst. A missing key or a device
// fault leaves dst untouched and reports found=false.
func readList[T any](ctx context.Context, s *Store, key string, dst *[]T) bool {
	raw, found, err := s.device.Get(ctx, key)
	if err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "record", key), "record read failed: "+err.Error())
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "record", key), "record is not valid JSON: "+err.Error())
		return false
	}
	return true
}

// writeRecord marshals v and stores it under key. Failures are logged, not
// propagated: the record store keeps the caller's flow alive the way a
// full client-side store would.
func (s *Store) writeRecord(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.logg.Error(s.logg.WithField(ctx, "record", key), "record marshal failed", err)
		return
	}
	if err := s.device.Set(ctx, key, string(raw)); err != nil {
		s.logg.Error(s.logg.WithField(ctx, "record", key), "record write failed", err)
	}
}

// hasRecord reports whether a key exists on the device.
func (s *Store) hasRecord(ctx context.Context, key string) bool {
	_, found, err := s.device.Get(ctx, key)
	if err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "record", key), "record probe failed: "+err.Error())
		return false
	}
	return found
}
