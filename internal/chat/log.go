// Package chat persists per-group conversation histories. Each group's
// messages live under one device key and every write rewrites the whole
// list; there is no edit, delete, pagination, or cross-group query.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/salescampus/salescampus-backend/pkg/enums"
	"github.com/salescampus/salescampus-backend/pkg/logger"
	"github.com/salescampus/salescampus-backend/pkg/models"
	"github.com/salescampus/salescampus-backend/pkg/storage"
)

const keyPrefix = "group_chat_"

// Log is the per-group conversation store. Its key namespace is
// independent of the record store's.
type Log struct {
	device storage.Device
	logg   *logger.Logger
	now    func() time.Time
}

// LogParams bundles the dependencies required to build a conversation log.
type LogParams struct {
	Device storage.Device
	Logger *logger.Logger

	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// NewLog constructs a conversation log with the provided dependencies.
func NewLog(params LogParams) (*Log, error) {
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
	return &Log{
		device: params.Device,
		logg:   params.Logger,
		now:    now,
	}, nil
}

// Key returns the device key holding a group's conversation.
func Key(groupID string) string {
	return keyPrefix + groupID
}

// History returns the group's messages, seeding the conversation on first
// access. Once any entry exists the seed path never runs again.
func (l *Log) History(ctx context.Context, groupID string) []models.Message {
	key := Key(groupID)

	raw, found, err := l.device.Get(ctx, key)
	if err != nil {
		l.logg.Warn(l.logg.WithGroupID(ctx, groupID), "conversation read failed: "+err.Error())
		return []models.Message{}
	}
	if found {
		var messages []models.Message
		if err := json.Unmarshal([]byte(raw), &messages); err != nil {
			l.logg.Warn(l.logg.WithGroupID(ctx, groupID), "conversation is not valid JSON: "+err.Error())
			return []models.Message{}
		}
		return messages
	}

	seeded := l.seedMessages(groupID)
	l.write(ctx, groupID, seeded)
	return seeded
}

// Append adds one message to the group's conversation and rewrites the
// stored list.
func (l *Log) Append(ctx context.Context, groupID string, msg models.Message) {
	messages := l.History(ctx, groupID)
	messages = append(messages, msg)
	l.write(ctx, groupID, messages)
}

// Compose builds a full message for the acting sender, with an id derived
// from the current clock and the conversation bound to the group.
func (l *Log) Compose(groupID string, sender models.User, content string) models.Message {
	return models.Message{
		ID:             strconv.FormatInt(l.now().UnixMilli(), 10),
		ConversationID: groupID,
		SenderID:       sender.ID,
		SenderName:     sender.Name,
		Content:        content,
		Type:           enums.MessageTypeText,
		Timestamp:      l.now().UTC(),
	}
}

// seedMessages synthesizes the fixed three-message opener for a fresh
// conversation: 24h, 12h, and 2h ago, in that order.
func (l *Log) seedMessages(groupID string) []models.Message {
	now := l.now().UTC()
	return []models.Message{
		{
			ID:             "seed_1",
			ConversationID: groupID,
			SenderID:       "2",
			SenderName:     "Sandra Schmidt",
			Content:        "Willkommen im Gruppenchat! Hier besprechen wir alles rund um das Training.",
			Type:           enums.MessageTypeText,
			Timestamp:      now.Add(-24 * time.Hour),
		},
		{
			ID:             "seed_2",
			ConversationID: groupID,
			SenderID:       "3",
			SenderName:     "Max Müller",
			Content:        "Danke! Wann werden die Unterlagen zur nächsten Einheit hochgeladen?",
			Type:           enums.MessageTypeText,
			Timestamp:      now.Add(-12 * time.Hour),
		},
		{
			ID:             "seed_3",
			ConversationID: groupID,
			SenderID:       "2",
			SenderName:     "Sandra Schmidt",
			Content:        "Die Unterlagen sind ab heute Abend in den Materialien verfügbar.",
			Type:           enums.MessageTypeText,
			Timestamp:      now.Add(-2 * time.Hour),
		},
	}
}

func (l *Log) write(ctx context.Context, groupID string, messages []models.Message) {
	raw, err := json.Marshal(messages)
	if err != nil {
		l.logg.Error(l.logg.WithGroupID(ctx, groupID), "conversation marshal failed", err)
		return
	}
	if err := l.device.Set(ctx, Key(groupID), string(raw)); err != nil {
		l.logg.Error(l.logg.WithGroupID(ctx, groupID), "conversation write failed", err)
	}
}
