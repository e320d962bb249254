package chat

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/salescampus/salescampus-backend/pkg/enums"
	"github.com/salescampus/salescampus-backend/pkg/logger"
	"github.com/salescampus/salescampus-backend/pkg/models"
	"github.com/salescampus/salescampus-backend/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLog(t *testing.T) *Log {
	t.Helper()
	log, err := NewLog(LogParams{
		Device: storage.NewMemory(),
		Logger: logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
	})
	require.NoError(t, err)
	return log
}

func TestHistorySeedsThreeMessagesOnce(t *testing.T) {
	ctx := context.Background()
	log := newTestLog(t)

	messages := log.History(ctx, "g1")
	require.Len(t, messages, 3)

	assert.Equal(t, "Sandra Schmidt", messages[0].SenderName)
	assert.Equal(t, "Max Müller", messages[1].SenderName)
	assert.Equal(t, "Sandra Schmidt", messages[2].SenderName)

	assert.True(t, messages[0].Timestamp.Before(messages[1].Timestamp))
	assert.True(t, messages[1].Timestamp.Before(messages[2].Timestamp))

	for _, m := range messages {
		assert.Equal(t, "g1", m.ConversationID)
		assert.Equal(t, enums.MessageTypeText, m.Type)
	}

	again := log.History(ctx, "g1")
	assert.Equal(t, messages, again, "second load must not reseed")
}

func TestHistorySeedTimestampsAreRelative(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	log, err := NewLog(LogParams{
		Device: storage.NewMemory(),
		Logger: logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
		Now:    func() time.Time { return fixed },
	})
	require.NoError(t, err)

	messages := log.History(ctx, "g1")
	require.Len(t, messages, 3)
	assert.Equal(t, fixed.Add(-24*time.Hour), messages[0].Timestamp)
	assert.Equal(t, fixed.Add(-12*time.Hour), messages[1].Timestamp)
	assert.Equal(t, fixed.Add(-2*time.Hour), messages[2].Timestamp)
}

func TestAppendExtendsHistory(t *testing.T) {
	ctx := context.Background()
	log := newTestLog(t)

	before := log.History(ctx, "g2")
	sender := models.User{ID: "3", Name: "Max Müller"}
	msg := log.Compose("g2", sender, "Bin dabei!")

	log.Append(ctx, "g2", msg)

	after := log.History(ctx, "g2")
	require.Len(t, after, len(before)+1)
	assert.Equal(t, msg, after[len(after)-1])
}

func TestConversationsAreIsolatedPerGroup(t *testing.T) {
	ctx := context.Background()
	log := newTestLog(t)

	sender := models.User{ID: "2", Name: "Sandra Schmidt"}
	log.Append(ctx, "g1", log.Compose("g1", sender, "Nur für g1"))

	g2 := log.History(ctx, "g2")
	for _, m := range g2 {
		assert.NotEqual(t, "Nur für g1", m.Content)
	}
}

func TestComposeBuildsFullMessage(t *testing.T) {
	fixed := time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC)
	log, err := NewLog(LogParams{
		Device: storage.NewMemory(),
		Logger: logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
		Now:    func() time.Time { return fixed },
	})
	require.NoError(t, err)

	sender := models.User{ID: "3", Name: "Max Müller"}
	msg := log.Compose("g1", sender, "Hallo")

	assert.Equal(t, "g1", msg.ConversationID)
	assert.Equal(t, "3", msg.SenderID)
	assert.Equal(t, "Max Müller", msg.SenderName)
	assert.Equal(t, enums.MessageTypeText, msg.Type)
	assert.Equal(t, fixed, msg.Timestamp)
	assert.NotEmpty(t, msg.ID)
}
