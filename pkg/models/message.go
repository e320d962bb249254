package models

import (
	"time"

	"github.com/salescampus/salescampus-backend/pkg/enums"
)

// Message is a single chat entry inside a group conversation.
type Message struct {
	ID             string            `json:"id"`
	ConversationID string            `json:"conversationId"`
	SenderID       string            `json:"senderId"`
	SenderName     string            `json:"senderName"`
	Content        string            `json:"content"`
	Type           enums.MessageType `json:"type"`
	Timestamp      time.Time         `json:"timestamp"`
}

// Conversation is a thread header. Only group conversations are materialized
// today; direct threads keep the same shape.
type Conversation struct {
	ID             string     `json:"id"`
	Name           string     `json:"name,omitempty"`
	ParticipantIDs []string   `json:"participantIds"`
	LastMessage    string     `json:"lastMessage,omitempty"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}
