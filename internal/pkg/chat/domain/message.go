package chat

import (
	"errors"
	"strings"
	"time"
)

// Domain-level errors for messaging behaviors
var (
	ErrSelfMessage  = errors.New("chat: sender and receiver are the same user")
	ErrEmptyMessage = errors.New("chat: message content is empty")
)

// Message is an immutable log entry in the conversation between two users.
// Timestamp is assigned by the store on insert and defines the total order
// within a pair. Usernames are enrichment on reads, never persisted.
type Message struct {
	ID               int64     `db:"id"`
	SenderID         int64     `db:"sender_id"`
	ReceiverID       int64     `db:"receiver_id"`
	Content          string    `db:"message"`
	Timestamp        time.Time `db:"timestamp"`
	SenderUsername   string    `db:"-"`
	ReceiverUsername string    `db:"-"`
}

// NewMessage validates and normalizes a message ready to persist.
func NewMessage(senderID, receiverID int64, content string) (*Message, error) {
	if senderID == receiverID {
		return nil, ErrSelfMessage
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}
	return &Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}, nil
}
