package repository

import (
	"context"
	"time"

	chat "github.com/AnujYadav540/SkillSwap/internal/pkg/chat/domain"
)

// ErrUnknownReceiver is returned by Insert when the receiver id references no
// user.
type ErrUnknownReceiver struct{}

func (ErrUnknownReceiver) Error() string { return "chat: receiver does not exist" }

// MessageRepository defines persistence operations for the message log.
type MessageRepository interface {
	// Insert appends the message and returns its id and the server-assigned
	// timestamp. This is the durability point of a send.
	Insert(ctx context.Context, m chat.Message) (int64, time.Time, error)
	// ListBetween returns every message between the unordered pair, oldest
	// first, with both usernames resolved.
	ListBetween(ctx context.Context, userA, userB int64) ([]chat.Message, error)
}
