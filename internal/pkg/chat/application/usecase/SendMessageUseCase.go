package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	qport "github.com/AnujYadav540/SkillSwap/internal/infrastructure/queue/port"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/chat/application/task"
	chat "github.com/AnujYadav540/SkillSwap/internal/pkg/chat/domain"
	repository "github.com/AnujYadav540/SkillSwap/internal/pkg/chat/persistence/repository/port"
	"github.com/AnujYadav540/SkillSwap/pkg/apperr"
)

// SendMessageInput carries the data needed to send a new message.
type SendMessageInput struct {
	SenderID   int64
	ReceiverID int64
	Content    string
}

// SendMessageUseCase persists a message and then enqueues the best-effort
// push notification. Success is reported iff persistence succeeded; fan-out
// is decoupled so a delivery failure is structurally incapable of undoing
// the write.
type SendMessageUseCase struct {
	Repo  repository.MessageRepository
	Queue qport.Client // optional; nil disables live delivery
}

func NewSendMessageUseCase(repo repository.MessageRepository, queue qport.Client) *SendMessageUseCase {
	return &SendMessageUseCase{Repo: repo, Queue: queue}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, in SendMessageInput) (*chat.Message, error) {
	msg, err := chat.NewMessage(in.SenderID, in.ReceiverID, in.Content)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrSelfMessage):
			return nil, apperr.InvalidRequest("cannot send a message to yourself")
		case errors.Is(err, chat.ErrEmptyMessage):
			return nil, apperr.InvalidRequest("message content is required")
		default:
			return nil, apperr.InvalidRequest(err.Error())
		}
	}

	// Durability point: the store assigns the id and timestamp.
	id, ts, err := uc.Repo.Insert(ctx, *msg)
	if err != nil {
		if errors.Is(err, repository.ErrUnknownReceiver{}) {
			return nil, apperr.NotFound("receiver not found")
		}
		return nil, apperr.StoreUnavailable(err)
	}
	msg.ID = id
	msg.Timestamp = ts

	uc.enqueueNotify(ctx, msg)
	return msg, nil
}

// enqueueNotify hands the persisted message to the fan-out worker. Failures
// are logged and swallowed; the send already succeeded.
func (uc *SendMessageUseCase) enqueueNotify(ctx context.Context, msg *chat.Message) {
	if uc.Queue == nil {
		return
	}
	payload, err := json.Marshal(task.NotifyMessagePayload{
		ID:         msg.ID,
		SenderID:   msg.SenderID,
		ReceiverID: msg.ReceiverID,
		Content:    msg.Content,
		Timestamp:  msg.Timestamp,
	})
	if err != nil {
		log.Printf("chat: encode notify payload for message %d: %v", msg.ID, err)
		return
	}
	_, err = uc.Queue.Enqueue(ctx,
		qport.Task{Type: task.NotifyMessageTaskType, Payload: payload},
		qport.EnqueueOption{Queue: "chat", MaxRetry: 3})
	if err != nil {
		log.Printf("chat: enqueue notify for message %d: %v", msg.ID, err)
	}
}
