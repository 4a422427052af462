package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	qport "github.com/AnujYadav540/SkillSwap/internal/infrastructure/queue/port"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/chat/application/task"
	chat "github.com/AnujYadav540/SkillSwap/internal/pkg/chat/domain"
	repository "github.com/AnujYadav540/SkillSwap/internal/pkg/chat/persistence/repository/port"
	"github.com/AnujYadav540/SkillSwap/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessageRepo struct {
	insertErr error
	nextID    int64
	now       time.Time
	inserted  []chat.Message
	listed    []chat.Message
	listErr   error
}

func (f *fakeMessageRepo) Insert(_ context.Context, m chat.Message) (int64, time.Time, error) {
	if f.insertErr != nil {
		return 0, time.Time{}, f.insertErr
	}
	f.inserted = append(f.inserted, m)
	return f.nextID, f.now, nil
}

func (f *fakeMessageRepo) ListBetween(_ context.Context, _, _ int64) ([]chat.Message, error) {
	return f.listed, f.listErr
}

type fakeQueue struct {
	tasks      []qport.Task
	opts       []qport.EnqueueOption
	enqueueErr error
}

func (f *fakeQueue) Enqueue(_ context.Context, t qport.Task, opts ...qport.EnqueueOption) (string, error) {
	if f.enqueueErr != nil {
		return "", f.enqueueErr
	}
	f.tasks = append(f.tasks, t)
	f.opts = append(f.opts, opts...)
	return "task-id", nil
}

func (f *fakeQueue) Close() error { return nil }

func TestSendMessage(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	t.Run("persists then enqueues notification", func(t *testing.T) {
		repo := &fakeMessageRepo{nextID: 42, now: now}
		queue := &fakeQueue{}
		uc := NewSendMessageUseCase(repo, queue)

		msg, err := uc.Execute(ctx, SendMessageInput{SenderID: 1, ReceiverID: 2, Content: "hello"})
		require.NoError(t, err)
		assert.Equal(t, int64(42), msg.ID)
		assert.Equal(t, now, msg.Timestamp)

		require.Len(t, queue.tasks, 1)
		assert.Equal(t, task.NotifyMessageTaskType, queue.tasks[0].Type)
		require.Len(t, queue.opts, 1)
		assert.Equal(t, "chat", queue.opts[0].Queue)
		assert.Equal(t, 3, queue.opts[0].MaxRetry)

		var p task.NotifyMessagePayload
		require.NoError(t, json.Unmarshal(queue.tasks[0].Payload, &p))
		assert.Equal(t, int64(42), p.ID)
		assert.Equal(t, int64(1), p.SenderID)
		assert.Equal(t, int64(2), p.ReceiverID)
		assert.Equal(t, "hello", p.Content)
		assert.Equal(t, now, p.Timestamp)
	})

	t.Run("enqueue failure does not undo the send", func(t *testing.T) {
		repo := &fakeMessageRepo{nextID: 42, now: now}
		queue := &fakeQueue{enqueueErr: errors.New("redis down")}
		uc := NewSendMessageUseCase(repo, queue)

		msg, err := uc.Execute(ctx, SendMessageInput{SenderID: 1, ReceiverID: 2, Content: "hello"})
		require.NoError(t, err)
		assert.Equal(t, int64(42), msg.ID)
		assert.Len(t, repo.inserted, 1)
	})

	t.Run("nil queue disables delivery", func(t *testing.T) {
		repo := &fakeMessageRepo{nextID: 7, now: now}
		uc := NewSendMessageUseCase(repo, nil)

		msg, err := uc.Execute(ctx, SendMessageInput{SenderID: 1, ReceiverID: 2, Content: "hello"})
		require.NoError(t, err)
		assert.Equal(t, int64(7), msg.ID)
	})

	t.Run("persist failure never enqueues", func(t *testing.T) {
		queue := &fakeQueue{}
		uc := NewSendMessageUseCase(&fakeMessageRepo{insertErr: errors.New("down")}, queue)

		_, err := uc.Execute(ctx, SendMessageInput{SenderID: 1, ReceiverID: 2, Content: "hello"})
		assert.Equal(t, apperr.CodeStoreUnavailable, apperr.CodeOf(err))
		assert.Empty(t, queue.tasks)
	})

	t.Run("unknown receiver", func(t *testing.T) {
		queue := &fakeQueue{}
		uc := NewSendMessageUseCase(&fakeMessageRepo{insertErr: repository.ErrUnknownReceiver{}}, queue)

		_, err := uc.Execute(ctx, SendMessageInput{SenderID: 1, ReceiverID: 99, Content: "hello"})
		assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
		assert.Empty(t, queue.tasks)
	})

	t.Run("self message", func(t *testing.T) {
		uc := NewSendMessageUseCase(&fakeMessageRepo{}, nil)
		_, err := uc.Execute(ctx, SendMessageInput{SenderID: 1, ReceiverID: 1, Content: "hello"})
		assert.Equal(t, apperr.CodeInvalidRequest, apperr.CodeOf(err))
	})

	t.Run("blank content", func(t *testing.T) {
		uc := NewSendMessageUseCase(&fakeMessageRepo{}, nil)
		_, err := uc.Execute(ctx, SendMessageInput{SenderID: 1, ReceiverID: 2, Content: "   "})
		assert.Equal(t, apperr.CodeInvalidRequest, apperr.CodeOf(err))
	})
}

func TestGetConversation(t *testing.T) {
	ctx := context.Background()

	t.Run("returns history", func(t *testing.T) {
		listed := []chat.Message{
			{ID: 1, SenderID: 1, ReceiverID: 2, Content: "hi", SenderUsername: "asha", ReceiverUsername: "ben"},
			{ID: 2, SenderID: 2, ReceiverID: 1, Content: "hey", SenderUsername: "ben", ReceiverUsername: "asha"},
		}
		uc := NewGetConversationUseCase(&fakeMessageRepo{listed: listed})

		got, err := uc.Execute(ctx, GetConversationInput{UserID: 1, OtherUserID: 2})
		require.NoError(t, err)
		assert.Equal(t, listed, got)
	})

	t.Run("missing other user id", func(t *testing.T) {
		uc := NewGetConversationUseCase(&fakeMessageRepo{})
		_, err := uc.Execute(ctx, GetConversationInput{UserID: 1})
		assert.Equal(t, apperr.CodeInvalidRequest, apperr.CodeOf(err))
	})

	t.Run("store failure", func(t *testing.T) {
		uc := NewGetConversationUseCase(&fakeMessageRepo{listErr: errors.New("down")})
		_, err := uc.Execute(ctx, GetConversationInput{UserID: 1, OtherUserID: 2})
		assert.Equal(t, apperr.CodeStoreUnavailable, apperr.CodeOf(err))
	})
}
