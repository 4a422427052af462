package task

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	qport "github.com/AnujYadav540/SkillSwap/internal/infrastructure/queue/port"
	"github.com/AnujYadav540/SkillSwap/internal/infrastructure/realtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubServer struct {
	handlers map[string]qport.Handler
}

func (s *stubServer) Register(taskType string, h qport.Handler) {
	if s.handlers == nil {
		s.handlers = make(map[string]qport.Handler)
	}
	s.handlers[taskType] = h
}

func (s *stubServer) Run(context.Context) error  { return nil }
func (s *stubServer) Stop(context.Context) error { return nil }

type stubLink struct {
	key    string
	owner  string
	mu     sync.Mutex
	frames [][]byte
}

func (s *stubLink) Key() string   { return s.key }
func (s *stubLink) Owner() string { return s.owner }

func (s *stubLink) Push(payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, payload)
	return nil
}

func TestNotifyMessageHandler(t *testing.T) {
	srv := &stubServer{}
	registry := realtime.NewRegistry()
	RegisterNotifyMessageTask(srv, registry)

	handler, ok := srv.handlers[NotifyMessageTaskType]
	require.True(t, ok, "handler must be registered under the task type")

	payload := NotifyMessagePayload{
		ID:         42,
		SenderID:   1,
		ReceiverID: 2,
		Content:    "hello",
		Timestamp:  time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	t.Run("pushes message frame to both parties", func(t *testing.T) {
		sender := &stubLink{key: "s1", owner: "1"}
		receiver := &stubLink{key: "r1", owner: "2"}
		registry.Join("1", sender)
		registry.Join("2", receiver)
		defer registry.Leave(sender)
		defer registry.Leave(receiver)

		require.NoError(t, handler(context.Background(), qport.Task{Type: NotifyMessageTaskType, Payload: raw}))

		require.Len(t, receiver.frames, 1)
		var frame struct {
			Type    string               `json:"type"`
			Message NotifyMessagePayload `json:"message"`
		}
		require.NoError(t, json.Unmarshal(receiver.frames[0], &frame))
		assert.Equal(t, "message", frame.Type)
		assert.Equal(t, payload, frame.Message)

		// the sender's other devices see it too
		assert.Len(t, sender.frames, 1)
	})

	t.Run("no live connections is not an error", func(t *testing.T) {
		assert.NoError(t, handler(context.Background(), qport.Task{Type: NotifyMessageTaskType, Payload: raw}))
	})

	t.Run("malformed payload fails without retryable side effects", func(t *testing.T) {
		err := handler(context.Background(), qport.Task{Type: NotifyMessageTaskType, Payload: []byte("{broken")})
		assert.Error(t, err)

		var syntaxErr *json.SyntaxError
		assert.True(t, errors.As(err, &syntaxErr))
	})
}

func TestEncodeEvent(t *testing.T) {
	raw, err := EncodeEvent(NotifyMessagePayload{ID: 1, SenderID: 2, ReceiverID: 3, Content: "hi"})
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.JSONEq(t, `"message"`, string(decoded["type"]))
	assert.Contains(t, string(decoded["message"]), `"sender_id":2`)
}
