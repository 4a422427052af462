package task

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	qport "github.com/AnujYadav540/SkillSwap/internal/infrastructure/queue/port"
	"github.com/AnujYadav540/SkillSwap/internal/infrastructure/realtime"
)

// NotifyMessageTaskType is the queue task name for pushing a persisted
// message to live connections. The message is already durable by the time
// this task exists; delivery is a best-effort secondary layer and its failure
// never undoes the write.
const NotifyMessageTaskType = "chat:notify_message"

// NotifyMessagePayload is the JSON payload transported via the queue. Kept
// decoupled from the domain type to avoid coupling queue wire format to db
// tags.
type NotifyMessagePayload struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID int64     `json:"receiver_id"`
	Content    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}

// messageEvent is the frame pushed to websocket clients.
type messageEvent struct {
	Type    string               `json:"type"`
	Message NotifyMessagePayload `json:"message"`
}

// EncodeEvent renders the push frame for a persisted message.
func EncodeEvent(p NotifyMessagePayload) ([]byte, error) {
	return json.Marshal(messageEvent{Type: "message", Message: p})
}

// RegisterNotifyMessageTask binds the fan-out handler to the worker server.
// The event goes to every live connection of both sender and receiver; a
// user with no live connections receives nothing and recovers via history.
func RegisterNotifyMessageTask(srv qport.Server, registry *realtime.Registry) {
	srv.Register(NotifyMessageTaskType, func(ctx context.Context, t qport.Task) error {
		var p NotifyMessagePayload
		if err := json.Unmarshal(t.Payload, &p); err != nil {
			// malformed payload: retrying cannot help
			return err
		}
		event, err := EncodeEvent(p)
		if err != nil {
			return err
		}
		registry.Broadcast(event,
			strconv.FormatInt(p.SenderID, 10),
			strconv.FormatInt(p.ReceiverID, 10))
		return nil
	})
}
