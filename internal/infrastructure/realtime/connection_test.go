package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestConnection dials a throwaway websocket server and wraps the client
// side in a Connection.
func newTestConnection(t *testing.T, userID string) *Connection {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	ws, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	return NewConnection(userID, ws)
}

func TestConnectionPushAfterClose(t *testing.T) {
	conn := newTestConnection(t, "1")
	conn.Start()
	conn.Close(websocket.CloseNormalClosure, "bye")

	// More pushes than the send buffer holds: every one must surface an
	// error, none may panic.
	for i := 0; i < 300; i++ {
		assert.Error(t, conn.Push([]byte("late")))
	}
}

func TestConnectionCloseIsIdempotent(t *testing.T) {
	conn := newTestConnection(t, "1")
	conn.Start()
	conn.Close(websocket.CloseNormalClosure, "bye")
	conn.Close(websocket.CloseNormalClosure, "bye again")
	assert.Error(t, conn.Push([]byte("late")))
}

func TestConnectionPushWhileClosing(t *testing.T) {
	conn := newTestConnection(t, "1")
	conn.Start()

	// Fan-out racing a client disconnect: pushers keep going while Close
	// runs concurrently. Pushes before the close signal may succeed; pushes
	// after it must fail cleanly.
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for j := 0; j < 200; j++ {
				_ = conn.Push([]byte("payload"))
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-start
		conn.Close(websocket.CloseGoingAway, "client went away")
	}()

	close(start)
	wg.Wait()

	assert.Error(t, conn.Push([]byte("after")))
}

func TestConnectionPushDelivers(t *testing.T) {
	conn := newTestConnection(t, "1")
	conn.Start()
	defer conn.Close(websocket.CloseNormalClosure, "done")

	assert.NoError(t, conn.Push([]byte("hello")))
}
