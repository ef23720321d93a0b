package brackets

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*Hub, string) {
	t.Helper()

	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient(hub, conn, r.URL.Query().Get("room"))
		if !hub.Register(client) {
			conn.Close()
			return
		}
		go client.WritePump()
		go client.ReadPump()
	}))
	t.Cleanup(srv.Close)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestHubBroadcastToRoom(t *testing.T) {
	hub, url := startHub(t)

	conn, _, err := websocket.DefaultDialer.Dial(url+"?room="+PlansRoom, nil)
	require.NoError(t, err)
	defer conn.Close()

	other, _, err := websocket.DefaultDialer.Dial(url+"?room=elsewhere", nil)
	require.NoError(t, err)
	defer other.Close()

	require.Eventually(t, func() bool {
		return hub.RoomSize(PlansRoom) == 1 && hub.RoomSize("elsewhere") == 1
	}, time.Second, 10*time.Millisecond)

	hub.BroadcastToRoom(PlansRoom, Event{Type: EventPlanCreated, Payload: map[string]int{"id": 7}})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, message, err := conn.ReadMessage()
	require.NoError(t, err)

	var event struct {
		Type    string         `json:"type"`
		RoomID  string         `json:"room_id"`
		Payload map[string]int `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(message, &event))
	assert.Equal(t, EventPlanCreated, event.Type)
	assert.Equal(t, PlansRoom, event.RoomID)
	assert.Equal(t, 7, event.Payload["id"])

	require.NoError(t, other.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err = other.ReadMessage()
	assert.Error(t, err, "a client of another room must not receive the event")
}

func TestHubUnregistersClosedClients(t *testing.T) {
	hub, url := startHub(t)

	conn, _, err := websocket.DefaultDialer.Dial(url+"?room="+PlansRoom, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return hub.RoomSize(PlansRoom) == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.RoomSize(PlansRoom) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHubRegisterAfterStop(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	assert.False(t, hub.Register(&Client{room: PlansRoom, send: make(chan []byte, 1)}))
}
