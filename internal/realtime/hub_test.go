package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/linskybing/freelance-market/internal/domain/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubDeliversToRecipient(t *testing.T) {
	hub := NewHub()
	key := Key{UserID: 5, Role: "client"}

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Serve(conn, key)
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Count(key) == 1 }, 2*time.Second, 10*time.Millisecond)

	// another recipient gets nothing
	hub.Publish(&notification.Notification{ID: 1, RecipientID: 6, RecipientRole: "client", Title: "other"})
	hub.Publish(&notification.Notification{ID: 2, RecipientID: 5, RecipientRole: "client", Title: "Job approved"})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var got notification.Notification
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, uint(2), got.ID)
	assert.Equal(t, "Job approved", got.Title)

	conn.Close()
	assert.Eventually(t, func() bool { return hub.Count(key) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	hub := NewHub()
	assert.NotPanics(t, func() {
		hub.Publish(&notification.Notification{RecipientID: 1, RecipientRole: "freelancer"})
	})
}
