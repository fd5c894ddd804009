package eventsub

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MyriadMinds/twitch-api/events"
)

const testSessionID = "AQoQILE98gtqShGmLD7AM6yJThAB"

// newServer runs handler once per websocket connection.
func newServer(t *testing.T, handler func(conn *websocket.Conn)) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrading connection: %v", err)
			return
		}
		defer conn.Close()
		handler(conn)
	}))
	t.Cleanup(server.Close)
	return server
}

func wsURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func envelope(messageType, payload string) string {
	return fmt.Sprintf(
		`{"metadata": {"message_id": %q, "message_type": %q, "message_timestamp": %q}, "payload": %s}`,
		uuid.NewString(), messageType, time.Now().UTC().Format(time.RFC3339Nano), payload)
}

func welcomeMessage(sessionID string) string {
	return envelope("session_welcome",
		fmt.Sprintf(`{"session": {"id": %q, "status": "connected", "keepalive_timeout_seconds": 10}}`, sessionID))
}

func reconnectMessage(url string) string {
	return envelope("session_reconnect",
		fmt.Sprintf(`{"session": {"id": %q, "status": "reconnecting", "reconnect_url": %q}}`, testSessionID, url))
}

func followMessage(userID string) string {
	return envelope("notification", fmt.Sprintf(`{
		"subscription": {"id": %q, "status": "enabled", "type": "channel.follow", "version": "2", "condition": {}, "transport": {"method": "websocket", "session_id": %q}},
		"event": {"user_id": %q, "user_login": "user", "user_name": "User", "broadcaster_user_id": "1", "followed_at": "2023-07-15T18:16:11Z"}
	}`, uuid.NewString(), testSessionID, userID))
}

func revocationMessage() string {
	return envelope("revocation", fmt.Sprintf(`{
		"subscription": {"id": %q, "status": "authorization_revoked", "type": "channel.follow", "version": "2", "condition": {}, "transport": {"method": "websocket", "session_id": %q}}
	}`, uuid.NewString(), testSessionID))
}

func sendText(t *testing.T, conn *websocket.Conn, message string) {
	if err := conn.WriteMessage(websocket.TextMessage, []byte(message)); err != nil {
		t.Errorf("writing message: %v", err)
	}
}

// closeGracefully performs the close handshake from the server side.
func closeGracefully(conn *websocket.Conn) {
	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	conn.ReadMessage()
}

func nextEvent(t *testing.T, session *Session) events.Event {
	t.Helper()
	select {
	case event, ok := <-session.Events():
		require.True(t, ok, "event channel closed early")
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for an event")
		return nil
	}
}

func requireClosed(t *testing.T, session *Session) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case event, ok := <-session.Events():
			if !ok {
				return
			}
			t.Fatalf("unexpected event %T before close", event)
		case <-deadline:
			t.Fatal("timed out waiting for the event channel to close")
		}
	}
}

func followedUser(t *testing.T, event events.Event) string {
	t.Helper()
	follow, ok := event.(*events.Follow)
	require.True(t, ok, "expected *events.Follow, got %T", event)
	return follow.User.ID
}

func TestConnectHandshake(t *testing.T) {
	server := newServer(t, func(conn *websocket.Conn) {
		sendText(t, conn, welcomeMessage(testSessionID))
		closeGracefully(conn)
	})

	session, err := Connect(context.Background(), WithURL(wsURL(server)))
	require.NoError(t, err)
	assert.Equal(t, testSessionID, session.ID())
	requireClosed(t, session)
}

func TestConnectDialFailure(t *testing.T) {
	_, err := Connect(context.Background(), WithURL("ws://127.0.0.1:1"))
	require.Error(t, err)
}

func TestConnectFirstFrameNotText(t *testing.T) {
	server := newServer(t, func(conn *websocket.Conn) {
		conn.WriteMessage(websocket.BinaryMessage, []byte{0x01, 0x02})
	})

	_, err := Connect(context.Background(), WithURL(wsURL(server)))
	require.ErrorIs(t, err, ErrNotWelcome)
}

func TestConnectFirstFrameNotWelcome(t *testing.T) {
	server := newServer(t, func(conn *websocket.Conn) {
		sendText(t, conn, envelope("session_keepalive", `{}`))
	})

	_, err := Connect(context.Background(), WithURL(wsURL(server)))
	require.ErrorIs(t, err, ErrNotWelcome)
}

func TestConnectFirstFrameUndecodable(t *testing.T) {
	server := newServer(t, func(conn *websocket.Conn) {
		sendText(t, conn, `not an envelope`)
	})

	_, err := Connect(context.Background(), WithURL(wsURL(server)))
	require.ErrorIs(t, err, ErrNotWelcome)
}

func TestConnectWelcomeWithoutSessionID(t *testing.T) {
	server := newServer(t, func(conn *websocket.Conn) {
		sendText(t, conn, welcomeMessage(""))
	})

	_, err := Connect(context.Background(), WithURL(wsURL(server)))
	require.ErrorIs(t, err, ErrNoSessionID)
}

func TestEventsArriveInOrder(t *testing.T) {
	server := newServer(t, func(conn *websocket.Conn) {
		sendText(t, conn, welcomeMessage(testSessionID))
		for i := 1; i <= 5; i++ {
			sendText(t, conn, followMessage(fmt.Sprintf("%d", i)))
		}
		closeGracefully(conn)
	})

	session, err := Connect(context.Background(), WithURL(wsURL(server)))
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		assert.Equal(t, fmt.Sprintf("%d", i), followedUser(t, nextEvent(t, session)))
	}
	requireClosed(t, session)
}

// An undecodable frame between two notifications is dropped without
// disturbing delivery of its neighbors.
func TestMalformedFrameIsSkipped(t *testing.T) {
	server := newServer(t, func(conn *websocket.Conn) {
		sendText(t, conn, welcomeMessage(testSessionID))
		sendText(t, conn, followMessage("1337"))
		sendText(t, conn, `{"metadata": {"message_type": "notification"}, "payload": {"oops"`)
		sendText(t, conn, followMessage("9999"))
		closeGracefully(conn)
	})

	session, err := Connect(context.Background(), WithURL(wsURL(server)))
	require.NoError(t, err)

	assert.Equal(t, "1337", followedUser(t, nextEvent(t, session)))
	assert.Equal(t, "9999", followedUser(t, nextEvent(t, session)))
	requireClosed(t, session)
}

func TestKeepalivesAreSilent(t *testing.T) {
	server := newServer(t, func(conn *websocket.Conn) {
		sendText(t, conn, welcomeMessage(testSessionID))
		sendText(t, conn, envelope("session_keepalive", `{}`))
		sendText(t, conn, followMessage("1337"))
		closeGracefully(conn)
	})

	session, err := Connect(context.Background(), WithURL(wsURL(server)))
	require.NoError(t, err)

	assert.Equal(t, "1337", followedUser(t, nextEvent(t, session)))
	requireClosed(t, session)
}

// A reconnect message migrates the session to the new endpoint: events still
// queued on the old connection arrive first, the new connection's welcome is
// not surfaced, and the session id stays the same.
func TestReconnectIsTransparent(t *testing.T) {
	second := newServer(t, func(conn *websocket.Conn) {
		sendText(t, conn, welcomeMessage(testSessionID))
		sendText(t, conn, followMessage("after"))
		closeGracefully(conn)
	})

	first := newServer(t, func(conn *websocket.Conn) {
		sendText(t, conn, welcomeMessage(testSessionID))
		sendText(t, conn, reconnectMessage(wsURL(second)))
		sendText(t, conn, followMessage("before"))
		closeGracefully(conn)
	})

	session, err := Connect(context.Background(), WithURL(wsURL(first)))
	require.NoError(t, err)

	assert.Equal(t, "before", followedUser(t, nextEvent(t, session)))
	assert.Equal(t, "after", followedUser(t, nextEvent(t, session)))
	assert.Equal(t, testSessionID, session.ID())
	requireClosed(t, session)
}

func TestReconnectDialFailureEndsSession(t *testing.T) {
	server := newServer(t, func(conn *websocket.Conn) {
		sendText(t, conn, welcomeMessage(testSessionID))
		sendText(t, conn, reconnectMessage("ws://127.0.0.1:1"))
	})

	session, err := Connect(context.Background(), WithURL(wsURL(server)))
	require.NoError(t, err)
	requireClosed(t, session)
}

// Revocation ends the session even though the server never closes its side.
func TestRevocationEndsSession(t *testing.T) {
	server := newServer(t, func(conn *websocket.Conn) {
		sendText(t, conn, welcomeMessage(testSessionID))
		sendText(t, conn, followMessage("1337"))
		sendText(t, conn, revocationMessage())

		// Hold the connection open; the client should close it.
		conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		conn.ReadMessage()
	})

	session, err := Connect(context.Background(), WithURL(wsURL(server)))
	require.NoError(t, err)

	assert.Equal(t, "1337", followedUser(t, nextEvent(t, session)))
	requireClosed(t, session)
}

// With nobody consuming, a full buffer drops the overflow instead of
// stalling the read loop.
func TestFullBufferDropsEvents(t *testing.T) {
	server := newServer(t, func(conn *websocket.Conn) {
		sendText(t, conn, welcomeMessage(testSessionID))
		for i := 1; i <= 3; i++ {
			sendText(t, conn, followMessage(fmt.Sprintf("%d", i)))
		}
		closeGracefully(conn)
	})

	session, err := Connect(context.Background(), WithURL(wsURL(server)), WithBuffer(1))
	require.NoError(t, err)

	// Stay off the channel until the whole sequence has been read, so the
	// buffer is full for every event after the first.
	time.Sleep(500 * time.Millisecond)

	assert.Equal(t, "1", followedUser(t, nextEvent(t, session)))
	requireClosed(t, session)
}
