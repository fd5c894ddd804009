// Package eventsub maintains the persistent websocket session that delivers
// EventSub notifications. Connect performs the welcome handshake, then a
// single background goroutine owns the connection for the life of the
// session: it classifies frames, decodes envelopes, follows reconnect
// instructions, and feeds decoded domain events into the channel returned by
// Session.Events.
package eventsub

import (
	"context"
	"fmt"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/MyriadMinds/twitch-api/events"
)

// DefaultURL is the well-known EventSub websocket endpoint.
const DefaultURL = "wss://eventsub.wss.twitch.tv/ws"

const defaultBuffer = 128

// Session is one logical connection lifetime to the EventSub service. Its id
// is assigned by the service during the welcome handshake and stays stable
// for the session's lifetime, including across service-directed reconnects.
type Session struct {
	id  string
	out chan events.Event
}

type options struct {
	url     string
	dialer  *websocket.Dialer
	logger  *zap.Logger
	buffer  int
	metrics *Metrics
}

// Option configures Connect.
type Option func(*options)

// WithURL overrides the websocket endpoint. Mostly useful for tests.
func WithURL(url string) Option {
	return func(o *options) { o.url = url }
}

// WithDialer replaces the default websocket dialer.
func WithDialer(d *websocket.Dialer) Option {
	return func(o *options) { o.dialer = d }
}

// WithLogger attaches a logger to the session. Without one the session is
// silent.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithBuffer sets the capacity of the event channel. When the consumer falls
// more than this many events behind, further events are dropped (and logged)
// rather than blocking the read loop.
func WithBuffer(n int) Option {
	return func(o *options) { o.buffer = n }
}

// WithMetrics instruments the session with the given counters.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// Connect opens a session: it dials the endpoint, requires the first frame
// to be a session welcome naming a session id, and only then starts the
// background read loop. Every failure before that point is returned here and
// leaves nothing running.
func Connect(ctx context.Context, opts ...Option) (*Session, error) {
	o := &options{
		url:    DefaultURL,
		dialer: websocket.DefaultDialer,
		logger: zap.NewNop(),
		buffer: defaultBuffer,
	}
	for _, opt := range opts {
		opt(o)
	}

	conn, _, err := o.dialer.DialContext(ctx, o.url, nil)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", o.url, err)
	}

	welcome, err := readWelcome(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}

	session := &Session{id: welcome.ID, out: make(chan events.Event, o.buffer)}
	listener := &listener{
		conn:    conn,
		dialer:  o.dialer,
		out:     session.out,
		log:     o.logger.With(zap.String("session_id", welcome.ID)),
		metrics: o.metrics,
	}
	go listener.run()

	return session, nil
}

// readWelcome consumes the handshake frame. Anything other than a text frame
// holding a welcome with a session id is a construction failure.
func readWelcome(conn *websocket.Conn) (*SessionInfo, error) {
	f := classifyFrame(conn.ReadMessage())
	if f.kind == frameError {
		return nil, fmt.Errorf("reading welcome message: %w", f.err)
	}
	if f.kind != frameText {
		return nil, ErrNotWelcome
	}

	env, err := decodeEnvelope(f.data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWelcome, err)
	}
	if env.Welcome == nil {
		return nil, ErrNotWelcome
	}
	if env.Welcome.ID == "" {
		return nil, ErrNoSessionID
	}
	return env.Welcome, nil
}

// ID returns the service-assigned session identifier, the key under which
// subscriptions are registered for this session.
func (s *Session) ID() string { return s.id }

// Events returns the session's event channel. Events arrive in the order the
// service delivered them; the channel is closed once the session ends, for
// any reason. Every call returns the same channel, so the sequence is
// consumed once and is not restartable.
func (s *Session) Events() <-chan events.Event { return s.out }

// listener is the background half of a session. It is the only owner of the
// connection: nothing else reads, writes, or replaces it, even during
// reconnection.
type listener struct {
	conn    *websocket.Conn
	dialer  *websocket.Dialer
	out     chan<- events.Event
	log     *zap.Logger
	metrics *Metrics
}

func (l *listener) run() {
	defer close(l.out)
	defer func() { l.conn.Close() }()

	for {
		f := classifyFrame(l.conn.ReadMessage())
		switch f.kind {
		case frameText:
			if l.handleEnvelope(f.data) {
				return
			}
		case frameClose:
			if f.reason != "" {
				l.log.Info("connection closing", zap.String("reason", f.reason))
			} else {
				l.log.Info("connection closing")
			}
			return
		case frameError:
			l.log.Error("connection failed", zap.Error(f.err))
			return
		case frameUnsupported:
			l.log.Info("ignoring unsupported frame type")
		}
	}
}

// handleEnvelope dispatches one decoded text frame. Its return value reports
// whether the session should end.
func (l *listener) handleEnvelope(data []byte) (stop bool) {
	env, err := decodeEnvelope(data)
	if err != nil {
		l.metrics.decodeFailure()
		l.log.Error("dropping undecodable message", zap.Error(err), zap.ByteString("body", data))
		return false
	}

	switch {
	case env.Notification != nil:
		l.deliver(env)

	case env.Reconnect != nil:
		return l.reconnect(env.Reconnect.ReconnectURL)

	case env.Revocation != nil:
		// Revocation ends delivery for this session. Send a close frame,
		// best effort, and stop without waiting for the remote to close.
		l.log.Info("subscription revoked, closing session",
			zap.String("subscription_type", env.Revocation.Type),
			zap.String("status", env.Revocation.Status))
		err := l.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		if err != nil {
			l.log.Error("failed to close connection on revocation", zap.Error(err))
		}
		return true

	case env.Welcome != nil:
		// A welcome after the handshake carries nothing new: the session id
		// is stable for the session's lifetime.
		l.log.Debug("welcome received mid-session")

	case env.Metadata.MessageType == MessageKeepalive:
		// Nothing to do.

	default:
		l.log.Warn("ignoring message of unknown type",
			zap.String("message_type", string(env.Metadata.MessageType)))
	}
	return false
}

// deliver pushes the decoded event to the consumer. Delivery is best effort:
// a full channel drops the event rather than stalling the read loop.
func (l *listener) deliver(env *Envelope) {
	l.metrics.received()
	select {
	case l.out <- env.Notification.Event:
	default:
		l.metrics.dropped()
		l.log.Warn("consumer behind, dropping event",
			zap.String("subscription_type", env.Notification.Subscription.Type))
	}
}

// reconnect migrates the session to a new endpoint. The old connection is
// drained to its natural end first so no in-flight notification is lost,
// then the new connection replaces it in place. The session id never changes
// across a migration.
func (l *listener) reconnect(url string) (stop bool) {
	l.log.Info("reconnect requested", zap.String("url", url))

	if l.drain() {
		return true
	}
	l.conn.Close()

	next, _, err := l.dialer.Dial(url, nil)
	if err != nil {
		l.log.Error("failed to reconnect", zap.Error(err))
		return true
	}

	l.conn = next
	l.metrics.reconnected()
	return false
}

// drain processes the remainder of the current connection until it closes.
// Transport failures mid-drain are expected (the service is abandoning the
// old endpoint) and end the drain quietly.
func (l *listener) drain() (stop bool) {
	for {
		f := classifyFrame(l.conn.ReadMessage())
		switch f.kind {
		case frameText:
			if l.handleEnvelope(f.data) {
				return true
			}
		case frameClose, frameError:
			return false
		case frameUnsupported:
			l.log.Info("ignoring unsupported frame type")
		}
	}
}
