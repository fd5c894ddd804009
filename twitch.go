// Package twitch is a client for the Twitch Helix API surface this module
// cares about: registering EventSub subscriptions against a websocket
// session. Event delivery itself lives in the eventsub package; the two meet
// through the session id.
package twitch

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/MyriadMinds/twitch-api/eventsub"
)

// DefaultAPIURL is the Helix API root.
const DefaultAPIURL = "https://api.twitch.tv/helix"

// Client makes authenticated Helix requests on behalf of one user token.
type Client struct {
	clientID string
	token    string
	baseURL  string
	client   *http.Client
	logger   *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithBaseURL overrides the API root. Mostly useful for tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithLogger attaches a logger to the client.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a client using the given application client id and user access
// token.
func New(clientID, accessToken string, opts ...Option) *Client {
	c := &Client{
		clientID: clientID,
		token:    accessToken,
		baseURL:  DefaultAPIURL,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ConnectEventSub opens an EventSub websocket session. The returned session's
// id is what CreateSubscription registers against.
func (c *Client) ConnectEventSub(ctx context.Context, opts ...eventsub.Option) (*eventsub.Session, error) {
	return eventsub.Connect(ctx, opts...)
}

// CreateSubscription registers one subscription and returns the created
// record, including the id and status the service assigned.
func (c *Client) CreateSubscription(ctx context.Context, sub eventsub.Subscription) (*eventsub.Subscription, error) {
	return post[eventsub.Subscription](ctx, c, "/eventsub/subscriptions", sub)
}

// Subscriptions lists every subscription registered by this client id,
// following pagination to the end.
func (c *Client) Subscriptions(ctx context.Context) ([]eventsub.Subscription, error) {
	return getAll[eventsub.Subscription](ctx, c, "/eventsub/subscriptions")
}

// DeleteSubscription removes one subscription by id.
func (c *Client) DeleteSubscription(ctx context.Context, id string) error {
	return c.delete(ctx, "/eventsub/subscriptions", id)
}
