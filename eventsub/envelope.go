package eventsub

import (
	"encoding/json"
	"fmt"

	"github.com/MyriadMinds/twitch-api/events"
)

// MessageType discriminates the envelope payload variants.
type MessageType string

const (
	MessageWelcome      MessageType = "session_welcome"
	MessageKeepalive    MessageType = "session_keepalive"
	MessageNotification MessageType = "notification"
	MessageReconnect    MessageType = "session_reconnect"
	MessageRevocation   MessageType = "revocation"
)

// Metadata is the header present on every envelope. The subscription fields
// are set only on notification and revocation messages.
type Metadata struct {
	MessageID           string      `json:"message_id"`
	MessageType         MessageType `json:"message_type"`
	MessageTimestamp    string      `json:"message_timestamp"`
	SubscriptionType    string      `json:"subscription_type,omitempty"`
	SubscriptionVersion string      `json:"subscription_version,omitempty"`
}

// SessionInfo describes the session in welcome and reconnect payloads.
// ReconnectURL is set only on reconnect messages.
type SessionInfo struct {
	ID                      string         `json:"id"`
	Status                  string         `json:"status"`
	ConnectedAt             string         `json:"connected_at"`
	KeepaliveTimeoutSeconds events.FlexInt `json:"keepalive_timeout_seconds"`
	ReconnectURL            string         `json:"reconnect_url,omitempty"`
}

// Notification pairs a decoded domain event with the subscription that
// produced it.
type Notification struct {
	Subscription Subscription
	Event        events.Event
}

// Envelope is one decoded protocol message. At most one payload variant is
// populated, matching Metadata.MessageType; keepalives and messages of an
// unrecognized type carry metadata only.
type Envelope struct {
	Metadata     Metadata
	Welcome      *SessionInfo
	Reconnect    *SessionInfo
	Notification *Notification
	Revocation   *Subscription
}

// DecodeError reports a frame body that could not be turned into a valid
// envelope. It keeps the original text for diagnostics; the session treats
// it as non-fatal and drops the frame.
type DecodeError struct {
	Text string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding envelope: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func decodeFailure(text []byte, format string, args ...any) *DecodeError {
	return &DecodeError{Text: string(text), Err: fmt.Errorf(format, args...)}
}

type rawEnvelope struct {
	Metadata Metadata        `json:"metadata"`
	Payload  json.RawMessage `json:"payload"`
}

type rawPayload struct {
	Session      *SessionInfo    `json:"session"`
	Subscription *Subscription   `json:"subscription"`
	Event        json.RawMessage `json:"event"`
}

// decodeEnvelope parses one text frame body. The payload variant is chosen
// by the metadata message type; when the type is missing the payload shape
// decides. A payload that does not match the declared type is an error.
func decodeEnvelope(data []byte) (*Envelope, error) {
	var raw rawEnvelope
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &DecodeError{Text: string(data), Err: err}
	}

	var payload rawPayload
	if len(raw.Payload) > 0 {
		if err := json.Unmarshal(raw.Payload, &payload); err != nil {
			return nil, &DecodeError{Text: string(data), Err: err}
		}
	}

	messageType := raw.Metadata.MessageType
	if messageType == "" {
		messageType = guessMessageType(payload)
	}

	env := &Envelope{Metadata: raw.Metadata}
	switch messageType {
	case MessageWelcome:
		if payload.Session == nil {
			return nil, decodeFailure(data, "welcome message carries no session")
		}
		env.Welcome = payload.Session

	case MessageReconnect:
		if payload.Session == nil {
			return nil, decodeFailure(data, "reconnect message carries no session")
		}
		if payload.Session.ReconnectURL == "" {
			return nil, decodeFailure(data, "reconnect message carries no reconnect url")
		}
		env.Reconnect = payload.Session

	case MessageNotification:
		if payload.Subscription == nil || len(payload.Event) == 0 {
			return nil, decodeFailure(data, "notification message carries no subscription or event")
		}
		subscriptionType := raw.Metadata.SubscriptionType
		if subscriptionType == "" {
			subscriptionType = payload.Subscription.Type
		}
		event, err := events.Decode(subscriptionType, payload.Event)
		if err != nil {
			return nil, &DecodeError{Text: string(data), Err: err}
		}
		env.Notification = &Notification{Subscription: *payload.Subscription, Event: event}

	case MessageRevocation:
		if payload.Subscription == nil {
			return nil, decodeFailure(data, "revocation message carries no subscription")
		}
		env.Revocation = payload.Subscription

	case MessageKeepalive:
		// Metadata only.

	case "":
		return nil, decodeFailure(data, "message has no type and no recognizable payload")
	}

	return env, nil
}

// guessMessageType falls back to the structural shape of the payload when
// the metadata does not name a type.
func guessMessageType(payload rawPayload) MessageType {
	switch {
	case payload.Subscription != nil && len(payload.Event) > 0:
		return MessageNotification
	case payload.Subscription != nil:
		return MessageRevocation
	case payload.Session != nil && payload.Session.ReconnectURL != "":
		return MessageReconnect
	case payload.Session != nil:
		return MessageWelcome
	default:
		return ""
	}
}
