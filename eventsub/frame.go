package eventsub

import (
	"errors"

	"github.com/gorilla/websocket"
)

// frameKind classifies one transport read. Ping and pong frames never show
// up here: gorilla/websocket acknowledges pings inside ReadMessage, which is
// the transport-level handling the protocol asks for.
type frameKind int

const (
	// frameText is a text frame carrying an envelope body.
	frameText frameKind = iota
	// frameClose is a graceful close handshake, with an optional reason.
	frameClose
	// frameError is a fatal transport failure.
	frameError
	// frameUnsupported is a frame type the protocol never sends (binary).
	frameUnsupported
)

type frame struct {
	kind   frameKind
	data   []byte
	reason string
	err    error
}

// classifyFrame interprets the result of one websocket read. Pure: the same
// inputs always classify the same way, and nothing is touched besides them.
func classifyFrame(messageType int, data []byte, err error) frame {
	if err != nil {
		var closeErr *websocket.CloseError
		if errors.As(err, &closeErr) && closeErr.Code != websocket.CloseAbnormalClosure {
			return frame{kind: frameClose, reason: closeErr.Text}
		}
		return frame{kind: frameError, err: err}
	}

	if messageType == websocket.TextMessage {
		return frame{kind: frameText, data: data}
	}
	return frame{kind: frameUnsupported}
}
