package eventsub

import (
	"errors"
	"io"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func TestClassifyFrame(t *testing.T) {
	tests := []struct {
		name string
		typ  int
		data []byte
		err  error
		want frameKind
	}{
		{
			name: "text frame",
			typ:  websocket.TextMessage,
			data: []byte(`{}`),
			want: frameText,
		},
		{
			name: "binary frame",
			typ:  websocket.BinaryMessage,
			data: []byte{0x01},
			want: frameUnsupported,
		},
		{
			name: "normal closure",
			typ:  -1,
			err:  &websocket.CloseError{Code: websocket.CloseNormalClosure, Text: "done"},
			want: frameClose,
		},
		{
			name: "going away",
			typ:  -1,
			err:  &websocket.CloseError{Code: websocket.CloseGoingAway},
			want: frameClose,
		},
		{
			name: "abnormal closure is an error",
			typ:  -1,
			err:  &websocket.CloseError{Code: websocket.CloseAbnormalClosure},
			want: frameError,
		},
		{
			name: "transport error",
			typ:  -1,
			err:  io.ErrUnexpectedEOF,
			want: frameError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := classifyFrame(tt.typ, tt.data, tt.err)
			assert.Equal(t, tt.want, f.kind)
		})
	}
}

func TestClassifyFrameKeepsCloseReason(t *testing.T) {
	f := classifyFrame(-1, nil, &websocket.CloseError{Code: websocket.CloseNormalClosure, Text: "server restart"})
	assert.Equal(t, frameClose, f.kind)
	assert.Equal(t, "server restart", f.reason)
}

func TestClassifyFrameKeepsError(t *testing.T) {
	cause := errors.New("read timeout")
	f := classifyFrame(-1, nil, cause)
	assert.Equal(t, frameError, f.kind)
	assert.Equal(t, cause, f.err)
}
