package eventsub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSubscription(t *testing.T) {
	condition := Condition{BroadcasterID: "1337", UserID: "9001"}

	tests := []struct {
		kind          SubscriptionType
		wantType      string
		wantVersion   string
		wantCondition map[string]string
	}{
		{
			kind:        Follow,
			wantType:    "channel.follow",
			wantVersion: "2",
			wantCondition: map[string]string{
				"broadcaster_user_id": "1337",
				"moderator_user_id":   "9001",
			},
		},
		{
			kind:        ChannelUpdate,
			wantType:    "channel.update",
			wantVersion: "2",
			wantCondition: map[string]string{
				"broadcaster_user_id": "1337",
			},
		},
		{
			kind:        ChatMessage,
			wantType:    "channel.chat.message",
			wantVersion: "1",
			wantCondition: map[string]string{
				"broadcaster_user_id": "1337",
				"user_id":             "9001",
			},
		},
		{
			kind:        Raid,
			wantType:    "channel.raid",
			wantVersion: "1",
			wantCondition: map[string]string{
				"to_broadcaster_user_id": "1337",
			},
		},
		{
			kind:        WhisperReceived,
			wantType:    "user.whisper.message",
			wantVersion: "1",
			wantCondition: map[string]string{
				"user_id": "9001",
			},
		},
		{
			kind:        StreamOnline,
			wantType:    "stream.online",
			wantVersion: "1",
			wantCondition: map[string]string{
				"broadcaster_user_id": "1337",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.wantType, func(t *testing.T) {
			sub := tt.kind.Build("AQoQexAWVYKSTIu4ec_2VAxyuhAB", condition)
			assert.Equal(t, tt.wantType, sub.Type)
			assert.Equal(t, tt.wantVersion, sub.Version)
			assert.Equal(t, tt.wantCondition, sub.Condition)
			assert.Equal(t, "websocket", sub.Transport.Method)
			assert.Equal(t, "AQoQexAWVYKSTIu4ec_2VAxyuhAB", sub.Transport.SessionID)
		})
	}
}

// Every subscription type maps to a wire name, and the mapping parses back.
func TestSubscriptionTypeRoundTrip(t *testing.T) {
	for kind := Follow; kind <= WhisperReceived; kind++ {
		name, version := kind.wire()
		require.NotEmpty(t, name, "type %d has no wire name", kind)
		require.NotEmpty(t, version, "type %s has no version", name)

		parsed, err := ParseSubscriptionType(name)
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)

		assert.NotEqual(t, "Unknown", kind.Name())
	}
}

func TestParseSubscriptionTypeUnknown(t *testing.T) {
	_, err := ParseSubscriptionType("channel.does_not_exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel.does_not_exist")
}
