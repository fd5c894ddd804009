package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIntUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FlexInt
		wantErr bool
	}{
		{name: "number", input: `42`, want: 42},
		{name: "quoted number", input: `"42"`, want: 42},
		{name: "zero", input: `0`, want: 0},
		{name: "negative", input: `-7`, want: -7},
		{name: "not a number", input: `"forty-two"`, wantErr: true},
		{name: "boolean", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n FlexInt
			err := json.Unmarshal([]byte(tt.input), &n)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestFlexIntMarshalsAsNumber(t *testing.T) {
	data, err := json.Marshal(FlexInt(42))
	require.NoError(t, err)
	assert.Equal(t, `42`, string(data))
}

func TestFlexBoolUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FlexBool
		wantErr bool
	}{
		{name: "true", input: `true`, want: true},
		{name: "false", input: `false`, want: false},
		{name: "quoted true", input: `"true"`, want: true},
		{name: "quoted false", input: `"false"`, want: false},
		{name: "not a bool", input: `"maybe"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b FlexBool
			err := json.Unmarshal([]byte(tt.input), &b)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, b)
		})
	}
}

func TestFragmentVariants(t *testing.T) {
	raw := `{
		"text": "hello Kappa cheer100 @cooluser",
		"fragments": [
			{"type": "text", "text": "hello "},
			{"type": "emote", "text": "Kappa", "emote": {"id": "25", "emote_set_id": "0", "owner_id": "0", "format": ["static"]}},
			{"type": "cheermote", "text": "cheer100", "cheermote": {"prefix": "cheer", "bits": 100, "tier": 1}},
			{"type": "mention", "text": "@cooluser", "mention": {"user_id": "1234", "user_login": "cooluser", "user_name": "CoolUser"}}
		]
	}`

	var msg Message
	require.NoError(t, json.Unmarshal([]byte(raw), &msg))
	require.Len(t, msg.Fragments, 4)

	assert.Equal(t, FragmentText, msg.Fragments[0].Type)
	assert.Nil(t, msg.Fragments[0].Emote)

	require.NotNil(t, msg.Fragments[1].Emote)
	assert.Equal(t, "25", msg.Fragments[1].Emote.ID)

	require.NotNil(t, msg.Fragments[2].Cheermote)
	assert.Equal(t, FlexInt(100), msg.Fragments[2].Cheermote.Bits)

	require.NotNil(t, msg.Fragments[3].Mention)
	assert.Equal(t, "1234", msg.Fragments[3].Mention.ID)
}
