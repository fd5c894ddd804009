package events

import (
	"encoding/json"
	"strconv"
)

// User identifies a Twitch user by the unprefixed user_* wire fields. The
// role-specific variants below carry the same three fields under the prefix
// the protocol uses for that role; events embed them so the prefixed fields
// decode flat off the event object.
type User struct {
	ID    string `json:"user_id"`
	Login string `json:"user_login"`
	Name  string `json:"user_name"`
}

// Broadcaster is the channel owner the event happened in.
type Broadcaster struct {
	ID    string `json:"broadcaster_user_id"`
	Login string `json:"broadcaster_user_login"`
	Name  string `json:"broadcaster_user_name"`
}

// Chatter is the user who sent a chat message.
type Chatter struct {
	ID    string `json:"chatter_user_id"`
	Login string `json:"chatter_user_login"`
	Name  string `json:"chatter_user_name"`
}

// Target is the user an action was applied to.
type Target struct {
	ID    string `json:"target_user_id"`
	Login string `json:"target_user_login"`
	Name  string `json:"target_user_name"`
}

// Requester is the user who initiated an action on the broadcaster's behalf.
type Requester struct {
	ID    string `json:"requester_user_id"`
	Login string `json:"requester_user_login"`
	Name  string `json:"requester_user_name"`
}

// Moderator is the moderator associated with the event.
type Moderator struct {
	ID    string `json:"moderator_user_id"`
	Login string `json:"moderator_user_login"`
	Name  string `json:"moderator_user_name"`
}

// FromBroadcaster is the raiding or shouting-out channel.
type FromBroadcaster struct {
	ID    string `json:"from_broadcaster_user_id"`
	Login string `json:"from_broadcaster_user_login"`
	Name  string `json:"from_broadcaster_user_name"`
}

// ToBroadcaster is the channel receiving a raid or shoutout.
type ToBroadcaster struct {
	ID    string `json:"to_broadcaster_user_id"`
	Login string `json:"to_broadcaster_user_login"`
	Name  string `json:"to_broadcaster_user_name"`
}

// FromUser and ToUser are the endpoints of a whisper.
type FromUser struct {
	ID    string `json:"from_user_id"`
	Login string `json:"from_user_login"`
	Name  string `json:"from_user_name"`
}

type ToUser struct {
	ID    string `json:"to_user_id"`
	Login string `json:"to_user_login"`
	Name  string `json:"to_user_name"`
}

// FlexInt is an integer the service encodes inconsistently: sometimes a JSON
// number, sometimes a quoted string. It always marshals back as a number.
type FlexInt int64

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		*n = FlexInt(v)
		return nil
	}
	return json.Unmarshal(data, (*int64)(n))
}

// FlexBool is a boolean that tolerates the string encodings "true"/"false".
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		*b = FlexBool(v)
		return nil
	}
	return json.Unmarshal(data, (*bool)(b))
}

// Badge is one chat badge worn by a user.
type Badge struct {
	SetID string `json:"set_id"`
	ID    string `json:"id"`
	Info  string `json:"info"`
}

// MessageSimple is the reduced message shape used by resubscription notices:
// plain text plus emote positions.
type MessageSimple struct {
	Text   string        `json:"text"`
	Emotes []EmoteSimple `json:"emotes"`
}

// EmoteSimple locates one emote inside a MessageSimple by rune offsets.
type EmoteSimple struct {
	Begin FlexInt `json:"begin"`
	End   FlexInt `json:"end"`
	ID    string  `json:"id"`
}

// Message is a structured chat message: full text plus typed fragments.
type Message struct {
	Text      string     `json:"text"`
	Fragments []Fragment `json:"fragments"`
}

// FragmentType discriminates the fragment variants of a chat message.
type FragmentType string

const (
	FragmentText      FragmentType = "text"
	FragmentCheermote FragmentType = "cheermote"
	FragmentEmote     FragmentType = "emote"
	FragmentMention   FragmentType = "mention"
)

// Fragment is one piece of a chat message. Exactly one of the optional
// members is set, selected by Type.
type Fragment struct {
	Type      FragmentType `json:"type"`
	Text      string       `json:"text"`
	Cheermote *Cheermote   `json:"cheermote,omitempty"`
	Emote     *Emote       `json:"emote,omitempty"`
	Mention   *Mention     `json:"mention,omitempty"`
}

// Cheermote describes the cheermote of a cheermote fragment.
type Cheermote struct {
	Prefix string  `json:"prefix"`
	Bits   FlexInt `json:"bits"`
	Tier   FlexInt `json:"tier"`
}

// Emote describes the emote of an emote fragment.
type Emote struct {
	ID         string   `json:"id"`
	EmoteSetID string   `json:"emote_set_id"`
	OwnerID    string   `json:"owner_id"`
	Format     []string `json:"format"`
}

// Mention is the user referenced by a mention fragment.
type Mention struct {
	User
}

// CheerInfo carries the bits attached to a cheering chat message.
type CheerInfo struct {
	Bits FlexInt `json:"bits"`
}

// Reply describes the message a chat message replies to.
type Reply struct {
	ParentMessageID   string `json:"parent_message_id"`
	ParentMessageBody string `json:"parent_message_body"`
	ParentUserID      string `json:"parent_user_id"`
	ParentUserLogin   string `json:"parent_user_login"`
	ParentUserName    string `json:"parent_user_name"`
	ThreadMessageID   string `json:"thread_message_id"`
	ThreadUserID      string `json:"thread_user_id"`
	ThreadUserLogin   string `json:"thread_user_login"`
	ThreadUserName    string `json:"thread_user_name"`
}

// DonationAmount is a monetary amount in minor units.
type DonationAmount struct {
	Value         FlexInt `json:"value"`
	DecimalPlaces FlexInt `json:"decimal_places"`
	Currency      string  `json:"currency"`
}
