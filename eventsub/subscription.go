package eventsub

import "fmt"

// Subscription is the registration record the Helix API accepts and returns,
// and the descriptor attached to notification and revocation payloads.
type Subscription struct {
	ID        string            `json:"id,omitempty"`
	Status    string            `json:"status,omitempty"`
	Type      string            `json:"type"`
	Version   string            `json:"version"`
	Cost      int               `json:"cost,omitempty"`
	Condition map[string]string `json:"condition"`
	Transport Transport         `json:"transport"`
	CreatedAt string            `json:"created_at,omitempty"`
}

// Transport names the delivery method for a subscription. This library only
// registers websocket transports keyed by the session id.
type Transport struct {
	Method    string `json:"method"`
	SessionID string `json:"session_id"`
}

// SubscriptionType enumerates the event categories this library can register.
type SubscriptionType int

const (
	Follow SubscriptionType = iota
	AdBreakBegin
	ChannelUpdate
	ChatClear
	ChatClearUserMessages
	ChatMessage
	ChatMessageDelete
	ChatNotification
	Subscribe
	SubscriptionEnd
	SubscriptionGift
	SubscriptionMessage
	Cheer
	Raid
	RewardRedemptionAdd
	PollBegin
	PollProgress
	PollEnd
	PredictionBegin
	PredictionProgress
	PredictionLock
	PredictionEnd
	CharityDonation
	HypeTrainBegin
	HypeTrainProgress
	HypeTrainEnd
	ShoutoutCreate
	ShoutoutReceived
	StreamOnline
	StreamOffline
	WhisperReceived
)

// Condition supplies the identifiers the various subscription conditions are
// built from: the channel being watched and the user the token belongs to.
type Condition struct {
	BroadcasterID string
	UserID        string
}

// Build assembles the registration record for this subscription type against
// the given eventsub session.
func (t SubscriptionType) Build(sessionID string, condition Condition) Subscription {
	kind, version := t.wire()
	return Subscription{
		Type:      kind,
		Version:   version,
		Condition: t.conditions(condition),
		Transport: Transport{Method: "websocket", SessionID: sessionID},
	}
}

// wire returns the protocol name and version of the subscription type.
func (t SubscriptionType) wire() (string, string) {
	switch t {
	case Follow:
		return "channel.follow", "2"
	case AdBreakBegin:
		return "channel.ad_break.begin", "1"
	case ChannelUpdate:
		return "channel.update", "2"
	case ChatClear:
		return "channel.chat.clear", "1"
	case ChatClearUserMessages:
		return "channel.chat.clear_user_messages", "1"
	case ChatMessage:
		return "channel.chat.message", "1"
	case ChatMessageDelete:
		return "channel.chat.message_delete", "1"
	case ChatNotification:
		return "channel.chat.notification", "1"
	case Subscribe:
		return "channel.subscribe", "1"
	case SubscriptionEnd:
		return "channel.subscription.end", "1"
	case SubscriptionGift:
		return "channel.subscription.gift", "1"
	case SubscriptionMessage:
		return "channel.subscription.message", "1"
	case Cheer:
		return "channel.cheer", "1"
	case Raid:
		return "channel.raid", "1"
	case RewardRedemptionAdd:
		return "channel.channel_points_custom_reward_redemption.add", "1"
	case PollBegin:
		return "channel.poll.begin", "1"
	case PollProgress:
		return "channel.poll.progress", "1"
	case PollEnd:
		return "channel.poll.end", "1"
	case PredictionBegin:
		return "channel.prediction.begin", "1"
	case PredictionProgress:
		return "channel.prediction.progress", "1"
	case PredictionLock:
		return "channel.prediction.lock", "1"
	case PredictionEnd:
		return "channel.prediction.end", "1"
	case CharityDonation:
		return "channel.charity_campaign.donate", "1"
	case HypeTrainBegin:
		return "channel.hype_train.begin", "1"
	case HypeTrainProgress:
		return "channel.hype_train.progress", "1"
	case HypeTrainEnd:
		return "channel.hype_train.end", "1"
	case ShoutoutCreate:
		return "channel.shoutout.create", "1"
	case ShoutoutReceived:
		return "channel.shoutout.receive", "1"
	case StreamOnline:
		return "stream.online", "1"
	case StreamOffline:
		return "stream.offline", "1"
	case WhisperReceived:
		return "user.whisper.message", "1"
	default:
		return "", ""
	}
}

// ParseSubscriptionType resolves a protocol type name like "channel.follow".
func ParseSubscriptionType(name string) (SubscriptionType, error) {
	for t := Follow; t <= WhisperReceived; t++ {
		if kind, _ := t.wire(); kind == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown subscription type %q", name)
}

// conditions picks the condition keys the subscription type requires.
func (t SubscriptionType) conditions(c Condition) map[string]string {
	switch t {
	case Follow, ShoutoutCreate, ShoutoutReceived:
		return map[string]string{
			"broadcaster_user_id": c.BroadcasterID,
			"moderator_user_id":   c.UserID,
		}
	case ChatClear, ChatClearUserMessages, ChatMessage, ChatMessageDelete, ChatNotification:
		return map[string]string{
			"broadcaster_user_id": c.BroadcasterID,
			"user_id":             c.UserID,
		}
	case Raid:
		return map[string]string{"to_broadcaster_user_id": c.BroadcasterID}
	case WhisperReceived:
		return map[string]string{"user_id": c.UserID}
	default:
		return map[string]string{"broadcaster_user_id": c.BroadcasterID}
	}
}

// Name returns a human-readable label for the subscription type.
func (t SubscriptionType) Name() string {
	switch t {
	case Follow:
		return "Follow"
	case AdBreakBegin:
		return "Ad Break Begin"
	case ChannelUpdate:
		return "Channel Update"
	case ChatClear:
		return "Chat Clear"
	case ChatClearUserMessages:
		return "Chat Clear User Messages"
	case ChatMessage:
		return "Chat Message"
	case ChatMessageDelete:
		return "Chat Message Delete"
	case ChatNotification:
		return "Chat Notification"
	case Subscribe:
		return "Subscribe"
	case SubscriptionEnd:
		return "Subscription End"
	case SubscriptionGift:
		return "Subscription Gift"
	case SubscriptionMessage:
		return "Subscription Message"
	case Cheer:
		return "Cheer"
	case Raid:
		return "Raid"
	case RewardRedemptionAdd:
		return "Reward Redemption Add"
	case PollBegin:
		return "Poll Begin"
	case PollProgress:
		return "Poll Progress"
	case PollEnd:
		return "Poll End"
	case PredictionBegin:
		return "Prediction Begin"
	case PredictionProgress:
		return "Prediction Progress"
	case PredictionLock:
		return "Prediction Lock"
	case PredictionEnd:
		return "Prediction End"
	case CharityDonation:
		return "Charity Donation"
	case HypeTrainBegin:
		return "Hype Train Begin"
	case HypeTrainProgress:
		return "Hype Train Progress"
	case HypeTrainEnd:
		return "Hype Train End"
	case ShoutoutCreate:
		return "Shoutout Create"
	case ShoutoutReceived:
		return "Shoutout Received"
	case StreamOnline:
		return "Stream Online"
	case StreamOffline:
		return "Stream Offline"
	case WhisperReceived:
		return "Whisper Received"
	default:
		return "Unknown"
	}
}
