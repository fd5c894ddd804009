// Package events defines the domain events delivered inside EventSub
// notification envelopes, one struct per subscription type, plus the shared
// sub-records they are built from. Structs mirror the Twitch wire protocol;
// the eventsub package treats them as opaque values.
package events

import (
	"encoding/json"
	"fmt"
)

// Event is one decoded domain event. The set of implementations is closed:
// every subscription type this library can register has exactly one event
// struct, selected by Decode.
type Event interface {
	isEvent()
}

func (*Follow) isEvent() {}
func (*AdBreakBegin) isEvent() {}
func (*ChannelUpdate) isEvent() {}
func (*ChatClear) isEvent() {}
func (*ChatClearUserMessages) isEvent() {}
func (*ChatMessage) isEvent() {}
func (*ChatMessageDelete) isEvent() {}
func (*ChatNotification) isEvent() {}
func (*Subscribe) isEvent() {}
func (*SubscriptionEnd) isEvent() {}
func (*SubscriptionGift) isEvent() {}
func (*SubscriptionMessage) isEvent() {}
func (*Cheer) isEvent() {}
func (*Raid) isEvent() {}
func (*RewardRedemptionAdd) isEvent() {}
func (*PollBegin) isEvent() {}
func (*PollProgress) isEvent() {}
func (*PollEnd) isEvent() {}
func (*PredictionBegin) isEvent() {}
func (*PredictionProgress) isEvent() {}
func (*PredictionLock) isEvent() {}
func (*PredictionEnd) isEvent() {}
func (*CharityDonation) isEvent() {}
func (*HypeTrainBegin) isEvent() {}
func (*HypeTrainProgress) isEvent() {}
func (*HypeTrainEnd) isEvent() {}
func (*ShoutoutCreate) isEvent() {}
func (*ShoutoutReceived) isEvent() {}
func (*StreamOnline) isEvent() {}
func (*StreamOffline) isEvent() {}
func (*WhisperReceived) isEvent() {}

// Decode unmarshals the event object of a notification payload into the
// typed event for the given subscription type. Unknown subscription types
// are an error: the variant set is closed and the caller is expected to
// drop the frame.
func Decode(subscriptionType string, raw json.RawMessage) (Event, error) {
	target, ok := prototypes[subscriptionType]
	if !ok {
		return nil, fmt.Errorf("unknown subscription type %q", subscriptionType)
	}

	event := target()
	if err := json.Unmarshal(raw, event); err != nil {
		return nil, fmt.Errorf("decoding %s event: %w", subscriptionType, err)
	}
	return event, nil
}

// prototypes maps wire subscription types to constructors for their event
// structs. Keys must stay in sync with the subscription catalog in the
// eventsub package.
var prototypes = map[string]func() Event{
	"channel.follow":                                      func() Event { return &Follow{} },
	"channel.ad_break.begin":                              func() Event { return &AdBreakBegin{} },
	"channel.update":                                      func() Event { return &ChannelUpdate{} },
	"channel.chat.clear":                                  func() Event { return &ChatClear{} },
	"channel.chat.clear_user_messages":                    func() Event { return &ChatClearUserMessages{} },
	"channel.chat.message":                                func() Event { return &ChatMessage{} },
	"channel.chat.message_delete":                         func() Event { return &ChatMessageDelete{} },
	"channel.chat.notification":                           func() Event { return &ChatNotification{} },
	"channel.subscribe":                                   func() Event { return &Subscribe{} },
	"channel.subscription.end":                            func() Event { return &SubscriptionEnd{} },
	"channel.subscription.gift":                           func() Event { return &SubscriptionGift{} },
	"channel.subscription.message":                        func() Event { return &SubscriptionMessage{} },
	"channel.cheer":                                       func() Event { return &Cheer{} },
	"channel.raid":                                        func() Event { return &Raid{} },
	"channel.channel_points_custom_reward_redemption.add": func() Event { return &RewardRedemptionAdd{} },
	"channel.poll.begin":                                  func() Event { return &PollBegin{} },
	"channel.poll.progress":                               func() Event { return &PollProgress{} },
	"channel.poll.end":                                    func() Event { return &PollEnd{} },
	"channel.prediction.begin":                            func() Event { return &PredictionBegin{} },
	"channel.prediction.progress":                         func() Event { return &PredictionProgress{} },
	"channel.prediction.lock":                             func() Event { return &PredictionLock{} },
	"channel.prediction.end":                              func() Event { return &PredictionEnd{} },
	"channel.charity_campaign.donate":                     func() Event { return &CharityDonation{} },
	"channel.hype_train.begin":                            func() Event { return &HypeTrainBegin{} },
	"channel.hype_train.progress":                         func() Event { return &HypeTrainProgress{} },
	"channel.hype_train.end":                              func() Event { return &HypeTrainEnd{} },
	"channel.shoutout.create":                             func() Event { return &ShoutoutCreate{} },
	"channel.shoutout.receive":                            func() Event { return &ShoutoutReceived{} },
	"stream.online":                                       func() Event { return &StreamOnline{} },
	"stream.offline":                                      func() Event { return &StreamOffline{} },
	"user.whisper.message":                                func() Event { return &WhisperReceived{} },
}
