package events

import "encoding/json"

// ChatClear reports the channel's chat being cleared.
type ChatClear struct {
	Broadcaster
}

// ChatClearUserMessages reports all messages from one user being removed.
type ChatClearUserMessages struct {
	Broadcaster
	Target
}

// ChatMessage is one message sent to the channel's chat.
type ChatMessage struct {
	Broadcaster
	Chatter
	MessageID                   string     `json:"message_id"`
	Message                     Message    `json:"message"`
	MessageType                 string     `json:"message_type"`
	Badges                      []Badge    `json:"badges"`
	Cheer                       *CheerInfo `json:"cheer"`
	Color                       string     `json:"color"`
	Reply                       *Reply     `json:"reply"`
	ChannelPointsCustomRewardID *string    `json:"channel_points_custom_reward_id"`

	// Source identifies the origin channel when the message arrived through
	// a shared chat session. Its fields flatten into this object.
	Source Source `json:"-"`
}

func (e *ChatMessage) UnmarshalJSON(data []byte) error {
	type alias ChatMessage
	if err := json.Unmarshal(data, (*alias)(e)); err != nil {
		return err
	}
	return e.Source.decodeFrom(data)
}

func (e ChatMessage) MarshalJSON() ([]byte, error) {
	type alias ChatMessage
	return mergeFields(alias(e), e.Source.encode())
}

// ChatMessageDelete reports a single chat message being removed.
type ChatMessageDelete struct {
	Broadcaster
	Target
	MessageID string `json:"message_id"`
}

// ChatNotification is a system chat notice (sub, resub, gift, raid, ...).
// Exactly one notice member is populated, selected by NoticeType.
type ChatNotification struct {
	Broadcaster
	Chatter
	Color         string  `json:"color"`
	Badges        []Badge `json:"badges"`
	SystemMessage string  `json:"system_message"`
	MessageID     string  `json:"message_id"`
	Message       Message `json:"message"`
	NoticeType    string  `json:"notice_type"`

	Sub              *SubNotice              `json:"sub,omitempty"`
	Resub            *ResubNotice            `json:"resub,omitempty"`
	SubGift          *SubGiftNotice          `json:"sub_gift,omitempty"`
	CommunitySubGift *CommunitySubGiftNotice `json:"community_sub_gift,omitempty"`
	GiftPaidUpgrade  *GiftUpgradeNotice      `json:"gift_paid_upgrade,omitempty"`
	PrimePaidUpgrade *PrimeUpgradeNotice     `json:"prime_paid_upgrade,omitempty"`
	Raid             *RaidNotice             `json:"raid,omitempty"`
	Unraid           *UnraidNotice           `json:"unraid,omitempty"`
	PayItForward     *GiftUpgradeNotice      `json:"pay_it_forward,omitempty"`
	Announcement     *AnnouncementNotice     `json:"announcement,omitempty"`
	BitsBadgeTier    *BitsBadgeTierNotice    `json:"bits_badge_tier,omitempty"`
	CharityDonation  *CharityDonationNotice  `json:"charity_donation,omitempty"`

	SharedChatSub              *SubNotice              `json:"shared_chat_sub,omitempty"`
	SharedChatResub            *ResubNotice            `json:"shared_chat_resub,omitempty"`
	SharedChatSubGift          *SubGiftNotice          `json:"shared_chat_sub_gift,omitempty"`
	SharedChatCommunitySubGift *CommunitySubGiftNotice `json:"shared_chat_community_sub_gift,omitempty"`
	SharedChatGiftPaidUpgrade  *GiftUpgradeNotice      `json:"shared_chat_gift_paid_upgrade,omitempty"`
	SharedChatPrimePaidUpgrade *PrimeUpgradeNotice     `json:"shared_chat_prime_paid_upgrade,omitempty"`
	SharedChatRaid             *RaidNotice             `json:"shared_chat_raid,omitempty"`
	SharedChatPayItForward     *GiftUpgradeNotice      `json:"shared_chat_pay_it_forward,omitempty"`
	SharedChatAnnouncement     *AnnouncementNotice     `json:"shared_chat_announcement,omitempty"`

	Source Source `json:"-"`
}

func (e *ChatNotification) UnmarshalJSON(data []byte) error {
	type alias ChatNotification
	if err := json.Unmarshal(data, (*alias)(e)); err != nil {
		return err
	}
	return e.Source.decodeFrom(data)
}

func (e ChatNotification) MarshalJSON() ([]byte, error) {
	type alias ChatNotification
	return mergeFields(alias(e), e.Source.encode())
}

// SubNotice announces a first-time subscription.
type SubNotice struct {
	SubTier        string   `json:"sub_tier"`
	IsPrime        FlexBool `json:"is_prime"`
	DurationMonths FlexInt  `json:"duration_months"`
}

// ResubNotice announces a resubscription, possibly gifted.
type ResubNotice struct {
	CumulativeMonths FlexInt  `json:"cumulative_months"`
	DurationMonths   FlexInt  `json:"duration_months"`
	StreakMonths     *FlexInt `json:"streak_months"`
	SubTier          string   `json:"sub_tier"`
	IsPrime          FlexBool `json:"is_prime"`
	IsGift           FlexBool `json:"is_gift"`

	// Gifter flattens into this object as gifter_* fields.
	Gifter Gifter `json:"-"`
}

func (n *ResubNotice) UnmarshalJSON(data []byte) error {
	type alias ResubNotice
	if err := json.Unmarshal(data, (*alias)(n)); err != nil {
		return err
	}
	return n.Gifter.decodeFrom(data)
}

func (n ResubNotice) MarshalJSON() ([]byte, error) {
	type alias ResubNotice
	return mergeFields(alias(n), n.Gifter.encode())
}

// SubGiftNotice announces a single gifted subscription.
type SubGiftNotice struct {
	CumulativeMonths FlexInt  `json:"cumulative_months"`
	DurationMonths   FlexInt  `json:"duration_months"`
	SubTier          string   `json:"sub_tier"`
	CommunityGiftID  *string  `json:"community_gift_id"`
	RecipientID      string   `json:"recipient_user_id"`
	RecipientLogin   string   `json:"recipient_user_login"`
	RecipientName    string   `json:"recipient_user_name"`
	CumulativeTotal  *FlexInt `json:"cumulative_total"`
}

// CommunitySubGiftNotice announces a batch of gifted subscriptions.
type CommunitySubGiftNotice struct {
	ID              string   `json:"id"`
	Total           FlexInt  `json:"total"`
	SubTier         string   `json:"sub_tier"`
	CumulativeTotal *FlexInt `json:"cumulative_total"`
}

// GiftUpgradeNotice announces a gifted subscription being continued by the
// recipient. Also used for pay-it-forward notices.
type GiftUpgradeNotice struct {
	Gifter Gifter `json:"-"`
}

func (n *GiftUpgradeNotice) UnmarshalJSON(data []byte) error {
	return n.Gifter.decodeFrom(data)
}

func (n GiftUpgradeNotice) MarshalJSON() ([]byte, error) {
	return mergeFields(struct{}{}, n.Gifter.encode())
}

// PrimeUpgradeNotice announces a Prime subscription converting to paid.
type PrimeUpgradeNotice struct {
	SubTier string `json:"sub_tier"`
}

// RaidNotice announces an incoming raid in chat.
type RaidNotice struct {
	User
	ViewerCount     FlexInt `json:"viewer_count"`
	ProfileImageURL string  `json:"profile_image_url"`
}

// UnraidNotice announces a cancelled raid. It carries no fields.
type UnraidNotice struct{}

// AnnouncementNotice is a moderator announcement.
type AnnouncementNotice struct {
	Color string `json:"color"`
}

// BitsBadgeTierNotice announces a new bits badge tier being earned.
type BitsBadgeTierNotice struct {
	Tier FlexInt `json:"tier"`
}

// CharityDonationNotice announces a charity donation in chat.
type CharityDonationNotice struct {
	CharityName string         `json:"charity_name"`
	Amount      DonationAmount `json:"amount"`
}
