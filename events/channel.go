package events

// ChannelUpdate reports a change to the channel's title, language or category.
type ChannelUpdate struct {
	Broadcaster
	Title                       string   `json:"title"`
	Language                    string   `json:"language"`
	CategoryID                  string   `json:"category_id"`
	CategoryName                string   `json:"category_name"`
	ContentClassificationLabels []string `json:"content_classification_labels"`
}

// Follow reports a user following the channel.
type Follow struct {
	Broadcaster
	User
	FollowedAt string `json:"followed_at"`
}

// AdBreakBegin reports the start of an ad break.
type AdBreakBegin struct {
	Broadcaster
	Requester
	DurationSeconds FlexInt  `json:"duration_seconds"`
	StartedAt       string   `json:"started_at"`
	IsAutomatic     FlexBool `json:"is_automatic"`
}

// Cheer reports bits cheered in the channel. The cheering user fields are
// null for anonymous cheers.
type Cheer struct {
	Broadcaster
	UserID      *string  `json:"user_id"`
	UserLogin   *string  `json:"user_login"`
	UserName    *string  `json:"user_name"`
	IsAnonymous FlexBool `json:"is_anonymous"`
	Message     string   `json:"message"`
	Bits        FlexInt  `json:"bits"`
}

// Raid reports one channel raiding another.
type Raid struct {
	FromBroadcaster
	ToBroadcaster
	Viewers FlexInt `json:"viewers"`
}

// ShoutoutCreate reports a shoutout sent by the channel.
type ShoutoutCreate struct {
	Broadcaster
	ToBroadcaster
	Moderator
	ViewerCount          FlexInt `json:"viewer_count"`
	StartedAt            string  `json:"started_at"`
	CooldownEndsAt       string  `json:"cooldown_ends_at"`
	TargetCooldownEndsAt string  `json:"target_cooldown_ends_at"`
}

// ShoutoutReceived reports a shoutout given to the channel by another.
type ShoutoutReceived struct {
	Broadcaster
	FromBroadcaster
	ViewerCount FlexInt `json:"viewer_count"`
	StartedAt   string  `json:"started_at"`
}
