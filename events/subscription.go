package events

// Subscribe reports a new channel subscription.
type Subscribe struct {
	User
	Broadcaster
	Tier   string   `json:"tier"`
	IsGift FlexBool `json:"is_gift"`
}

// SubscriptionEnd reports a subscription expiring.
type SubscriptionEnd struct {
	User
	Broadcaster
	Tier   string   `json:"tier"`
	IsGift FlexBool `json:"is_gift"`
}

// SubscriptionGift reports subscriptions gifted to the community. The user
// fields are null for anonymous gifts and CumulativeTotal is null for
// anonymous gifters.
type SubscriptionGift struct {
	UserID    *string `json:"user_id"`
	UserLogin *string `json:"user_login"`
	UserName  *string `json:"user_name"`
	Broadcaster
	Total           FlexInt  `json:"total"`
	Tier            string   `json:"tier"`
	CumulativeTotal *FlexInt `json:"cumulative_total"`
	IsAnonymous     FlexBool `json:"is_anonymous"`
}

// SubscriptionMessage reports a resubscription with its accompanying chat
// message.
type SubscriptionMessage struct {
	User
	Broadcaster
	Tier             string        `json:"tier"`
	Message          MessageSimple `json:"message"`
	CumulativeMonths FlexInt       `json:"cumulative_months"`
	StreakMonths     *FlexInt      `json:"streak_months"`
	DurationMonths   FlexInt       `json:"duration_months"`
}
