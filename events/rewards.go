package events

// RewardRedemptionAdd reports a viewer redeeming a custom channel-points
// reward.
type RewardRedemptionAdd struct {
	ID string `json:"id"`
	Broadcaster
	User
	UserInput  string       `json:"user_input"`
	Status     string       `json:"status"`
	Reward     CustomReward `json:"reward"`
	RedeemedAt string       `json:"redeemed_at"`
}

// CustomReward describes the redeemed reward.
type CustomReward struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Cost   FlexInt `json:"cost"`
	Prompt string  `json:"prompt"`
}
