package events

// PollBegin reports a poll starting in the channel.
type PollBegin struct {
	ID string `json:"id"`
	Broadcaster
	Title               string     `json:"title"`
	Choices             []Choice   `json:"choices"`
	BitsVoting          ExtraVotes `json:"bits_voting"`
	ChannelPointsVoting ExtraVotes `json:"channel_points_voting"`
	StartedAt           string     `json:"started_at"`
	EndsAt              string     `json:"ends_at"`
}

// PollProgress reports updated vote counts for a running poll.
type PollProgress struct {
	ID string `json:"id"`
	Broadcaster
	Title               string     `json:"title"`
	Choices             []Choice   `json:"choices"`
	BitsVoting          ExtraVotes `json:"bits_voting"`
	ChannelPointsVoting ExtraVotes `json:"channel_points_voting"`
	StartedAt           string     `json:"started_at"`
	EndsAt              string     `json:"ends_at"`
}

// PollEnd reports a poll finishing.
type PollEnd struct {
	ID string `json:"id"`
	Broadcaster
	Title               string     `json:"title"`
	Choices             []Choice   `json:"choices"`
	BitsVoting          ExtraVotes `json:"bits_voting"`
	ChannelPointsVoting ExtraVotes `json:"channel_points_voting"`
	Status              string     `json:"status"`
	StartedAt           string     `json:"started_at"`
	EndedAt             string     `json:"ended_at"`
}

// Choice is one poll option with its current vote counts. The count fields
// are absent on poll begin.
type Choice struct {
	ID                 string  `json:"id"`
	Title              string  `json:"title"`
	BitsVotes          FlexInt `json:"bits_votes,omitempty"`
	ChannelPointsVotes FlexInt `json:"channel_points_votes,omitempty"`
	Votes              FlexInt `json:"votes,omitempty"`
}

// ExtraVotes describes an additional voting method (bits, channel points).
type ExtraVotes struct {
	IsEnabled     FlexBool `json:"is_enabled"`
	AmountPerVote FlexInt  `json:"amount_per_vote"`
}
