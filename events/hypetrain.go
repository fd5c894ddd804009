package events

// HypeTrainBegin reports a hype train starting.
type HypeTrainBegin struct {
	ID string `json:"id"`
	Broadcaster
	Total              FlexInt        `json:"total"`
	Progress           FlexInt        `json:"progress"`
	Goal               FlexInt        `json:"goal"`
	TopContributions   []Contribution `json:"top_contributions"`
	LastContribution   Contribution   `json:"last_contribution"`
	Level              FlexInt        `json:"level"`
	StartedAt          string         `json:"started_at"`
	ExpiresAt          string         `json:"expires_at"`
	IsGoldenKappaTrain FlexBool       `json:"is_golden_kappa_train"`
}

// HypeTrainProgress reports contributions pushing the hype train along.
type HypeTrainProgress struct {
	ID string `json:"id"`
	Broadcaster
	Total              FlexInt        `json:"total"`
	Progress           FlexInt        `json:"progress"`
	Goal               FlexInt        `json:"goal"`
	TopContributions   []Contribution `json:"top_contributions"`
	LastContribution   Contribution   `json:"last_contribution"`
	Level              FlexInt        `json:"level"`
	StartedAt          string         `json:"started_at"`
	ExpiresAt          string         `json:"expires_at"`
	IsGoldenKappaTrain FlexBool       `json:"is_golden_kappa_train"`
}

// HypeTrainEnd reports a hype train finishing.
type HypeTrainEnd struct {
	ID string `json:"id"`
	Broadcaster
	Total              FlexInt        `json:"total"`
	TopContributions   []Contribution `json:"top_contributions"`
	Level              FlexInt        `json:"level"`
	StartedAt          string         `json:"started_at"`
	EndedAt            string         `json:"ended_at"`
	CooldownEndsAt     string         `json:"cooldown_ends_at"`
	IsGoldenKappaTrain FlexBool       `json:"is_golden_kappa_train"`
}

// Contribution is one user's contribution to a hype train.
type Contribution struct {
	User
	Type  string  `json:"type"`
	Total FlexInt `json:"total"`
}
