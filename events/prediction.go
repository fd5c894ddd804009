package events

// PredictionBegin reports a prediction opening for entries.
type PredictionBegin struct {
	ID string `json:"id"`
	Broadcaster
	Title     string    `json:"title"`
	Outcomes  []Outcome `json:"outcomes"`
	StartedAt string    `json:"started_at"`
	LocksAt   string    `json:"locks_at"`
}

// PredictionProgress reports updated totals for a running prediction.
type PredictionProgress struct {
	ID string `json:"id"`
	Broadcaster
	Title     string    `json:"title"`
	Outcomes  []Outcome `json:"outcomes"`
	StartedAt string    `json:"started_at"`
	LocksAt   string    `json:"locks_at"`
}

// PredictionLock reports a prediction closing for new entries.
type PredictionLock struct {
	ID string `json:"id"`
	Broadcaster
	Title     string    `json:"title"`
	Outcomes  []Outcome `json:"outcomes"`
	StartedAt string    `json:"started_at"`
	LockedAt  string    `json:"locked_at"`
}

// PredictionEnd reports a prediction being resolved or cancelled.
type PredictionEnd struct {
	ID string `json:"id"`
	Broadcaster
	Title            string    `json:"title"`
	WinningOutcomeID string    `json:"winning_outcome_id"`
	Outcomes         []Outcome `json:"outcomes"`
	Status           string    `json:"status"`
	StartedAt        string    `json:"started_at"`
	EndedAt          string    `json:"ended_at"`
}

// Outcome is one side of a prediction. The totals and predictor list are
// absent on prediction begin.
type Outcome struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Color         string      `json:"color"`
	Users         FlexInt     `json:"users,omitempty"`
	ChannelPoints FlexInt     `json:"channel_points,omitempty"`
	TopPredictors []Predictor `json:"top_predictors,omitempty"`
}

// Predictor is one of the top users backing an outcome.
type Predictor struct {
	User
	ChannelPointsWon  *FlexInt `json:"channel_points_won"`
	ChannelPointsUsed FlexInt  `json:"channel_points_used"`
}
