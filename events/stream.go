package events

// StreamOnline reports the channel going live.
type StreamOnline struct {
	ID string `json:"id"`
	Broadcaster
	Type      string `json:"type"`
	StartedAt string `json:"started_at"`
}

// StreamOffline reports the channel ending its stream.
type StreamOffline struct {
	Broadcaster
}
