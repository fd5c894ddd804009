package events

// WhisperReceived reports a whisper sent to the authorized user.
type WhisperReceived struct {
	FromUser
	ToUser
	WhisperID string  `json:"whisper_id"`
	Whisper   Whisper `json:"whisper"`
}

// Whisper is the body of a whisper.
type Whisper struct {
	Text string `json:"text"`
}
