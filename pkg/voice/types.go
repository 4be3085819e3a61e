package voice

// Status is the playback state of one guild's voice connection. It is the
// single source of truth: the Manager updates it atomically alongside the
// connection handle and current source it summarizes.
type Status int

const (
	// StatusDisconnected means no voice connection is held.
	StatusDisconnected Status = iota
	// StatusWaiting means connected with nothing playing.
	StatusWaiting
	// StatusPlaying means connected with a source actively streaming.
	StatusPlaying
)

func (s Status) String() string {
	switch s {
	case StatusDisconnected:
		return "Disconnected"
	case StatusWaiting:
		return "Waiting"
	case StatusPlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// PlaybackResult is the tagged outcome of one played stream. Exactly one is
// delivered per play, either a reason for a normal end or an error.
type PlaybackResult struct {
	// Reason is the transport-reported cause of a normal stream end, e.g.
	// "end of stream" or "requested".
	Reason string
	// Err is non-nil when the stream terminated with an error.
	Err error
}

// Errored reports whether playback ended in failure.
func (r PlaybackResult) Errored() bool {
	return r.Err != nil
}

// SaveState is the persisted subset of one guild's player: its id and bound
// channel ids. Queue contents and connection state are never persisted.
type SaveState struct {
	GuildID             string `json:"id"`
	BoundVoiceChannelID string `json:"bound_voice_channel_id,omitempty"`
	FeedbackChannelID   string `json:"feedback_channel_id,omitempty"`
}
