package voice

import "errors"

// Sentinel errors for every way a playback operation can fail. The
// GuildPlayer converts each of these into feedback text; none escape the
// session boundary as faults.
var (
	// ErrEmptyQueue signals a dequeue from an empty queue.
	ErrEmptyQueue = errors.New("nothing in playlist")
	// ErrNoConnection signals an operation that needed an active voice
	// connection.
	ErrNoConnection = errors.New("no voice connection")
	// ErrJoinFailed signals that the transport rejected a channel join.
	ErrJoinFailed = errors.New("could not join channel")
	// ErrPlayFailed signals that a source could not start streaming.
	ErrPlayFailed = errors.New("could not start playback")
	// ErrNotPlaying signals a stop with nothing active.
	ErrNotPlaying = errors.New("not currently playing")
	// ErrUnresolvable signals a persisted channel id that no longer
	// resolves to a real channel.
	ErrUnresolvable = errors.New("channel cannot be resolved")
)
