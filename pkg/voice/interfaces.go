package voice

import (
	"context"
	"io"
)

// Transport establishes voice connections to destination channels. It is the
// package's only way onto the network; internal/discord provides the
// discordgo-backed implementation.
type Transport interface {
	// Join connects to the given voice channel and blocks until the
	// connection is usable or ctx expires.
	Join(ctx context.Context, channelID string) (Connection, error)
}

// Connection is one live voice connection.
type Connection interface {
	// PlayStream starts shipping the given audio (48kHz stereo s16le PCM)
	// over the connection. The returned handle delivers exactly one
	// PlaybackResult when the stream ends, errors, or is stopped.
	PlayStream(audio io.ReadCloser) (StreamHandle, error)

	// ChannelID reports the channel this connection is bound to.
	ChannelID() string

	// Leave tears the connection down.
	Leave() error
}

// StreamHandle tracks one in-flight audio stream.
//
// Exactly one PlaybackResult is delivered on Done, no matter how the stream
// terminates. Stop requests termination; the result still arrives via Done.
type StreamHandle interface {
	Done() <-chan PlaybackResult
	Stop()
}

// Source is anything playable: a YouTube video, a local sound file. Sources
// are handles with reference identity: two sources with the same label are
// still distinct queue entries.
type Source interface {
	// Label is the human-readable name used in feedback and queue listings.
	Label() string

	// Begin starts playback over the given connection and returns the
	// stream handle the caller should watch for completion.
	Begin(conn Connection) (StreamHandle, error)

	// Cancel requests that an in-flight stream started by Begin end early.
	// It is a no-op when nothing is playing.
	Cancel()
}

// MessageSink delivers feedback text to a channel, fire and forget.
type MessageSink interface {
	Send(channelID string, content string)
}

// ChannelResolver checks whether persisted channel ids still resolve to real
// channels. Used only while loading saved bindings.
type ChannelResolver interface {
	VoiceChannelExists(id string) bool
	TextChannelExists(id string) bool
}

// StateStore persists the binding records for every guild as one document.
// Save overwrites the whole collection; Load returns an empty collection when
// nothing has been saved yet.
type StateStore interface {
	Load() ([]SaveState, error)
	Save(states []SaveState) error
}

// BindingSaver is what a GuildPlayer calls after any binding mutation. The
// Registry implements it by re-saving every registered guild.
type BindingSaver interface {
	SaveAll() error
}
