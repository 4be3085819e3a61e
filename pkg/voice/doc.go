// Package voice implements per-guild audio playback orchestration for a
// Discord bot. Each guild gets an independent GuildPlayer that owns a FIFO
// queue of playable sources and a Manager driving a single voice connection
// through the Disconnected/Waiting/Playing lifecycle.
//
// # Components
//
//   - Queue: ordered FIFO of pending sources, owned by its GuildPlayer
//   - Manager: connection state machine, emits one completion per played source
//   - GuildPlayer: playback policy (add/play/skip/stop/next) and user feedback
//   - Registry: process-wide guild id -> GuildPlayer table with lazy creation
//     and whole-file binding persistence
//
// # External capabilities
//
// The package never talks to Discord directly. It consumes the Transport,
// Connection, StreamHandle, MessageSink and ChannelResolver interfaces; the
// concrete discordgo-backed implementations live in internal/discord. A
// transport's StreamHandle must deliver exactly one PlaybackResult per played
// stream; the Manager's bookkeeping depends on that contract.
//
// # Concurrency
//
// A GuildPlayer serializes its own operations with a mutex; distinct guilds
// share no mutable state. Operations check the current status under the lock,
// so rapid-fire calls (two plays racing, a stop during a join) degrade to
// no-ops with feedback rather than corrupt state. Completion events arrive on
// a watcher goroutine and feed back into the player's next() policy.
package voice
