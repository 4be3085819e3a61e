package voice

import (
	"log"
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// Registry is the process-wide table of guild players, created lazily on
// first access and kept for the process lifetime. It also owns binding
// persistence: players call back into SaveAll on every binding mutation, and
// LoadAll restores the saved bindings at startup.
type Registry struct {
	transport Transport
	sink      MessageSink
	resolver  ChannelResolver
	store     StateStore

	mu      sync.Mutex
	players map[string]*GuildPlayer
}

// NewRegistry creates an empty registry wired to the given capabilities.
func NewRegistry(transport Transport, sink MessageSink, resolver ChannelResolver, store StateStore) *Registry {
	return &Registry{
		transport: transport,
		sink:      sink,
		resolver:  resolver,
		store:     store,
		players:   make(map[string]*GuildPlayer),
	}
}

// Player returns the guild's player, creating it on first access.
func (r *Registry) Player(guildID string) *GuildPlayer {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.playerLocked(guildID)
}

func (r *Registry) playerLocked(guildID string) *GuildPlayer {
	p, ok := r.players[guildID]
	if !ok {
		p = NewGuildPlayer(guildID, r.transport, r.sink, r)
		r.players[guildID] = p
	}
	return p
}

// LoadAll restores saved bindings from the store. A missing store is not an
// error; a saved channel id that no longer resolves is skipped silently,
// leaving that binding unset.
func (r *Registry) LoadAll() error {
	states, err := r.store.Load()
	if err != nil {
		return errors.Wrap(err, "load guild bindings")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, state := range states {
		if state.GuildID == "" {
			continue
		}
		if _, ok := r.players[state.GuildID]; ok {
			continue
		}

		p := NewGuildPlayer(state.GuildID, r.transport, r.sink, r)

		voiceID := state.BoundVoiceChannelID
		if voiceID != "" && !r.resolver.VoiceChannelExists(voiceID) {
			log.Printf("[voice] guild %s: saved voice channel %s: %v, dropping binding", state.GuildID, voiceID, ErrUnresolvable)
			voiceID = ""
		}
		feedbackID := state.FeedbackChannelID
		if feedbackID != "" && !r.resolver.TextChannelExists(feedbackID) {
			log.Printf("[voice] guild %s: saved feedback channel %s: %v, dropping binding", state.GuildID, feedbackID, ErrUnresolvable)
			feedbackID = ""
		}
		p.loadBindings(voiceID, feedbackID)

		r.players[state.GuildID] = p
	}

	return nil
}

// SaveAll serializes the bindings of every registered guild and overwrites
// the store in full. Guilds with no bindings set are not recorded.
func (r *Registry) SaveAll() error {
	r.mu.Lock()
	states := make([]SaveState, 0, len(r.players))
	for _, p := range r.players {
		state := SaveState{
			GuildID:             p.ID(),
			BoundVoiceChannelID: p.BoundVoiceChannelID(),
			FeedbackChannelID:   p.FeedbackChannelID(),
		}
		if state.BoundVoiceChannelID == "" && state.FeedbackChannelID == "" {
			continue
		}
		states = append(states, state)
	}
	r.mu.Unlock()

	// Stable order keeps the saved document diffable across writes.
	sort.Slice(states, func(i, j int) bool { return states[i].GuildID < states[j].GuildID })

	if err := r.store.Save(states); err != nil {
		return errors.Wrap(err, "save guild bindings")
	}
	return nil
}
