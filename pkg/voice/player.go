package voice

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
)

const musicalEmoji = " :musical_note: "

// GuildPlayer is one guild's playback session: a queue, a connection state
// machine, and the two bound channels (the voice channel to connect to and
// the text channel feedback is routed to). Binding mutations are written
// through to the persistent store immediately.
//
// Every operation reports its outcome as feedback text. When no feedback
// channel is bound the text is dropped silently; that is configuration, not
// an error. Operation failures never propagate past the player.
type GuildPlayer struct {
	id      string
	manager *Manager
	queue   *Queue[Source]
	sink    MessageSink
	saver   BindingSaver

	// mu serializes playback operations; bindMu guards the bound channel
	// ids and is never held while mu is taken.
	mu           sync.Mutex
	bindMu       sync.Mutex
	boundVoiceID string
	feedbackID   string
}

// NewGuildPlayer creates a player for the given guild with an empty queue, a
// disconnected state machine and no bindings. saver may be nil, in which case
// binding mutations are not persisted.
func NewGuildPlayer(id string, transport Transport, sink MessageSink, saver BindingSaver) *GuildPlayer {
	p := &GuildPlayer{
		id:      id,
		manager: NewManager(transport),
		queue:   NewQueue[Source](),
		sink:    sink,
		saver:   saver,
	}
	p.manager.OnFinished(p.next)
	return p
}

// ID returns the guild id this player serves.
func (p *GuildPlayer) ID() string {
	return p.id
}

// Status reports the player's connection state.
func (p *GuildPlayer) Status() Status {
	return p.manager.Status()
}

// Add appends a source to the play queue.
func (p *GuildPlayer) Add(src Source) {
	p.queue.Enqueue(src)
	p.sendFeedback("Added" + musicalEmoji + src.Label() + musicalEmoji + "for playback")
}

// RemoveNext removes the head of the play queue without playing it.
func (p *GuildPlayer) RemoveNext() {
	src, ok := p.queue.Dequeue()
	if !ok {
		p.sendFeedback(ErrEmptyQueue.Error())
		return
	}
	p.sendFeedback("Successfully removed" + musicalEmoji + src.Label() + musicalEmoji)
}

// Clear empties the play queue. Playback already in flight is unaffected.
func (p *GuildPlayer) Clear() {
	p.queue.Clear()
}

// Play starts playback of the next queued source. Playing while something is
// already playing, or with an empty queue, is a reported no-op. When
// disconnected, the bound voice channel is joined first; with no bound
// channel the operation aborts. A source that fails to start is dropped, not
// re-queued.
func (p *GuildPlayer) Play(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.manager.Status() == StatusPlaying {
		p.sendFeedback("Already playing")
		return
	}

	src, ok := p.queue.Dequeue()
	if !ok {
		p.sendFeedback(ErrEmptyQueue.Error())
		return
	}

	if p.manager.Status() == StatusDisconnected {
		bound := p.BoundVoiceChannelID()
		if bound == "" {
			p.sendFeedback("No voice channel to bind to")
			return
		}
		if err := p.manager.Join(ctx, bound); err != nil {
			p.sendFeedback(err.Error())
			return
		}
	}

	if err := p.manager.Play(src); err != nil {
		p.sendFeedback(err.Error())
		return
	}
	p.sendFeedback("Now playing" + musicalEmoji + src.Label() + musicalEmoji)
}

// Skip ends the current source and lets the completion event advance to the
// next one. With an empty queue it degrades to a full stop.
func (p *GuildPlayer) Skip() {
	if p.queue.IsEmpty() {
		p.Stop()
		return
	}

	if err := p.manager.Stop(); err != nil {
		p.sendFeedback(err.Error())
	}
}

// Stop ends the current source. The queue is left alone: an explicit stop
// never auto-advances into new playback.
func (p *GuildPlayer) Stop() {
	if err := p.manager.Stop(); err != nil {
		p.sendFeedback(err.Error())
		return
	}
	p.sendFeedback("Playback stopped")
}

// Join connects to the given voice channel and records it as the bound
// channel for future plays. Joining the channel the player is already in is
// a no-op. Moving between channels leaves the old one first.
func (p *GuildPlayer) Join(ctx context.Context, channelID string) {
	p.mu.Lock()

	if p.manager.ChannelID() == channelID {
		p.mu.Unlock()
		p.sendFeedback("Already there")
		return
	}

	p.bindMu.Lock()
	p.boundVoiceID = channelID
	p.bindMu.Unlock()

	if p.manager.ChannelID() != "" {
		if err := p.manager.Leave(); err != nil {
			log.Printf("[voice] guild %s: leave before rejoin: %v", p.id, err)
		}
	}

	err := p.manager.Join(ctx, channelID)
	p.mu.Unlock()

	p.persist()

	if err != nil {
		p.sendFeedback(err.Error())
		return
	}
	p.sendFeedback("Joined <#" + channelID + "> and set as bound voice channel")
}

// Leave disconnects from the current voice channel.
func (p *GuildPlayer) Leave() {
	p.mu.Lock()
	defer p.mu.Unlock()

	channelID := p.manager.ChannelID()
	if channelID == "" {
		p.sendFeedback("Not in a channel")
		return
	}

	if err := p.manager.Leave(); err != nil {
		log.Printf("[voice] guild %s: leave: %v", p.id, err)
	}
	p.sendFeedback("Left <#" + channelID + ">")
}

// QueueListing renders the queue as a 1-indexed human-readable list.
func (p *GuildPlayer) QueueListing() string {
	var b strings.Builder
	b.WriteString("The following sounds are in the queue:")

	for i, src := range p.queue.Items() {
		fmt.Fprintf(&b, "\n\n%d. %s", i+1, src.Label())
	}

	return b.String()
}

// SetBoundVoiceChannel records the voice channel future plays connect to and
// writes the binding through to the store.
func (p *GuildPlayer) SetBoundVoiceChannel(channelID string) {
	p.bindMu.Lock()
	p.boundVoiceID = channelID
	p.bindMu.Unlock()
	p.persist()
}

// SetFeedbackChannel records the text channel feedback is sent to and writes
// the binding through to the store.
func (p *GuildPlayer) SetFeedbackChannel(channelID string) {
	p.bindMu.Lock()
	p.feedbackID = channelID
	p.bindMu.Unlock()
	p.persist()
}

// BoundVoiceChannelID returns the bound voice channel id, "" when unbound.
func (p *GuildPlayer) BoundVoiceChannelID() string {
	p.bindMu.Lock()
	defer p.bindMu.Unlock()
	return p.boundVoiceID
}

// FeedbackChannelID returns the bound feedback channel id, "" when unbound.
func (p *GuildPlayer) FeedbackChannelID() string {
	p.bindMu.Lock()
	defer p.bindMu.Unlock()
	return p.feedbackID
}

// loadBindings sets both bindings without triggering a persistence write.
// Used only while restoring saved state.
func (p *GuildPlayer) loadBindings(voiceID, feedbackID string) {
	p.bindMu.Lock()
	p.boundVoiceID = voiceID
	p.feedbackID = feedbackID
	p.bindMu.Unlock()
}

// next reacts to a stream completion: report errors, then either play the
// next queued source or leave the channel. A guild never idles connected
// with an empty queue.
func (p *GuildPlayer) next(finished Source, res PlaybackResult) {
	if res.Errored() {
		log.Printf("[voice] guild %s: playback of %q ended with error: %v", p.id, finished.Label(), res.Err)
		p.sendFeedback("Playback of" + musicalEmoji + finished.Label() + musicalEmoji + "ended with an error")
	} else {
		log.Printf("[voice] guild %s: playback of %q ended: %s", p.id, finished.Label(), res.Reason)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// A user play issued between the stream's completion and this reaction
	// may already have started the next stream; the queue belongs to it.
	if p.manager.Status() == StatusPlaying {
		return
	}

	src, ok := p.queue.Dequeue()
	if !ok {
		channelID := p.manager.ChannelID()
		if channelID == "" {
			return
		}
		if err := p.manager.Leave(); err != nil {
			log.Printf("[voice] guild %s: leave after queue drained: %v", p.id, err)
		}
		p.sendFeedback("Left <#" + channelID + ">")
		return
	}

	if err := p.manager.Play(src); err != nil {
		p.sendFeedback(err.Error())
		return
	}
	p.sendFeedback("Now playing" + musicalEmoji + src.Label() + musicalEmoji)
}

// sendFeedback routes text to the bound feedback channel, if any.
func (p *GuildPlayer) sendFeedback(feedback string) {
	channelID := p.FeedbackChannelID()
	if channelID == "" {
		return
	}
	p.sink.Send(channelID, feedback)
}

// persist writes every guild's bindings through to the durable store. A
// failing store write is the one fault this package does not swallow: it
// means committed bindings can no longer be made durable.
func (p *GuildPlayer) persist() {
	if p.saver == nil {
		return
	}
	if err := p.saver.SaveAll(); err != nil {
		log.Fatalf("[voice] guild %s: binding save failed: %v", p.id, err)
	}
}
