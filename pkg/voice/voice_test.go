package voice

// Shared hand-rolled fakes for the package tests. They stand in for the
// discordgo-backed implementations in internal/discord and honor the same
// contracts, in particular exactly-once delivery on StreamHandle.Done.

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"
)

type fakeHandle struct {
	done chan PlaybackResult
	once sync.Once
}

func newFakeHandle() *fakeHandle {
	return &fakeHandle{done: make(chan PlaybackResult, 1)}
}

func (h *fakeHandle) Done() <-chan PlaybackResult { return h.done }

func (h *fakeHandle) Stop() {
	h.finish(PlaybackResult{Reason: "requested"})
}

func (h *fakeHandle) finish(res PlaybackResult) {
	h.once.Do(func() { h.done <- res })
}

type fakeConn struct {
	mu        sync.Mutex
	channelID string
	left      bool
}

func (c *fakeConn) PlayStream(audio io.ReadCloser) (StreamHandle, error) {
	return newFakeHandle(), nil
}

func (c *fakeConn) ChannelID() string { return c.channelID }

func (c *fakeConn) Leave() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.left = true
	return nil
}

func (c *fakeConn) hasLeft() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.left
}

type fakeTransport struct {
	mu      sync.Mutex
	joinErr error
	conns   []*fakeConn
}

func (t *fakeTransport) Join(ctx context.Context, channelID string) (Connection, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.joinErr != nil {
		return nil, t.joinErr
	}
	conn := &fakeConn{channelID: channelID}
	t.conns = append(t.conns, conn)
	return conn, nil
}

func (t *fakeTransport) joinCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.conns)
}

func (t *fakeTransport) lastConn() *fakeConn {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.conns) == 0 {
		return nil
	}
	return t.conns[len(t.conns)-1]
}

type fakeSource struct {
	mu        sync.Mutex
	label     string
	beginErr  error
	handle    *fakeHandle
	begun     int
	cancelled bool
}

func (s *fakeSource) Label() string { return s.label }

func (s *fakeSource) Begin(conn Connection) (StreamHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.beginErr != nil {
		return nil, s.beginErr
	}
	s.begun++
	s.handle = newFakeHandle()
	return s.handle, nil
}

func (s *fakeSource) Cancel() {
	s.mu.Lock()
	h := s.handle
	s.cancelled = true
	s.mu.Unlock()
	if h != nil {
		h.finish(PlaybackResult{Reason: "requested"})
	}
}

func (s *fakeSource) beginCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.begun
}

func (s *fakeSource) wasCancelled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelled
}

// end simulates the stream finishing on its own.
func (s *fakeSource) end() {
	s.mu.Lock()
	h := s.handle
	s.mu.Unlock()
	h.finish(PlaybackResult{Reason: "end of stream"})
}

// fail simulates the stream dying with an error.
func (s *fakeSource) fail(err error) {
	s.mu.Lock()
	h := s.handle
	s.mu.Unlock()
	h.finish(PlaybackResult{Err: err})
}

type sentMessage struct {
	channelID string
	content   string
}

type fakeSink struct {
	mu       sync.Mutex
	messages []sentMessage
}

func (s *fakeSink) Send(channelID, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, sentMessage{channelID: channelID, content: content})
}

func (s *fakeSink) all() []sentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]sentMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *fakeSink) last() (sentMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.messages) == 0 {
		return sentMessage{}, false
	}
	return s.messages[len(s.messages)-1], true
}

type memStore struct {
	mu      sync.Mutex
	states  []SaveState
	saves   int
	loadErr error
	saveErr error
}

func (s *memStore) Load() ([]SaveState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	out := make([]SaveState, len(s.states))
	copy(out, s.states)
	return out, nil
}

func (s *memStore) Save(states []SaveState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.states = make([]SaveState, len(states))
	copy(s.states, states)
	s.saves++
	return nil
}

func (s *memStore) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

type fakeResolver struct {
	voice map[string]bool
	text  map[string]bool
}

func (r *fakeResolver) VoiceChannelExists(id string) bool { return r.voice[id] }
func (r *fakeResolver) TextChannelExists(id string) bool  { return r.text[id] }

type countingSaver struct {
	mu    sync.Mutex
	calls int
}

func (s *countingSaver) SaveAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return nil
}

func (s *countingSaver) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

var errStream = errors.New("stream went sideways")

// waitFor polls cond until it holds or the deadline passes. Completion events
// travel through a watcher goroutine, so state changes are not instantaneous.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}
