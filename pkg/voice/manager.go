package voice

import (
	"context"
	"fmt"
	"sync"
)

// Manager is the connection state machine for one guild. It owns the live
// voice connection and the currently playing source, and keeps the Status
// enumeration in lockstep with that pair: no connection means Disconnected,
// a connection with no source means Waiting, a connection with an active
// source means Playing.
//
// Every played source produces exactly one completion, forwarded to the
// OnFinished callback. Completions that arrive after a Leave, or that belong
// to a superseded play, are dropped.
type Manager struct {
	transport Transport

	mu      sync.Mutex
	status  Status
	conn    Connection
	current Source

	// gen invalidates in-flight stream watchers; bumped on every play and
	// on leave.
	gen uint64

	onFinished func(src Source, res PlaybackResult)
}

// NewManager creates a Manager in the Disconnected state.
func NewManager(transport Transport) *Manager {
	return &Manager{
		transport: transport,
		status:    StatusDisconnected,
	}
}

// OnFinished registers the completion callback. The owning player sets it
// once at construction, before any play can be issued.
func (m *Manager) OnFinished(fn func(src Source, res PlaybackResult)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onFinished = fn
}

// Status reports the current playback state.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// ChannelID reports the channel of the active connection, or "" when
// disconnected.
func (m *Manager) ChannelID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conn == nil {
		return ""
	}
	return m.conn.ChannelID()
}

// Join establishes a voice connection to the given channel. Joining the
// channel the manager is already connected to is a no-op; joining a different
// channel without an intervening Leave is rejected.
func (m *Manager) Join(ctx context.Context, channelID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conn != nil {
		if m.conn.ChannelID() == channelID {
			return nil
		}
		return fmt.Errorf("%w: already connected to another channel", ErrNoConnection)
	}

	conn, err := m.transport.Join(ctx, channelID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrJoinFailed, err)
	}

	m.conn = conn
	m.status = StatusWaiting
	return nil
}

// Play starts streaming the given source over the active connection. A play
// issued while another source is streaming supersedes it: the old source is
// cancelled, its watcher invalidated, and the new source becomes current. At
// most one stream is ever live per connection.
func (m *Manager) Play(src Source) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conn == nil {
		return ErrNoConnection
	}

	// A superseding play must not leave the old stream shipping audio
	// into the connection. Its completion is dropped by the gen bump.
	if m.current != nil {
		m.current.Cancel()
	}

	handle, err := src.Begin(m.conn)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPlayFailed, err)
	}

	m.gen++
	m.current = src
	m.status = StatusPlaying
	go m.watch(m.gen, src, handle)
	return nil
}

// Stop asks the current source to end early. It does not advance any queue
// and does not change state by itself: the state reverts to Waiting when the
// stream's completion arrives.
func (m *Manager) Stop() error {
	m.mu.Lock()
	if m.conn == nil {
		m.mu.Unlock()
		return ErrNoConnection
	}
	if m.current == nil {
		m.mu.Unlock()
		return ErrNotPlaying
	}
	src := m.current
	m.mu.Unlock()

	// Cancel outside the lock: it may deliver the completion synchronously
	// and the watcher needs the lock to record it.
	src.Cancel()
	return nil
}

// Leave tears down the voice connection. Any in-flight completion for the
// abandoned stream is ignored.
func (m *Manager) Leave() error {
	m.mu.Lock()
	if m.conn == nil {
		m.mu.Unlock()
		return ErrNoConnection
	}

	conn := m.conn
	m.gen++
	m.conn = nil
	m.current = nil
	m.status = StatusDisconnected
	m.mu.Unlock()

	return conn.Leave()
}

// watch waits for the single completion of one played stream and, if the
// play is still current, reverts to Waiting and notifies the owner.
func (m *Manager) watch(gen uint64, src Source, handle StreamHandle) {
	res := <-handle.Done()

	m.mu.Lock()
	if m.gen != gen {
		// Superseded by a later play or a leave.
		m.mu.Unlock()
		return
	}
	m.current = nil
	m.status = StatusWaiting
	fn := m.onFinished
	m.mu.Unlock()

	if fn != nil {
		fn(src, res)
	}
}
