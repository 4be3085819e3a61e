package discord

import (
	"encoding/binary"
	"io"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"
	"layeh.com/gopus"

	"github.com/PhantomPhire/DiscordBotUtils/pkg/voice"
)

const (
	channels   = 2
	sampleRate = 48000
	frameSize  = 960 // 20ms at 48kHz
)

// Connection wraps one live discordgo voice connection.
type Connection struct {
	vc *discordgo.VoiceConnection
}

func newConnection(vc *discordgo.VoiceConnection) *Connection {
	return &Connection{vc: vc}
}

func (c *Connection) ChannelID() string {
	return c.vc.ChannelID
}

func (c *Connection) Leave() error {
	return c.vc.Disconnect()
}

// PlayStream encodes the PCM stream to opus frames and ships them over the
// voice connection in a background goroutine. The returned handle's Done
// channel receives exactly one result.
func (c *Connection) PlayStream(audio io.ReadCloser) (voice.StreamHandle, error) {
	encoder, err := gopus.NewEncoder(sampleRate, channels, gopus.Audio)
	if err != nil {
		return nil, errors.Wrap(err, "create opus encoder")
	}

	handle := &streamHandle{
		done: make(chan voice.PlaybackResult, 1),
		stop: make(chan struct{}),
	}
	go c.stream(audio, encoder, handle)
	return handle, nil
}

func (c *Connection) stream(audio io.ReadCloser, encoder *gopus.Encoder, handle *streamHandle) {
	defer audio.Close()

	if err := c.vc.Speaking(true); err != nil {
		log.Printf("Could not set speaking state: %v", err)
	}
	defer func() {
		if err := c.vc.Speaking(false); err != nil {
			log.Printf("Could not clear speaking state: %v", err)
		}
	}()

	pcmBuf := make([]byte, frameSize*channels*2)
	intBuf := make([]int16, frameSize*channels)

	for {
		select {
		case <-handle.stop:
			handle.deliver(voice.PlaybackResult{Reason: "requested"})
			return
		default:
		}

		if _, err := io.ReadFull(audio, pcmBuf); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				handle.deliver(voice.PlaybackResult{Reason: "end of stream"})
			} else {
				handle.deliver(voice.PlaybackResult{Reason: "read error", Err: err})
			}
			return
		}

		for i := range intBuf {
			intBuf[i] = int16(binary.LittleEndian.Uint16(pcmBuf[i*2 : i*2+2]))
		}

		opus, err := encoder.Encode(intBuf, frameSize, len(pcmBuf))
		if err != nil {
			handle.deliver(voice.PlaybackResult{Reason: "encode error", Err: err})
			return
		}

		select {
		case c.vc.OpusSend <- opus:
		case <-handle.stop:
			handle.deliver(voice.PlaybackResult{Reason: "requested"})
			return
		}
	}
}

// streamHandle is the Connection's voice.StreamHandle. deliver is guarded by
// a sync.Once so a stop racing the end of the stream still produces a single
// result.
type streamHandle struct {
	done chan voice.PlaybackResult
	stop chan struct{}

	stopOnce sync.Once
	doneOnce sync.Once
}

func (h *streamHandle) Done() <-chan voice.PlaybackResult {
	return h.done
}

func (h *streamHandle) Stop() {
	h.stopOnce.Do(func() { close(h.stop) })
}

func (h *streamHandle) deliver(res voice.PlaybackResult) {
	h.doneOnce.Do(func() { h.done <- res })
}
