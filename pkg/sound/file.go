package sound

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"

	"github.com/PhantomPhire/DiscordBotUtils/pkg/voice"
)

// FileSound plays a local sound file. The file is opened and decoded when
// playback begins, not at construction, so a stale library entry surfaces as
// a playback error rather than blocking enqueue.
type FileSound struct {
	path string

	mu     sync.Mutex
	handle voice.StreamHandle
}

// NewFile creates a source for the sound file at path.
func NewFile(path string) *FileSound {
	return &FileSound{path: path}
}

// Label is the file's base name without extension.
func (s *FileSound) Label() string {
	base := filepath.Base(s.path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (s *FileSound) Begin(conn voice.Connection) (voice.StreamHandle, error) {
	stream, err := s.open()
	if err != nil {
		return nil, err
	}

	handle, err := conn.PlayStream(stream)
	if err != nil {
		stream.Close()
		return nil, err
	}

	s.mu.Lock()
	s.handle = handle
	s.mu.Unlock()
	return handle, nil
}

func (s *FileSound) Cancel() {
	s.mu.Lock()
	handle := s.handle
	s.mu.Unlock()
	if handle != nil {
		handle.Stop()
	}
}

// open decodes the file and resamples it to the connection's PCM format.
func (s *FileSound) open() (io.ReadCloser, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "open sound file %q", s.path)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		f.Close()
		return nil, errors.Errorf("unsupported sound file type %q", filepath.Ext(s.path))
	}
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "decode sound file %q", s.path)
	}

	var src beep.Streamer = streamer
	if format.SampleRate != beep.SampleRate(sampleRate) {
		src = beep.Resample(4, format.SampleRate, beep.SampleRate(sampleRate), streamer)
	}

	return &pcmReader{src: src, closer: streamer}, nil
}

// pcmReader drains a beep streamer as interleaved s16le bytes.
type pcmReader struct {
	src     beep.Streamer
	closer  io.Closer
	samples [][2]float64
	pending []byte
	done    bool
}

func (r *pcmReader) Read(p []byte) (int, error) {
	for len(r.pending) == 0 {
		if r.done {
			return 0, io.EOF
		}
		if r.samples == nil {
			r.samples = make([][2]float64, 512)
		}
		n, ok := r.src.Stream(r.samples)
		if !ok || n == 0 {
			// A streamer yielding no samples is drained; never spin
			// on zero-sample reads.
			r.done = true
		}
		buf := make([]byte, 0, n*channels*2)
		for _, sample := range r.samples[:n] {
			for ch := 0; ch < channels; ch++ {
				v := sample[ch]
				if v > 1 {
					v = 1
				} else if v < -1 {
					v = -1
				}
				s := int16(v * 32767)
				buf = append(buf, byte(s), byte(s>>8))
			}
		}
		r.pending = buf
	}

	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

func (r *pcmReader) Close() error {
	r.done = true
	return r.closer.Close()
}
