package sound

import (
	"sync"

	"github.com/kkdai/youtube/v2"
	"github.com/pkg/errors"

	"github.com/PhantomPhire/DiscordBotUtils/pkg/voice"
)

// YouTubeSound plays the audio track of a YouTube video. Video metadata is
// resolved at construction so the label is available before playback and a
// dead link is reported to the requester instead of failing mid-queue.
type YouTubeSound struct {
	client *youtube.Client
	video  *youtube.Video

	mu     sync.Mutex
	handle voice.StreamHandle
}

// NewYouTube resolves the given video URL (or raw id) into a playable source.
func NewYouTube(client *youtube.Client, url string) (*YouTubeSound, error) {
	video, err := client.GetVideo(url)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve youtube video %q", url)
	}
	return &YouTubeSound{client: client, video: video}, nil
}

func (s *YouTubeSound) Label() string {
	return "YouTube Video: " + s.video.Title
}

// Begin picks the first audio-carrying format, pipes it through ffmpeg and
// hands the PCM stream to the connection.
func (s *YouTubeSound) Begin(conn voice.Connection) (voice.StreamHandle, error) {
	formats := s.video.Formats.WithAudioChannels()
	if len(formats) == 0 {
		return nil, errors.Errorf("no audio formats for video %q", s.video.Title)
	}

	link, err := s.client.GetStreamURL(s.video, &formats[0])
	if err != nil {
		return nil, errors.Wrapf(err, "stream url for video %q", s.video.Title)
	}

	stream, err := ffmpegStream(link, true)
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

func (s *YouTubeSound) Cancel() {
	s.mu.Lock()
	handle := s.handle
	s.mu.Unlock()
	if handle != nil {
		handle.Stop()
	}
}
