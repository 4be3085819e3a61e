package sound

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/pkg/errors"
)

// processStream is an ffmpeg stdout pipe that kills the process when closed,
// so an early Stop does not leave a transcoder running.
type processStream struct {
	io.ReadCloser
	cmd *exec.Cmd
}

func (s *processStream) Close() error {
	err := s.ReadCloser.Close()
	if s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
	// Reap the process; the exit status is uninteresting after a kill.
	go s.cmd.Wait()
	return err
}

// ffmpegStream launches ffmpeg decoding the given input into 48kHz stereo
// s16le PCM on stdout. The reconnect flags only make sense for network
// inputs and are skipped for local files.
func ffmpegStream(input string, network bool) (io.ReadCloser, error) {
	args := []string{}
	if network {
		args = append(args,
			"-reconnect", "1",
			"-reconnect_streamed", "1",
			"-reconnect_delay_max", "5",
		)
	}
	args = append(args,
		"-i", input,
		"-f", "s16le",
		"-ar", fmt.Sprintf("%d", sampleRate),
		"-ac", fmt.Sprintf("%d", channels),
		"-loglevel", "warning",
		"pipe:1",
	)

	cmd := exec.Command("ffmpeg", args...)
	reader, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(err, "ffmpeg stdout pipe")
	}
	if err := cmd.Start(); err != nil {
		return nil, errors.Wrap(err, "ffmpeg start")
	}

	return &processStream{ReadCloser: reader, cmd: cmd}, nil
}
