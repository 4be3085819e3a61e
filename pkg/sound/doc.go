// Package sound provides the playable sources fed to the voice package:
// YouTube videos resolved through the kkdai client and local sound files
// decoded with beep. Every source delivers 48kHz stereo s16le PCM, the
// format the voice connection's opus encoder expects.
package sound

const (
	channels   = 2
	sampleRate = 48000
)
