// Package discord adapts a discordgo session to the interfaces the voice
// package consumes: joining channels, shipping opus audio, sending feedback
// messages and validating persisted channel ids.
package discord

import (
	"context"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"

	"github.com/PhantomPhire/DiscordBotUtils/pkg/voice"
)

const (
	joinRetries    = 3
	readyTimeout   = 10 * time.Second
	readyPollEvery = 100 * time.Millisecond
)

// Transport joins voice channels over a discordgo session.
type Transport struct {
	session *discordgo.Session
}

func NewTransport(session *discordgo.Session) *Transport {
	return &Transport{session: session}
}

// Join connects to the given voice channel, retrying transient failures, and
// waits for the gateway to report the connection ready.
func (t *Transport) Join(ctx context.Context, channelID string) (voice.Connection, error) {
	channel, err := t.channel(channelID)
	if err != nil {
		return nil, errors.Wrapf(err, "look up channel %s", channelID)
	}

	var vc *discordgo.VoiceConnection
	for i := 0; i < joinRetries; i++ {
		vc, err = t.session.ChannelVoiceJoin(channel.GuildID, channelID, false, true)
		if err == nil {
			break
		}
		log.Printf("Voice join attempt %d/%d for channel %s failed: %v", i+1, joinRetries, channelID, err)
		if i < joinRetries-1 {
			select {
			case <-time.After(time.Duration(i+1) * time.Second):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "join voice channel %s after %d attempts", channelID, joinRetries)
	}

	timeout := time.After(readyTimeout)
	ticker := time.NewTicker(readyPollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			vc.Disconnect()
			return nil, ctx.Err()
		case <-timeout:
			vc.Disconnect()
			return nil, errors.Errorf("voice connection to channel %s timed out", channelID)
		case <-ticker.C:
			if vc.Ready {
				return newConnection(vc), nil
			}
		}
	}
}

// channel resolves a channel from the state cache, falling back to the API.
func (t *Transport) channel(channelID string) (*discordgo.Channel, error) {
	if channel, err := t.session.State.Channel(channelID); err == nil {
		return channel, nil
	}
	return t.session.Channel(channelID)
}
