package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// Messenger sends feedback messages. Failures are logged and swallowed;
// playback never stalls on a missing message.
type Messenger struct {
	session *discordgo.Session
}

func NewMessenger(session *discordgo.Session) *Messenger {
	return &Messenger{session: session}
}

func (m *Messenger) Send(channelID string, content string) {
	if _, err := m.session.ChannelMessageSend(channelID, content); err != nil {
		log.Printf("Could not send message to channel %s: %v", channelID, err)
	}
}

// Resolver answers channel existence checks against the session's state
// cache, falling back to the API for channels the cache has not seen.
type Resolver struct {
	session *discordgo.Session
}

func NewResolver(session *discordgo.Session) *Resolver {
	return &Resolver{session: session}
}

func (r *Resolver) VoiceChannelExists(id string) bool {
	channel := r.channel(id)
	return channel != nil && channel.Type == discordgo.ChannelTypeGuildVoice
}

func (r *Resolver) TextChannelExists(id string) bool {
	channel := r.channel(id)
	return channel != nil && channel.Type != discordgo.ChannelTypeGuildVoice
}

func (r *Resolver) channel(id string) *discordgo.Channel {
	if channel, err := r.session.State.Channel(id); err == nil {
		return channel
	}
	channel, err := r.session.Channel(id)
	if err != nil {
		return nil
	}
	return channel
}
