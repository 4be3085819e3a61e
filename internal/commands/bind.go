package commands

import (
	"github.com/bwmarrin/discordgo"
)

// BindCommand sets the channel the command was issued in as the guild's
// feedback channel. All playback feedback lands there from then on.
func BindCommand(s *discordgo.Session, m *discordgo.MessageCreate) {
	registry.Player(m.GuildID).SetFeedbackChannel(m.ChannelID)
	s.ChannelMessageSend(m.ChannelID, "Bound this channel for playback feedback.")
}
