package commands

import (
	"github.com/bwmarrin/discordgo"
)

func QueueCommand(s *discordgo.Session, m *discordgo.MessageCreate) {
	s.ChannelMessageSend(m.ChannelID, registry.Player(m.GuildID).QueueListing())
}

func RemoveCommand(s *discordgo.Session, m *discordgo.MessageCreate) {
	registry.Player(m.GuildID).RemoveNext()
}

func ClearCommand(s *discordgo.Session, m *discordgo.MessageCreate) {
	registry.Player(m.GuildID).Clear()
	s.ChannelMessageSend(m.ChannelID, "Queue cleared.")
}
