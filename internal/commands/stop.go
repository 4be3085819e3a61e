package commands

import (
	"github.com/bwmarrin/discordgo"
)

func StopCommand(s *discordgo.Session, m *discordgo.MessageCreate) {
	registry.Player(m.GuildID).Stop()
	if presenceMgr != nil {
		presenceMgr.ClearPlaybackPresence()
	}
}
