package commands

import (
	"github.com/bwmarrin/discordgo"
)

func LeaveCommand(s *discordgo.Session, m *discordgo.MessageCreate) {
	registry.Player(m.GuildID).Leave()
	if presenceMgr != nil {
		presenceMgr.ClearPlaybackPresence()
	}
}
