package commands

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// SoundCommand queues a sound from the local library by name, or a random
// one, and starts playback.
func SoundCommand(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) < 1 {
		s.ChannelMessageSend(m.ChannelID, "Usage: "+prefix+"sound <name|random>")
		return
	}

	name := strings.Join(args, " ")
	src := library.Get(name)
	if name == "random" {
		src = library.Random()
	}
	if src == nil {
		s.ChannelMessageSend(m.ChannelID, "No sound named \""+name+"\" in the library.")
		return
	}

	session := registry.Player(m.GuildID)
	session.Add(src)
	if presenceMgr != nil {
		presenceMgr.UpdatePlaybackPresence(src.Label())
	}
	session.Play(context.Background())
}

// SoundsCommand lists the sounds available in the library.
func SoundsCommand(s *discordgo.Session, m *discordgo.MessageCreate) {
	names := library.Names()
	if len(names) == 0 {
		s.ChannelMessageSend(m.ChannelID, "The sound library is empty.")
		return
	}
	s.ChannelMessageSend(m.ChannelID, "Available sounds: "+strings.Join(names, ", "))
}

// RefreshCommand re-reads the sound directory.
func RefreshCommand(s *discordgo.Session, m *discordgo.MessageCreate) {
	if err := library.Refresh(); err != nil {
		s.ChannelMessageSend(m.ChannelID, "Could not refresh the sound library.")
		return
	}
	s.ChannelMessageSend(m.ChannelID, "Sound library refreshed.")
}
