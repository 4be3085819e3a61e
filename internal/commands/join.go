package commands

import (
	"context"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/PhantomPhire/DiscordBotUtils/pkg/namematch"
)

// JoinCommand joins a voice channel and binds it. The target is resolved
// from a mention, a member or channel name, or the caller's own voice
// channel.
func JoinCommand(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	guild, err := s.State.Guild(m.GuildID)
	if err != nil {
		log.Printf("Could not find guild %s in state: %v", m.GuildID, err)
		return
	}

	channelID := namematch.VoiceChannelForMessage(guild, m, strings.Join(args, " "))
	if channelID == "" {
		s.ChannelMessageSend(m.ChannelID, "Could not work out which voice channel to join.")
		return
	}

	registry.Player(m.GuildID).Join(context.Background(), channelID)
}
