package commands

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/PhantomPhire/DiscordBotUtils/pkg/sound"
)

// PlayCommand queues a YouTube URL when one is given and starts playback of
// the guild's queue.
func PlayCommand(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	session := registry.Player(m.GuildID)

	if len(args) > 0 {
		src, err := sound.NewYouTube(ytClient, args[0])
		if err != nil {
			log.Printf("Could not resolve video %q: %v", args[0], err)
			s.ChannelMessageSend(m.ChannelID, "Could not resolve that video.")
			return
		}
		session.Add(src)
		if presenceMgr != nil {
			presenceMgr.UpdatePlaybackPresence(src.Label())
		}
	}

	session.Play(context.Background())
}
