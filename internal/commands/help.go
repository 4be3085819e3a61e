package commands

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

func HelpCommand(s *discordgo.Session, m *discordgo.MessageCreate) {
	lines := []string{
		"**Commands**",
		prefix + "play [url] - queue a YouTube video and start playback",
		prefix + "sound <name|random> - queue a sound from the library",
		prefix + "sounds - list available sounds",
		prefix + "refresh - re-read the sound directory",
		prefix + "join [channel|member] - join a voice channel and bind it",
		prefix + "leave - leave the current voice channel",
		prefix + "bind - send playback feedback to this channel",
		prefix + "skip - skip the current sound",
		prefix + "stop - stop playback",
		prefix + "queue - show the queue",
		prefix + "remove - remove the next queued sound",
		prefix + "clear - clear the queue",
	}
	s.ChannelMessageSend(m.ChannelID, strings.Join(lines, "\n"))
}
