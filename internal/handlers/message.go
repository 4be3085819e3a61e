package handlers

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/PhantomPhire/DiscordBotUtils/internal/commands"
)

func MessageHandler(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore all messages created by the bot itself
	if m.Author.ID == s.State.User.ID {
		return
	}

	// Commands only make sense inside a guild
	if m.GuildID == "" {
		return
	}

	prefix := commands.Prefix()
	if !strings.HasPrefix(m.Content, prefix) {
		return
	}

	args := strings.Fields(strings.TrimPrefix(m.Content, prefix))
	if len(args) == 0 {
		return
	}

	switch strings.ToLower(args[0]) {
	case "play":
		commands.PlayCommand(s, m, args[1:])
	case "sound":
		commands.SoundCommand(s, m, args[1:])
	case "sounds":
		commands.SoundsCommand(s, m)
	case "refresh":
		commands.RefreshCommand(s, m)
	case "join":
		commands.JoinCommand(s, m, args[1:])
	case "leave":
		commands.LeaveCommand(s, m)
	case "bind":
		commands.BindCommand(s, m)
	case "skip":
		commands.SkipCommand(s, m)
	case "stop":
		commands.StopCommand(s, m)
	case "queue":
		commands.QueueCommand(s, m)
	case "remove":
		commands.RemoveCommand(s, m)
	case "clear":
		commands.ClearCommand(s, m)
	case "help":
		commands.HelpCommand(s, m)
	}
}
