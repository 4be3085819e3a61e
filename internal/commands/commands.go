// Package commands implements the bot's chat commands. Each command is a
// function taking the session and the triggering message; the playback
// registry, sound library and youtube client are injected once at startup
// via Configure.
package commands

import (
	youtube "github.com/kkdai/youtube/v2"

	"github.com/PhantomPhire/DiscordBotUtils/internal/presence"
	"github.com/PhantomPhire/DiscordBotUtils/pkg/sound"
	"github.com/PhantomPhire/DiscordBotUtils/pkg/voice"
)

var (
	registry    *voice.Registry
	library     *sound.Library
	ytClient    *youtube.Client
	presenceMgr *presence.PresenceManager
	prefix      = "!"
)

// Configure wires the command handlers to their dependencies. Must be called
// before the message handler is registered.
func Configure(reg *voice.Registry, lib *sound.Library, client *youtube.Client, commandPrefix string) {
	registry = reg
	library = lib
	ytClient = client
	if commandPrefix != "" {
		prefix = commandPrefix
	}
}

// SetPresenceManager wires the presence manager the playback commands
// update. Optional; commands tolerate it being unset.
func SetPresenceManager(pm *presence.PresenceManager) {
	presenceMgr = pm
}

// Prefix returns the configured command prefix.
func Prefix() string {
	return prefix
}
