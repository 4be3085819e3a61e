package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	youtube "github.com/kkdai/youtube/v2"
	"golang.org/x/time/rate"

	"github.com/PhantomPhire/DiscordBotUtils/internal/commands"
	"github.com/PhantomPhire/DiscordBotUtils/internal/config"
	botdiscord "github.com/PhantomPhire/DiscordBotUtils/internal/discord"
	"github.com/PhantomPhire/DiscordBotUtils/internal/handlers"
	"github.com/PhantomPhire/DiscordBotUtils/internal/presence"
	"github.com/PhantomPhire/DiscordBotUtils/internal/storage"
	"github.com/PhantomPhire/DiscordBotUtils/pkg/sound"
	"github.com/PhantomPhire/DiscordBotUtils/pkg/voice"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Create a new Discord session using the provided token
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildVoiceStates |
		discordgo.IntentsMessageContent

	// Index the local sound library
	library := sound.NewLibrary(cfg.SoundsPath)
	if err := library.Refresh(); err != nil {
		log.Printf("Could not read sound directory %q: %v", cfg.SoundsPath, err)
	}

	// Wire the playback registry to its discord adapters and binding store
	store := storage.NewBindingStore(cfg.BindingsPath)
	registry := voice.NewRegistry(
		botdiscord.NewTransport(dg),
		botdiscord.NewMessenger(dg),
		botdiscord.NewResolver(dg),
		store,
	)

	commands.Configure(registry, library, &youtube.Client{}, cfg.CommandPrefix)

	// Create presence manager and hand it to the playback commands
	presenceManager := presence.NewPresenceManager(dg)
	commands.SetPresenceManager(presenceManager)

	// Register the message handler
	dg.AddHandler(handlers.MessageHandler)

	// Open a websocket connection to Discord and begin listening
	openWithRetry(dg)

	// Restore guild bindings now that the state cache can vet channel ids
	if err := registry.LoadAll(); err != nil {
		log.Printf("Could not restore guild bindings: %v", err)
	}

	// Set initial presence and keep it fresh
	presenceManager.UpdateDefaultPresence()
	presenceManager.StartPeriodicUpdates()

	log.Println("Bot is running. Press CTRL-C to exit.")
	// Wait here until CTRL-C or other term signal is received.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Cleanly close down the Discord session.
	dg.Close()
}

// openWithRetry opens the gateway connection, pacing attempts so a Discord
// outage does not turn into a hot loop.
func openWithRetry(dg *discordgo.Session) {
	limiter := rate.NewLimiter(rate.Every(10*time.Second), 1)
	for {
		if err := limiter.Wait(context.Background()); err != nil {
			log.Fatalf("Login limiter: %v", err)
		}
		if err := dg.Open(); err != nil {
			log.Printf("Failed to open Discord session, retrying: %v", err)
			continue
		}
		return
	}
}
