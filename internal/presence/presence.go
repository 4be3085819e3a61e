package presence

import (
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

var (
	currentPresence string
	presenceMutex   sync.RWMutex
)

// PresenceManager manages the bot's presence
type PresenceManager struct {
	session *discordgo.Session
}

// NewPresenceManager creates a new presence manager
func NewPresenceManager(session *discordgo.Session) *PresenceManager {
	return &PresenceManager{
		session: session,
	}
}

// UpdateDefaultPresence updates the bot's presence with server statistics
func (pm *PresenceManager) UpdateDefaultPresence() {
	guilds := pm.session.State.Guilds
	if len(guilds) == 0 {
		return
	}

	presence := &discordgo.UpdateStatusData{
		Status: "online",
		Activities: []*discordgo.Activity{
			{
				Name: "sounds in " + strconv.Itoa(len(guilds)) + " servers",
				Type: discordgo.ActivityTypeListening,
			},
		},
	}

	if err := pm.session.UpdateStatusComplex(*presence); err != nil {
		log.Printf("Failed to update bot presence: %v", err)
	}

	presenceMutex.Lock()
	currentPresence = "default"
	presenceMutex.Unlock()
}

// UpdatePlaybackPresence updates the bot's presence to show the sound
// currently playing
func (pm *PresenceManager) UpdatePlaybackPresence(label string) {
	presence := &discordgo.UpdateStatusData{
		Status: "online",
		Activities: []*discordgo.Activity{
			{
				Name:  "to",
				Type:  discordgo.ActivityTypeListening,
				State: label,
			},
		},
	}

	if err := pm.session.UpdateStatusComplex(*presence); err != nil {
		log.Printf("Failed to update playback presence: %v", err)
	}

	presenceMutex.Lock()
	currentPresence = "playback"
	presenceMutex.Unlock()
}

// ClearPlaybackPresence clears the playback presence and returns to default
func (pm *PresenceManager) ClearPlaybackPresence() {
	pm.UpdateDefaultPresence()
}

// GetCurrentPresence returns the current presence type
func (pm *PresenceManager) GetCurrentPresence() string {
	presenceMutex.RLock()
	defer presenceMutex.RUnlock()
	return currentPresence
}

// StartPeriodicUpdates starts a goroutine that updates the default presence periodically
func (pm *PresenceManager) StartPeriodicUpdates() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			if pm.GetCurrentPresence() != "playback" {
				pm.UpdateDefaultPresence()
			}
		}
	}()
}
