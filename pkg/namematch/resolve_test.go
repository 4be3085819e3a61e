package namematch

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func testGuild() *discordgo.Guild {
	return &discordgo.Guild{
		ID: "guild",
		Members: []*discordgo.Member{
			{User: &discordgo.User{ID: "u1", Username: "alice"}},
			{User: &discordgo.User{ID: "u2", Username: "bob"}, Nick: "Bobcat"},
			{User: &discordgo.User{ID: "u3", Username: "charlotte"}},
		},
		Channels: []*discordgo.Channel{
			{ID: "t1", Name: "general", Type: discordgo.ChannelTypeGuildText},
			{ID: "v1", Name: "General Voice", Type: discordgo.ChannelTypeGuildVoice},
			{ID: "v2", Name: "music room", Type: discordgo.ChannelTypeGuildVoice},
		},
		VoiceStates: []*discordgo.VoiceState{
			{UserID: "u1", ChannelID: "v2"},
		},
	}
}

func TestMemberByName(t *testing.T) {
	guild := testGuild()

	t.Run("by id", func(t *testing.T) {
		if got := MemberByName(guild, "u2"); got == nil || got.User.ID != "u2" {
			t.Errorf("MemberByName(u2) = %v, want bob", got)
		}
	})

	t.Run("by username", func(t *testing.T) {
		if got := MemberByName(guild, "alice"); got == nil || got.User.ID != "u1" {
			t.Errorf("MemberByName(alice) = %v, want alice", got)
		}
	})

	t.Run("misspelled username", func(t *testing.T) {
		if got := MemberByName(guild, "charlote"); got == nil || got.User.ID != "u3" {
			t.Errorf("MemberByName(charlote) = %v, want charlotte", got)
		}
	})

	t.Run("nickname only after usernames miss", func(t *testing.T) {
		if got := MemberByName(guild, "bobcat"); got == nil || got.User.ID != "u2" {
			t.Errorf("MemberByName(bobcat) = %v, want bob", got)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if got := MemberByName(guild, "zzzzzz"); got != nil {
			t.Errorf("MemberByName(zzzzzz) = %v, want nil", got)
		}
	})

	t.Run("nil guild", func(t *testing.T) {
		if got := MemberByName(nil, "alice"); got != nil {
			t.Errorf("MemberByName(nil guild) = %v, want nil", got)
		}
	})
}

func TestVoiceChannelByName(t *testing.T) {
	guild := testGuild()

	t.Run("ignores text channels", func(t *testing.T) {
		got := VoiceChannelByName(guild, "general")
		if got == nil || got.ID != "v1" {
			t.Errorf("VoiceChannelByName(general) = %v, want the voice channel", got)
		}
	})

	t.Run("partial name", func(t *testing.T) {
		got := VoiceChannelByName(guild, "music")
		if got == nil || got.ID != "v2" {
			t.Errorf("VoiceChannelByName(music) = %v, want music room", got)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if got := VoiceChannelByName(guild, "zzzzzz"); got != nil {
			t.Errorf("VoiceChannelByName(zzzzzz) = %v, want nil", got)
		}
	})
}

func TestVoiceChannelForMessage(t *testing.T) {
	guild := testGuild()

	t.Run("mentioned user in voice wins", func(t *testing.T) {
		m := &discordgo.MessageCreate{Message: &discordgo.Message{
			Author:   &discordgo.User{ID: "u3"},
			Mentions: []*discordgo.User{{ID: "u1"}},
		}}
		if got := VoiceChannelForMessage(guild, m, ""); got != "v2" {
			t.Errorf("channel = %q, want v2 (mentioned user's channel)", got)
		}
	})

	t.Run("member name resolves to their channel", func(t *testing.T) {
		m := &discordgo.MessageCreate{Message: &discordgo.Message{
			Author: &discordgo.User{ID: "u3"},
		}}
		if got := VoiceChannelForMessage(guild, m, "alice"); got != "v2" {
			t.Errorf("channel = %q, want v2 (alice's channel)", got)
		}
	})

	t.Run("channel name", func(t *testing.T) {
		m := &discordgo.MessageCreate{Message: &discordgo.Message{
			Author: &discordgo.User{ID: "u3"},
		}}
		if got := VoiceChannelForMessage(guild, m, "music room"); got != "v2" {
			t.Errorf("channel = %q, want v2", got)
		}
	})

	t.Run("falls back to author's channel", func(t *testing.T) {
		m := &discordgo.MessageCreate{Message: &discordgo.Message{
			Author: &discordgo.User{ID: "u1"},
		}}
		if got := VoiceChannelForMessage(guild, m, ""); got != "v2" {
			t.Errorf("channel = %q, want v2 (author's channel)", got)
		}
	})

	t.Run("nothing to go on", func(t *testing.T) {
		m := &discordgo.MessageCreate{Message: &discordgo.Message{
			Author: &discordgo.User{ID: "u3"},
		}}
		if got := VoiceChannelForMessage(guild, m, ""); got != "" {
			t.Errorf("channel = %q, want empty", got)
		}
	})
}
