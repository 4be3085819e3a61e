package namematch

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// MemberByName resolves user input to a guild member. The input is tried as
// a raw user id first, then best-matched against usernames, then against
// display names. Usernames are matched in a separate pass before nicknames
// so a nickname cannot shadow another user's account name.
func MemberByName(guild *discordgo.Guild, input string) *discordgo.Member {
	if guild == nil || input == "" {
		return nil
	}
	inputLower := strings.ToLower(input)

	usernames := make([]string, 0, len(guild.Members))
	displayNames := make([]string, 0, len(guild.Members))
	for _, member := range guild.Members {
		if member.User == nil {
			continue
		}
		if member.User.ID == input {
			return member
		}
		usernames = append(usernames, strings.ToLower(member.User.Username))
		displayNames = append(displayNames, strings.ToLower(displayName(member)))
	}

	if match, ok := BestMatch(inputLower, usernames); ok {
		for _, member := range guild.Members {
			if member.User != nil && strings.ToLower(member.User.Username) == match {
				return member
			}
		}
	}

	if match, ok := BestMatch(inputLower, displayNames); ok {
		for _, member := range guild.Members {
			if member.User != nil && strings.ToLower(displayName(member)) == match {
				return member
			}
		}
	}

	return nil
}

// VoiceChannelByName resolves user input to a voice channel in the guild.
func VoiceChannelByName(guild *discordgo.Guild, input string) *discordgo.Channel {
	if guild == nil || input == "" {
		return nil
	}
	inputLower := strings.ToLower(input)

	names := make([]string, 0, len(guild.Channels))
	for _, channel := range guild.Channels {
		if channel.Type == discordgo.ChannelTypeGuildVoice {
			names = append(names, strings.ToLower(channel.Name))
		}
	}

	match, ok := BestMatch(inputLower, names)
	if !ok {
		return nil
	}
	for _, channel := range guild.Channels {
		if channel.Type == discordgo.ChannelTypeGuildVoice && strings.ToLower(channel.Name) == match {
			return channel
		}
	}
	return nil
}

// MemberVoiceChannelID returns the id of the voice channel the given user is
// currently in, or "".
func MemberVoiceChannelID(guild *discordgo.Guild, userID string) string {
	if guild == nil {
		return ""
	}
	for _, vs := range guild.VoiceStates {
		if vs.UserID == userID {
			return vs.ChannelID
		}
	}
	return ""
}

// VoiceChannelForMessage extracts a target voice channel id from a command
// message. Priority: a mentioned user who is in a voice channel, then input
// resolved as a member name whose member is in a voice channel, then input
// resolved as a voice channel name, and finally the author's own voice
// channel.
func VoiceChannelForMessage(guild *discordgo.Guild, m *discordgo.MessageCreate, input string) string {
	if guild == nil || m == nil {
		return ""
	}

	for _, mentioned := range m.Mentions {
		if channelID := MemberVoiceChannelID(guild, mentioned.ID); channelID != "" {
			return channelID
		}
	}

	if input != "" {
		if member := MemberByName(guild, input); member != nil && member.User != nil {
			if channelID := MemberVoiceChannelID(guild, member.User.ID); channelID != "" {
				return channelID
			}
		}
		if channel := VoiceChannelByName(guild, input); channel != nil {
			return channel.ID
		}
	}

	return MemberVoiceChannelID(guild, m.Author.ID)
}

func displayName(member *discordgo.Member) string {
	if member.Nick != "" {
		return member.Nick
	}
	if member.User != nil {
		return member.User.Username
	}
	return ""
}
