package handlers

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	apperrors "github.com/wfxclan/clanbot/pkg/errors"
	"github.com/wfxclan/clanbot/pkg/logger"
)

const joinDateLayout = "02 Jan 2006"

// ShowProfile renders the caller's member row.
func (h *HandlerManager) ShowProfile(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Member == nil {
		return
	}
	user := i.Member.User

	member, err := h.MemberRepo.GetMemberByDiscordID(user.ID)
	if err != nil {
		if apperrors.Code(err) == apperrors.ErrCodeNotFound {
			h.respondEphemeral(s, i, MsgNotRegistered)
			return
		}
		logger.Error("Failed to load profile", "user_id", user.ID, "error", err)
		h.respondEphemeral(s, i, MsgGenericError)
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Profile of %s", member.GameNick),
		Color: ColorClan,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: user.AvatarURL("128"),
		},
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Member since",
				Value: member.JoinDate.Format(joinDateLayout),
			},
		},
	}

	h.respondEmbed(s, i, embed, nil)
}

// ShowMembers lists the cached member directory.
func (h *HandlerManager) ShowMembers(s *discordgo.Session, i *discordgo.InteractionCreate) {
	members := h.Cache.Members()

	embed := &discordgo.MessageEmbed{
		Title: "Clan Members",
		Color: ColorClan,
	}

	if len(members) == 0 {
		embed.Description = MsgNoMembers
	} else {
		for _, m := range members {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:   m.GameNick,
				Value:  fmt.Sprintf("Member since: %s", m.JoinDate.Format(joinDateLayout)),
				Inline: true,
			})
		}
	}

	h.respondEmbed(s, i, embed, nil)
}

// HandleMemberJoin assigns the unverified role to a newcomer and posts
// the welcome message. A role failure is logged and does not suppress
// the welcome.
func (h *HandlerManager) HandleMemberJoin(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	if err := s.GuildMemberRoleAdd(h.Config.GuildID, m.User.ID, h.Config.UnverifiedRoleID); err != nil {
		logger.Error("Failed to assign unverified role", "user_id", m.User.ID, "error", err)
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Welcome to the server, %s!", m.User.Username),
		Description: "Please head to the verification channel to unlock the rest of the server.",
		Color:       ColorWelcome,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: m.User.AvatarURL("128"),
		},
		Timestamp: m.JoinedAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	if _, err := s.ChannelMessageSendEmbed(h.Config.WelcomeChannelID, embed); err != nil {
		logger.Error("Failed to send welcome message", "user_id", m.User.ID, "error", err)
	}
}

// sendWelcomeDM greets a freshly verified member in private. Members can
// disallow DMs; that only gets logged.
func (h *HandlerManager) sendWelcomeDM(s *discordgo.Session, userID string) {
	channel, err := s.UserChannelCreate(userID)
	if err != nil {
		logger.Warn("Could not open welcome DM channel", "user_id", userID, "error", err)
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: "🎉 Welcome to the clan! 🎉",
		Description: "Now that you are verified, here is what you can do:\n\n" +
			"- See your profile with `/profile`\n" +
			"- List clan members with `/members`\n" +
			"- Add loadouts with `/add-loadout`\n" +
			"- Browse loadouts with `/loadouts`\n\n" +
			"Have fun and good hunting!",
		Color: ColorWelcome,
	}

	if _, err := s.ChannelMessageSendEmbed(channel.ID, embed); err != nil {
		logger.Warn("Could not deliver welcome DM", "user_id", userID, "error", err)
	}
}
