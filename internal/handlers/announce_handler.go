package handlers

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/wfxclan/clanbot/internal/security"
	"github.com/wfxclan/clanbot/pkg/logger"
)

// Announce handles /announce: post a formatted announcement to the
// announcements channel. Restricted to members who can manage the guild.
func (h *HandlerManager) Announce(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Member == nil {
		return
	}

	if i.Member.Permissions&discordgo.PermissionManageServer == 0 {
		h.respondEphemeral(s, i, MsgAnnounceDenied)
		return
	}

	var title, text string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "title":
			title = security.SanitizeString(opt.StringValue())
		case "message":
			text = security.SanitizeString(opt.StringValue())
		}
	}

	if title == "" || text == "" {
		h.respondEphemeral(s, i, "Title and message are required.")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: text,
		Color:       ColorAnnouncement,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Announcement by %s", i.Member.User.String()),
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if _, err := s.ChannelMessageSendEmbed(h.Config.AnnouncementsChannelID, embed); err != nil {
		logger.Error("Failed to post announcement", "user_id", i.Member.User.ID, "error", err)
		h.respondEphemeral(s, i, MsgGenericError)
		return
	}

	h.respondEphemeral(s, i, "Announcement posted.")
}
