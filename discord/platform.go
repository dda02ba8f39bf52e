package discord

import (
	"github.com/bwmarrin/discordgo"
)

// guildPlatform adapts the discordgo session to the narrow platform
// surface the verification workflow needs.
type guildPlatform struct {
	session *discordgo.Session
	guildID string
}

func (p *guildPlatform) SetNickname(userID, nick string) error {
	return p.session.GuildMemberNickname(p.guildID, userID, nick)
}

func (p *guildPlatform) AddRole(userID, roleID string) error {
	return p.session.GuildMemberRoleAdd(p.guildID, userID, roleID)
}

func (p *guildPlatform) RemoveRole(userID, roleID string) error {
	return p.session.GuildMemberRoleRemove(p.guildID, userID, roleID)
}
