package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Command names exposed to users.
const (
	cmdProfile    = "profile"
	cmdMembers    = "members"
	cmdVerify     = "verify"
	cmdAddLoadout = "add-loadout"
	cmdLoadouts   = "loadouts"
	cmdAnnounce   = "announce"
)

func commandDefinitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        cmdProfile,
			Description: "Show your clan profile",
		},
		{
			Name:        cmdMembers,
			Description: "List all clan members",
		},
		{
			Name:        cmdVerify,
			Description: "Start the verification process",
		},
		{
			Name:        cmdAddLoadout,
			Description: "Add a new loadout to the catalog",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Weapon name",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "code",
					Description: "Weapon code",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "image",
					Description: "Weapon image URL",
					Required:    false,
				},
			},
		},
		{
			Name:        cmdLoadouts,
			Description: "Browse the loadout catalog",
		},
		{
			Name:        cmdAnnounce,
			Description: "Post an announcement (requires Manage Server)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "title",
					Description: "Announcement title",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "message",
					Description: "Announcement text",
					Required:    true,
				},
			},
		},
	}
}

// registerCommands overwrites the guild's slash commands with the
// current definitions.
func registerCommands(s *discordgo.Session, guildID string) error {
	_, err := s.ApplicationCommandBulkOverwrite(s.State.User.ID, guildID, commandDefinitions())
	if err != nil {
		return fmt.Errorf("failed to register slash commands: %w", err)
	}
	return nil
}
