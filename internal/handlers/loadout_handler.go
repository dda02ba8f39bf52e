package handlers

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/wfxclan/clanbot/internal/models"
	"github.com/wfxclan/clanbot/internal/security"
	"github.com/wfxclan/clanbot/internal/services"
	apperrors "github.com/wfxclan/clanbot/pkg/errors"
	"github.com/wfxclan/clanbot/pkg/logger"
)

// AddLoadout handles /add-loadout: insert, resync the loadout cache,
// then confirm. The cache refresh happens before the confirmation so the
// next /loadouts render already sees the new entry.
func (h *HandlerManager) AddLoadout(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Member == nil {
		return
	}

	var name, code, image string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "name":
			name = security.SanitizeString(opt.StringValue())
		case "code":
			code = security.SanitizeString(opt.StringValue())
		case "image":
			image = security.SanitizeString(opt.StringValue())
		}
	}

	if name == "" || code == "" {
		h.respondEphemeral(s, i, "Weapon name and code are required.")
		return
	}
	if image != "" && !security.ValidateImageURL(image) {
		h.respondEphemeral(s, i, "The image must be an http(s) URL.")
		return
	}

	loadout := &models.Loadout{
		WeaponName:  name,
		WeaponCode:  code,
		WeaponImage: image,
		AddedBy:     i.Member.User.String(),
	}

	if err := h.LoadoutRepo.CreateLoadout(loadout); err != nil {
		logger.Error("Failed to add loadout", "user_id", i.Member.User.ID, "error", err)
		h.respondEphemeral(s, i, MsgGenericError)
		return
	}

	if err := h.Cache.RefreshLoadouts(); err != nil {
		logger.Warn("Loadout cache refresh after insert failed", "error", err)
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Loadout Added",
		Description: fmt.Sprintf("The loadout **%s** was added successfully!", name),
		Color:       ColorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Code",
				Value: fmt.Sprintf("```%s```", code),
			},
		},
	}
	if image != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: image}
	}

	h.respondEmbed(s, i, embed, nil)
}

// ShowLoadouts handles /loadouts: render page zero as a fresh message.
func (h *HandlerManager) ShowLoadouts(s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.renderCatalog(s, i, 0, false)
}

// HandleCatalogNav handles a previous/next button press. The control
// carries the page it was rendered on; the target page is derived here
// and the existing message is edited in place.
func (h *HandlerManager) HandleCatalogNav(s *discordgo.Session, i *discordgo.InteractionCreate, action ComponentAction) {
	target := action.Page
	switch action.Kind {
	case ActionCatalogPrev:
		target--
	case ActionCatalogNext:
		target++
	default:
		return
	}

	h.renderCatalog(s, i, target, true)
}

func (h *HandlerManager) renderCatalog(s *discordgo.Session, i *discordgo.InteractionCreate, pageIndex int, edit bool) {
	page, err := h.Catalog.Page(pageIndex)
	if err != nil {
		if apperrors.Code(err) == apperrors.ErrCodeNotFound {
			h.respondEphemeral(s, i, MsgNoLoadouts)
			return
		}
		logger.Error("Failed to render loadout catalog", "page", pageIndex, "error", err)
		h.respondEphemeral(s, i, MsgGenericError)
		return
	}

	embed, components := buildCatalogView(page)
	if edit {
		h.editEmbed(s, i, embed, components)
	} else {
		h.respondEmbed(s, i, embed, components)
	}
}

func buildCatalogView(page *services.CatalogPage) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := &discordgo.MessageEmbed{
		Title:       "📜 Loadout Catalog",
		Description: fmt.Sprintf("Page %d of %d", page.Index+1, page.TotalPages),
		Color:       ColorClan,
	}

	for _, l := range page.Entries {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  l.WeaponName,
			Value: fmt.Sprintf("Code: `%s`\nAdded by: %s", l.WeaponCode, l.AddedBy),
		})
	}

	if page.ImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: page.ImageURL}
	}

	var buttons []discordgo.MessageComponent
	if page.HasPrev {
		buttons = append(buttons, discordgo.Button{
			Label:    "⬅️ Previous",
			Style:    discordgo.PrimaryButton,
			CustomID: catalogPrevID(page.Index),
		})
	}
	if page.HasNext {
		buttons = append(buttons, discordgo.Button{
			Label:    "Next ➡️",
			Style:    discordgo.PrimaryButton,
			CustomID: catalogNextID(page.Index),
		})
	}

	var components []discordgo.MessageComponent
	if len(buttons) > 0 {
		components = []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: buttons},
		}
	}

	return embed, components
}
