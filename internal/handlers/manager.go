package handlers

import (
	"github.com/bwmarrin/discordgo"
	"github.com/wfxclan/clanbot/internal/cache"
	"github.com/wfxclan/clanbot/internal/config"
	"github.com/wfxclan/clanbot/internal/repositories"
	"github.com/wfxclan/clanbot/internal/services"
	"github.com/wfxclan/clanbot/pkg/logger"
)

type HandlerManager struct {
	Config       *config.Config
	MemberRepo   *repositories.MemberRepository
	LoadoutRepo  *repositories.LoadoutRepository
	Cache        *cache.Store
	Verification *services.VerificationService
	Catalog      *services.CatalogService
}

func NewHandlerManager(
	cfg *config.Config,
	memberRepo *repositories.MemberRepository,
	loadoutRepo *repositories.LoadoutRepository,
	cacheStore *cache.Store,
	verification *services.VerificationService,
	catalog *services.CatalogService,
) *HandlerManager {
	return &HandlerManager{
		Config:       cfg,
		MemberRepo:   memberRepo,
		LoadoutRepo:  loadoutRepo,
		Cache:        cacheStore,
		Verification: verification,
		Catalog:      catalog,
	}
}

func (h *HandlerManager) respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		logger.Error("Failed to send interaction response", "error", err)
	}
}

func (h *HandlerManager) respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
	if err != nil {
		logger.Error("Failed to send interaction response", "error", err)
	}
}

func (h *HandlerManager) editEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
	if err != nil {
		logger.Error("Failed to edit interaction message", "error", err)
	}
}
