package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/wfxclan/clanbot/internal/cache"
	"github.com/wfxclan/clanbot/internal/config"
	"github.com/wfxclan/clanbot/internal/handlers"
	"github.com/wfxclan/clanbot/internal/repositories"
	"github.com/wfxclan/clanbot/internal/services"
	"github.com/wfxclan/clanbot/pkg/logger"
	"gorm.io/gorm"
)

type Bot struct {
	session  *discordgo.Session
	config   *config.Config
	cache    *cache.Store
	handlers *handlers.HandlerManager
}

func InitBot(cfg *config.Config, db *gorm.DB) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages

	// Wire repositories, cache, services and handlers
	memberRepo := repositories.NewMemberRepository(db)
	loadoutRepo := repositories.NewLoadoutRepository(db)
	cacheStore := cache.New(memberRepo, loadoutRepo, cfg.GetCacheRefreshInterval())
	platform := &guildPlatform{session: session, guildID: cfg.GuildID}
	verification := services.NewVerificationService(memberRepo, platform, cacheStore, cfg.UnverifiedRoleID, cfg.VerifiedRoleID)
	catalog := services.NewCatalogService(cacheStore, cfg.LoadoutsPerPage)
	handlerMgr := handlers.NewHandlerManager(cfg, memberRepo, loadoutRepo, cacheStore, verification, catalog)

	bot := &Bot{
		session:  session,
		config:   cfg,
		cache:    cacheStore,
		handlers: handlerMgr,
	}

	// Fill both snapshots before the gateway starts delivering events.
	// Failures are logged by the cache; the empty snapshot keeps serving.
	_ = cacheStore.RefreshAll()

	session.AddHandler(bot.onReady)
	session.AddHandler(bot.onGuildMemberAdd)
	session.AddHandler(bot.onInteractionCreate)

	if err := session.Open(); err != nil {
		return nil, fmt.Errorf("failed to open gateway connection: %w", err)
	}

	cacheStore.StartRefreshing()

	return bot, nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	logger.Info("Connected to Discord", "username", r.User.Username)

	if err := registerCommands(s, b.config.GuildID); err != nil {
		logger.Error("Command registration failed", "error", err)
	} else {
		logger.Info("Slash commands registered")
	}

	if err := b.handlers.SetupVerifyChannel(s); err != nil {
		logger.Error("Verify channel setup failed", "error", err)
	}
}

func (b *Bot) onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	logger.Debug("Member joined", "user_id", m.User.ID)
	b.handlers.HandleMemberJoin(s, m)
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Panic in interaction handler", "error", r)
		}
	}()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handleCommand(s, i)

	case discordgo.InteractionMessageComponent:
		// Decode the opaque customID once; handlers only see typed actions.
		action, ok := handlers.ParseComponentID(i.MessageComponentData().CustomID)
		if !ok {
			logger.Warn("Unknown component interaction", "custom_id", i.MessageComponentData().CustomID)
			return
		}
		switch action.Kind {
		case handlers.ActionVerifyStart:
			b.handlers.StartVerification(s, i)
		case handlers.ActionCatalogPrev, handlers.ActionCatalogNext:
			b.handlers.HandleCatalogNav(s, i, action)
		}

	case discordgo.InteractionModalSubmit:
		if i.ModalSubmitData().CustomID == handlers.VerifyModalID {
			b.handlers.SubmitVerification(s, i)
		}
	}
}

func (b *Bot) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name
	logger.Debug("Command invoked", "command", name)

	switch name {
	case cmdProfile:
		b.handlers.ShowProfile(s, i)
	case cmdMembers:
		b.handlers.ShowMembers(s, i)
	case cmdVerify:
		b.handlers.StartVerification(s, i)
	case cmdAddLoadout:
		b.handlers.AddLoadout(s, i)
	case cmdLoadouts:
		b.handlers.ShowLoadouts(s, i)
	case cmdAnnounce:
		b.handlers.Announce(s, i)
	}
}

// Stop halts the cache refresh loop and closes the gateway connection.
func (b *Bot) Stop() {
	b.cache.Stop()
	if err := b.session.Close(); err != nil {
		logger.Error("Failed to close session", "error", err)
	}
}
