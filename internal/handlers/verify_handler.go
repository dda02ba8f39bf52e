package handlers

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/wfxclan/clanbot/internal/models"
	apperrors "github.com/wfxclan/clanbot/pkg/errors"
	"github.com/wfxclan/clanbot/pkg/logger"
)

// SetupVerifyChannel purges the verification channel and posts the
// persistent verification prompt with its button.
func (h *HandlerManager) SetupVerifyChannel(s *discordgo.Session) error {
	channelID := h.Config.VerifyChannelID

	messages, err := s.ChannelMessages(channelID, 100, "", "", "")
	if err != nil {
		return fmt.Errorf("failed to fetch verify channel messages: %w", err)
	}
	if len(messages) > 0 {
		ids := make([]string, 0, len(messages))
		for _, m := range messages {
			ids = append(ids, m.ID)
		}
		if err := s.ChannelMessagesBulkDelete(channelID, ids); err != nil {
			logger.Warn("Failed to purge verify channel", "error", err)
		}
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Member Verification",
		Description: "To access the server you need to verify yourself.\n\nClick the button below and enter your in-game nickname in the **WFxYourNick** format.",
		Color:       ColorClan,
	}

	_, err = s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Verify",
						Style:    discordgo.PrimaryButton,
						CustomID: VerifyButtonID,
					},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to post verification prompt: %w", err)
	}

	return nil
}

// StartVerification answers a /verify command or a verify-button click.
// Already-verified members get a short-circuit notice; everyone else gets
// the nickname modal. Nothing is persisted until the modal is submitted:
// an abandoned modal leaves the member unverified.
func (h *HandlerManager) StartVerification(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Member == nil {
		return
	}

	if h.Verification.IsVerified(i.Member.Roles) {
		h.respondEphemeral(s, i, MsgAlreadyVerified)
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: VerifyModalID,
			Title:    "Nickname Verification",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:  nicknameInputID,
							Label:     "Enter your nickname (WFxYourNick)",
							Style:     discordgo.TextInputShort,
							MinLength: models.GameNickMinLen,
							MaxLength: models.GameNickMaxLen,
							Required:  true,
						},
					},
				},
			},
		},
	})
	if err != nil {
		logger.Error("Failed to open verification modal", "user_id", i.Member.User.ID, "error", err)
	}
}

// SubmitVerification handles the verification modal submission.
func (h *HandlerManager) SubmitVerification(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Member == nil {
		return
	}
	userID := i.Member.User.ID

	nickname := modalInputValue(i.ModalSubmitData(), nicknameInputID)

	applied, err := h.Verification.Submit(userID, nickname)
	if err != nil {
		if apperrors.Code(err) == apperrors.ErrCodeValidation {
			h.respondEphemeral(s, i, MsgInvalidNickname)
			return
		}
		logger.Error("Verification failed", "user_id", userID, "error", err)
		h.respondEphemeral(s, i, MsgVerifyFailed)
		return
	}

	h.respondEphemeral(s, i, fmt.Sprintf("Verification complete! Your nickname is now %s.", applied))

	// Fire-and-forget: a closed-DM failure must not fail the verification.
	h.sendWelcomeDM(s, userID)
}

func modalInputValue(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, row := range data.Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, c := range actionsRow.Components {
			if input, ok := c.(*discordgo.TextInput); ok && input.CustomID == customID {
				return input.Value
			}
		}
	}
	return ""
}
