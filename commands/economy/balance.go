package economy

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/yanlgn/bot/bot"
	"github.com/yanlgn/bot/commands"
	"github.com/yanlgn/bot/utils"
)

func init() {
	commands.RegisterCommand("balance", Balance, "bal", "$")
}

func Balance(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	// Ensure command is used in a guild
	if m.GuildID == "" {
		return // Don't respond to DMs
	}

	var targetUserID string
	// Check if a mention is provided & validate
	if len(args) >= 2 {
		recipientMention := args[1]
		var err error
		targetUserID, err = utils.ExtractUserID(recipientMention)
		if err != nil {
			s.ChannelMessageSend(m.ChannelID, "Invalid mention. Please use a proper mention (e.g., @username).")
			return
		}
	} else {
		// If no mention is provided, use the author's ID
		targetUserID = m.Author.ID
	}

	ctx, cancel := commands.Context()
	defer cancel()

	wallet, err := b.Store.GetBalance(ctx, targetUserID)
	if err != nil {
		log.Error().Err(err).Str("user", targetUserID).Msg("querying balance")
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}
	bank, err := b.Store.GetDeposit(ctx, targetUserID)
	if err != nil {
		log.Error().Err(err).Str("user", targetUserID).Msg("querying deposit")
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}

	s.ChannelMessageSend(m.ChannelID,
		fmt.Sprintf("<@%s>'s balance: %d coins (bank: %d coins)", targetUserID, wallet, bank))
}
