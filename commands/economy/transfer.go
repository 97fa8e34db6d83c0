package economy

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/yanlgn/bot/bot"
	"github.com/yanlgn/bot/commands"
	"github.com/yanlgn/bot/store"
	"github.com/yanlgn/bot/utils"
)

func init() {
	commands.RegisterCommand("transfer", Transfer, "pay", "give")
}

func Transfer(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	// Ensure command is used in a guild
	if m.GuildID == "" {
		return // Don't respond to DMs
	}

	if len(args) < 3 {
		s.ChannelMessageSend(m.ChannelID, "Usage: .transfer <recipient> <amount>")
		return
	}

	// Extract and validate the recipient mention
	recipientID, err := utils.ExtractUserID(args[1])
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Invalid mention. Please use a proper mention (e.g., @username).")
		return
	}
	if recipientID == m.Author.ID {
		s.ChannelMessageSend(m.ChannelID, "You cannot transfer coins to yourself.")
		return
	}

	// Check if the recipient exists
	exists, err := utils.UserExists(s, recipientID)
	if err != nil {
		log.Error().Err(err).Str("user", recipientID).Msg("checking user existence")
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}
	if !exists {
		s.ChannelMessageSend(m.ChannelID, "User not found. Please check the mention.")
		return
	}

	amount, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil || amount <= 0 {
		s.ChannelMessageSend(m.ChannelID, "Amount must be greater than 0.")
		return
	}

	ctx, cancel := commands.Context()
	defer cancel()

	if err := b.Store.Transfer(ctx, m.Author.ID, recipientID, amount); err != nil {
		if errors.Is(err, store.ErrInsufficientFunds) {
			s.ChannelMessageSend(m.ChannelID, "Not enough coins to transfer.")
			return
		}
		log.Error().Err(err).Str("from", m.Author.ID).Str("to", recipientID).Msg("transferring")
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}

	s.ChannelMessageSend(m.ChannelID,
		fmt.Sprintf("You transferred %d coins to <@%s>.", amount, recipientID))
}
