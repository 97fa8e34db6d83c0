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
)

func init() {
	commands.RegisterCommand("deposit", Deposit, "dep")
	commands.RegisterCommand("withdraw", Withdraw, "with")
}

func Deposit(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return
	}
	amount, ok := parseAmount(s, m, args, "Usage: .deposit <amount>")
	if !ok {
		return
	}

	ctx, cancel := commands.Context()
	defer cancel()

	if err := b.Store.Deposit(ctx, m.Author.ID, amount); err != nil {
		if errors.Is(err, store.ErrInsufficientFunds) {
			s.ChannelMessageSend(m.ChannelID, "Not enough coins in your wallet.")
			return
		}
		log.Error().Err(err).Str("user", m.Author.ID).Msg("depositing")
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}

	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Deposited %d coins into the bank.", amount))
}

func Withdraw(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return
	}
	amount, ok := parseAmount(s, m, args, "Usage: .withdraw <amount>")
	if !ok {
		return
	}

	ctx, cancel := commands.Context()
	defer cancel()

	if err := b.Store.Withdraw(ctx, m.Author.ID, amount); err != nil {
		if errors.Is(err, store.ErrInsufficientFunds) {
			s.ChannelMessageSend(m.ChannelID, "Not enough coins in the bank.")
			return
		}
		log.Error().Err(err).Str("user", m.Author.ID).Msg("withdrawing")
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}

	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Withdrew %d coins from the bank.", amount))
}

// parseAmount reads a positive integer from args[1], replying with usage on
// bad input.
func parseAmount(s *discordgo.Session, m *discordgo.MessageCreate, args []string, usage string) (int64, bool) {
	if len(args) < 2 {
		s.ChannelMessageSend(m.ChannelID, usage)
		return 0, false
	}
	amount, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || amount <= 0 {
		s.ChannelMessageSend(m.ChannelID, "Amount must be a positive number.")
		return 0, false
	}
	return amount, true
}
