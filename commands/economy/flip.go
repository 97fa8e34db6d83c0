package economy

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/yanlgn/bot/bot"
	"github.com/yanlgn/bot/commands"
	"github.com/yanlgn/bot/store"
)

func init() {
	commands.RegisterCommand("flip", Flip)
}

// Flip gambles a wallet amount on a coin flip, double or nothing.
func Flip(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	// Ensure command is used in a guild
	if m.GuildID == "" {
		return // Don't respond to DMs
	}

	if len(args) < 2 {
		s.ChannelMessageSend(m.ChannelID, "Usage: .flip <amount|all>")
		return
	}

	ctx, cancel := commands.Context()
	defer cancel()

	balance, err := b.Store.GetBalance(ctx, m.Author.ID)
	if err != nil {
		log.Error().Err(err).Str("user", m.Author.ID).Msg("querying balance")
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}

	// Handle "all" case by setting amount to the user's total balance
	var amount int64
	if args[1] == "all" {
		amount = balance
	} else {
		amount, err = strconv.ParseInt(args[1], 10, 64)
		if err != nil || amount <= 0 {
			s.ChannelMessageSend(m.ChannelID, "Invalid amount. Usage: .flip <amount|all>")
			return
		}
	}
	if amount == 0 {
		s.ChannelMessageSend(m.ChannelID, "You have 0 coins.")
		return
	}

	if rand.Intn(2) == 0 {
		err = b.Store.AddMoney(ctx, m.Author.ID, amount)
		if err != nil {
			log.Error().Err(err).Str("user", m.Author.ID).Msg("crediting flip win")
			s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
			return
		}
		s.ChannelMessageSend(m.ChannelID,
			fmt.Sprintf("You won %d coins! Your new balance is %d.", amount, balance+amount))
	} else {
		err = b.Store.RemoveMoney(ctx, m.Author.ID, amount)
		if err != nil {
			if errors.Is(err, store.ErrInsufficientFunds) {
				s.ChannelMessageSend(m.ChannelID, "Not enough coins.")
				return
			}
			log.Error().Err(err).Str("user", m.Author.ID).Msg("debiting flip loss")
			s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
			return
		}
		s.ChannelMessageSend(m.ChannelID,
			fmt.Sprintf("You lost %d coins! Your new balance is %d.", amount, balance-amount))
	}
}
