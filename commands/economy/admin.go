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
	commands.RegisterCommand("setsalary", SetSalary)
	commands.RegisterCommand("removesalary", RemoveSalary)
	commands.RegisterCommand("setbalance", SetBalance, "setbal")
	commands.RegisterCommand("addmoney", AddMoney)
	commands.RegisterCommand("takemoney", TakeMoney, "removemoney")
}

// SetSalary assigns a salary and cooldown to a role.
func SetSalary(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return
	}
	if !commands.RequireAdmin(s, m) {
		return
	}

	if len(args) < 4 {
		s.ChannelMessageSend(m.ChannelID, "Usage: .setsalary <role> <amount> <cooldown_seconds>\nExample: .setsalary @Premium 100 86400")
		return
	}

	role, err := utils.FindRole(s, m.GuildID, args[1])
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Role not found. Use a mention, ID, or exact name.")
		return
	}

	amount, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Invalid salary amount.")
		return
	}
	cooldown, err := strconv.ParseInt(args[3], 10, 64)
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Invalid cooldown.")
		return
	}

	ctx, cancel := commands.Context()
	defer cancel()

	if err := b.Store.AssignRoleSalary(ctx, role.ID, amount, cooldown); err != nil {
		if errors.Is(err, store.ErrInvalidAmount) {
			s.ChannelMessageSend(m.ChannelID, "Salary and cooldown must both be positive.")
			return
		}
		log.Error().Err(err).Str("role", role.ID).Msg("assigning role salary")
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}

	s.ChannelMessageSend(m.ChannelID,
		fmt.Sprintf("Salary set: %s now pays %d coins every %d seconds.", role.Name, amount, cooldown))
}

// RemoveSalary removes the salary attached to a role.
func RemoveSalary(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return
	}
	if !commands.RequireAdmin(s, m) {
		return
	}

	if len(args) < 2 {
		s.ChannelMessageSend(m.ChannelID, "Usage: .removesalary <role>")
		return
	}

	role, err := utils.FindRole(s, m.GuildID, args[1])
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Role not found. Use a mention, ID, or exact name.")
		return
	}

	ctx, cancel := commands.Context()
	defer cancel()

	removed, err := b.Store.RemoveRoleSalary(ctx, role.ID)
	if err != nil {
		log.Error().Err(err).Str("role", role.ID).Msg("removing role salary")
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}
	if !removed {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("%s has no salary set.", role.Name))
		return
	}

	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Salary removed from %s.", role.Name))
}

// SetBalance overwrites a user's wallet balance.
func SetBalance(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return
	}
	if !commands.RequireAdmin(s, m) {
		return
	}

	userID, amount, ok := parseUserAmount(s, m, args, "Usage: .setbalance <@user> <amount>")
	if !ok {
		return
	}
	if amount < 0 {
		s.ChannelMessageSend(m.ChannelID, "Balance cannot be negative.")
		return
	}

	ctx, cancel := commands.Context()
	defer cancel()

	if err := b.Store.SetBalance(ctx, userID, amount); err != nil {
		log.Error().Err(err).Str("user", userID).Msg("setting balance")
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}

	s.ChannelMessageSend(m.ChannelID,
		fmt.Sprintf("Set <@%s>'s balance to %d coins.", userID, amount))
}

// AddMoney credits coins to a user's wallet.
func AddMoney(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return
	}
	if !commands.RequireAdmin(s, m) {
		return
	}

	userID, amount, ok := parseUserAmount(s, m, args, "Usage: .addmoney <@user> <amount>")
	if !ok {
		return
	}

	ctx, cancel := commands.Context()
	defer cancel()

	if err := b.Store.AddMoney(ctx, userID, amount); err != nil {
		if errors.Is(err, store.ErrInvalidAmount) {
			s.ChannelMessageSend(m.ChannelID, "Amount must be positive.")
			return
		}
		log.Error().Err(err).Str("user", userID).Msg("adding money")
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}

	s.ChannelMessageSend(m.ChannelID,
		fmt.Sprintf("Added %d coins to <@%s>'s wallet.", amount, userID))
}

// TakeMoney debits coins from a user's wallet.
func TakeMoney(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return
	}
	if !commands.RequireAdmin(s, m) {
		return
	}

	userID, amount, ok := parseUserAmount(s, m, args, "Usage: .takemoney <@user> <amount>")
	if !ok {
		return
	}

	ctx, cancel := commands.Context()
	defer cancel()

	if err := b.Store.RemoveMoney(ctx, userID, amount); err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidAmount):
			s.ChannelMessageSend(m.ChannelID, "Amount must be positive.")
		case errors.Is(err, store.ErrInsufficientFunds):
			s.ChannelMessageSend(m.ChannelID, "That user does not have enough coins.")
		default:
			log.Error().Err(err).Str("user", userID).Msg("taking money")
			s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		}
		return
	}

	s.ChannelMessageSend(m.ChannelID,
		fmt.Sprintf("Took %d coins from <@%s>'s wallet.", amount, userID))
}

// parseUserAmount extracts a mentioned user and an integer amount from
// args[1] and args[2].
func parseUserAmount(s *discordgo.Session, m *discordgo.MessageCreate, args []string, usage string) (string, int64, bool) {
	if len(args) < 3 {
		s.ChannelMessageSend(m.ChannelID, usage)
		return "", 0, false
	}

	userID, err := utils.ExtractUserID(args[1])
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Please mention a valid user.")
		return "", 0, false
	}

	amount, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Invalid amount.")
		return "", 0, false
	}

	return userID, amount, true
}
