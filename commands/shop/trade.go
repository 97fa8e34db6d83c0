package shop

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/yanlgn/bot/bot"
	"github.com/yanlgn/bot/commands"
	"github.com/yanlgn/bot/store"
)

func init() {
	commands.RegisterCommand("buy", Buy)
	commands.RegisterCommand("sell", Sell)
}

// Buy purchases an item from a shop. The wallet debit, inventory credit
// and stock decrement happen atomically in the store.
func Buy(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return
	}

	shopID, itemName, qty, ok := parseTradeArgs(s, m, args, "Usage: .buy <shop_id> <item_name> [quantity]")
	if !ok {
		return
	}

	ctx, cancel := commands.Context()
	defer cancel()

	receipt, err := b.Store.Purchase(ctx, m.Author.ID, shopID, itemName, qty)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrItemNotFound):
			s.ChannelMessageSend(m.ChannelID, "That shop does not sell this item.")
		case errors.Is(err, store.ErrItemInactive):
			s.ChannelMessageSend(m.ChannelID, "That item is not available right now.")
		case errors.Is(err, store.ErrInsufficientFunds):
			s.ChannelMessageSend(m.ChannelID, "You don't have enough coins for that.")
		case errors.Is(err, store.ErrInsufficientStock):
			s.ChannelMessageSend(m.ChannelID, "The shop doesn't have enough stock.")
		default:
			log.Error().Err(err).Str("user", m.Author.ID).Str("item", itemName).Msg("purchase failed")
			s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		}
		return
	}

	s.ChannelMessageSend(m.ChannelID,
		fmt.Sprintf("You bought %dx %s for %d coins.", receipt.Quantity, receipt.Item.Name, receipt.Total))
}

// Sell sells an item back to its shop for 80% of its price per unit.
func Sell(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return
	}

	shopID, itemName, qty, ok := parseTradeArgs(s, m, args, "Usage: .sell <shop_id> <item_name> [quantity]")
	if !ok {
		return
	}

	ctx, cancel := commands.Context()
	defer cancel()

	receipt, err := b.Store.Sell(ctx, m.Author.ID, shopID, itemName, qty)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrItemNotFound):
			s.ChannelMessageSend(m.ChannelID, "That shop does not sell this item.")
		case errors.Is(err, store.ErrInsufficientInventory):
			s.ChannelMessageSend(m.ChannelID, "You don't own that many of this item.")
		default:
			log.Error().Err(err).Str("user", m.Author.ID).Str("item", itemName).Msg("sale failed")
			s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		}
		return
	}

	s.ChannelMessageSend(m.ChannelID,
		fmt.Sprintf("You sold %dx %s for %d coins.", receipt.Quantity, receipt.Item.Name, receipt.Total))
}

// parseTradeArgs parses ".buy/.sell <shop_id> <item_name> [quantity]". A
// trailing integer is read as the quantity; everything between is the item
// name, so multi-word names work without quoting.
func parseTradeArgs(s *discordgo.Session, m *discordgo.MessageCreate, args []string, usage string) (int64, string, int64, bool) {
	if len(args) < 3 {
		s.ChannelMessageSend(m.ChannelID, usage)
		return 0, "", 0, false
	}

	shopID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Invalid shop id.")
		return 0, "", 0, false
	}

	nameArgs := args[2:]
	qty := int64(1)
	if len(nameArgs) > 1 {
		if n, err := strconv.ParseInt(nameArgs[len(nameArgs)-1], 10, 64); err == nil {
			qty = n
			nameArgs = nameArgs[:len(nameArgs)-1]
		}
	}
	if qty <= 0 {
		s.ChannelMessageSend(m.ChannelID, "Quantity must be positive.")
		return 0, "", 0, false
	}

	return shopID, strings.Join(nameArgs, " "), qty, true
}
