package inventory

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
	"github.com/yanlgn/bot/utils"
)

func init() {
	commands.RegisterCommand("giveitem", GiveItem)
	commands.RegisterCommand("takeitem", TakeItem)
}

// GiveItem places an item into a user's inventory without payment.
func GiveItem(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return
	}
	if !commands.RequireAdmin(s, m) {
		return
	}

	userID, itemName, qty, ok := parseItemArgs(s, m, args, "Usage: .giveitem @user <item_name> [quantity]")
	if !ok {
		return
	}

	ctx, cancel := commands.Context()
	defer cancel()

	item, err := b.Store.FindItemByName(ctx, itemName)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			s.ChannelMessageSend(m.ChannelID, "No item with that name exists.")
			return
		}
		log.Error().Err(err).Str("item", itemName).Msg("looking up item")
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}

	if err := b.Store.AddUserItem(ctx, userID, item.ShopID, item.ID, qty); err != nil {
		log.Error().Err(err).Str("user", userID).Int64("item", item.ID).Msg("giving item")
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}

	s.ChannelMessageSend(m.ChannelID,
		fmt.Sprintf("Gave %dx %s to <@%s>.", qty, item.Name, userID))
}

// TakeItem removes an item from a user's inventory.
func TakeItem(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return
	}
	if !commands.RequireAdmin(s, m) {
		return
	}

	userID, itemName, qty, ok := parseItemArgs(s, m, args, "Usage: .takeitem @user <item_name> [quantity]")
	if !ok {
		return
	}

	ctx, cancel := commands.Context()
	defer cancel()

	item, err := b.Store.FindItemByName(ctx, itemName)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			s.ChannelMessageSend(m.ChannelID, "No item with that name exists.")
			return
		}
		log.Error().Err(err).Str("item", itemName).Msg("looking up item")
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}

	if err := b.Store.RemoveUserItem(ctx, userID, item.ShopID, item.ID, qty); err != nil {
		if errors.Is(err, store.ErrInsufficientInventory) {
			s.ChannelMessageSend(m.ChannelID, "That user does not own that many of this item.")
			return
		}
		log.Error().Err(err).Str("user", userID).Int64("item", item.ID).Msg("taking item")
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}

	s.ChannelMessageSend(m.ChannelID,
		fmt.Sprintf("Took %dx %s from <@%s>.", qty, item.Name, userID))
}

// parseItemArgs parses "@user <item_name> [quantity]". A trailing integer
// is read as the quantity; the rest is the item name.
func parseItemArgs(s *discordgo.Session, m *discordgo.MessageCreate, args []string, usage string) (string, string, int64, bool) {
	if len(args) < 3 {
		s.ChannelMessageSend(m.ChannelID, usage)
		return "", "", 0, false
	}

	userID, err := utils.ExtractUserID(args[1])
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Invalid mention. Please use a proper mention (e.g., @username).")
		return "", "", 0, false
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
		return "", "", 0, false
	}

	return userID, strings.Join(nameArgs, " "), qty, true
}
