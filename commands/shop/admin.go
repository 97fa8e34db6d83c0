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
	commands.RegisterCommand("createshop", CreateShop)
	commands.RegisterCommand("deleteshop", DeleteShop)
	commands.RegisterCommand("additem", AddItem)
	commands.RegisterCommand("removeitem", RemoveItem)
	commands.RegisterCommand("reactivateitem", ReactivateItem)
	commands.RegisterCommand("itemslist", ItemsList, "allitems")
}

// CreateShop creates a new shop.
func CreateShop(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return
	}
	if !commands.RequireAdmin(s, m) {
		return
	}

	if len(args) < 2 {
		s.ChannelMessageSend(m.ChannelID, "Usage: .createshop <name> [description]")
		return
	}
	name := args[1]
	description := ""
	if len(args) > 2 {
		description = strings.Join(args[2:], " ")
	}

	ctx, cancel := commands.Context()
	defer cancel()

	id, err := b.Store.CreateShop(ctx, name, description)
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("creating shop")
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}

	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Shop **%s** created with id %d.", name, id))
}

// DeleteShop deletes a shop, its items and every inventory entry pointing
// at them.
func DeleteShop(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return
	}
	if !commands.RequireAdmin(s, m) {
		return
	}

	if len(args) < 2 {
		s.ChannelMessageSend(m.ChannelID, "Usage: .deleteshop <shop_id>")
		return
	}
	shopID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Invalid shop id.")
		return
	}

	ctx, cancel := commands.Context()
	defer cancel()

	if err := b.Store.DeleteShop(ctx, shopID); err != nil {
		if errors.Is(err, store.ErrShopNotFound) {
			s.ChannelMessageSend(m.ChannelID, "That shop does not exist.")
			return
		}
		log.Error().Err(err).Int64("shop", shopID).Msg("deleting shop")
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}

	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Shop #%d deleted along with its items.", shopID))
}

// AddItem adds an item to a shop. Stock defaults to unlimited (-1).
func AddItem(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return
	}
	if !commands.RequireAdmin(s, m) {
		return
	}

	if len(args) < 4 {
		s.ChannelMessageSend(m.ChannelID, "Usage: .additem <shop_id> <name> <price> [stock] [description]\nStock of -1 means unlimited.")
		return
	}

	shopID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Invalid shop id.")
		return
	}
	name := args[2]
	price, err := strconv.ParseInt(args[3], 10, 64)
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Invalid price.")
		return
	}

	stock := int64(-1)
	description := ""
	if len(args) > 4 {
		stock, err = strconv.ParseInt(args[4], 10, 64)
		if err != nil || stock < -1 {
			s.ChannelMessageSend(m.ChannelID, "Invalid stock. Use a count or -1 for unlimited.")
			return
		}
	}
	if len(args) > 5 {
		description = strings.Join(args[5:], " ")
	}

	ctx, cancel := commands.Context()
	defer cancel()

	id, err := b.Store.AddItem(ctx, shopID, name, price, description, stock)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrShopNotFound):
			s.ChannelMessageSend(m.ChannelID, "That shop does not exist.")
		case errors.Is(err, store.ErrDuplicateItemName):
			s.ChannelMessageSend(m.ChannelID, "This shop already has an item with that name.")
		case errors.Is(err, store.ErrInvalidAmount):
			s.ChannelMessageSend(m.ChannelID, "Price must be positive.")
		default:
			log.Error().Err(err).Str("item", name).Msg("adding item")
			s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		}
		return
	}

	s.ChannelMessageSend(m.ChannelID,
		fmt.Sprintf("Item **%s** added to shop #%d with id %d.", name, shopID, id))
}

// RemoveItem deactivates an item. It stops being purchasable but owners
// can still sell it back.
func RemoveItem(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return
	}
	if !commands.RequireAdmin(s, m) {
		return
	}

	if len(args) < 2 {
		s.ChannelMessageSend(m.ChannelID, "Usage: .removeitem <item_id>")
		return
	}
	itemID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Invalid item id.")
		return
	}

	ctx, cancel := commands.Context()
	defer cancel()

	if err := b.Store.DeactivateItem(ctx, itemID); err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			s.ChannelMessageSend(m.ChannelID, "No item with that id exists.")
			return
		}
		log.Error().Err(err).Int64("item", itemID).Msg("deactivating item")
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}

	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Item #%d is no longer for sale.", itemID))
}

// ReactivateItem puts a deactivated item back on sale, optionally with a
// new stock count.
func ReactivateItem(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return
	}
	if !commands.RequireAdmin(s, m) {
		return
	}

	if len(args) < 2 {
		s.ChannelMessageSend(m.ChannelID, "Usage: .reactivateitem <item_id> [stock]")
		return
	}
	itemID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Invalid item id.")
		return
	}

	var stock *int64
	if len(args) > 2 {
		n, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil || n < -1 {
			s.ChannelMessageSend(m.ChannelID, "Invalid stock. Use a count or -1 for unlimited.")
			return
		}
		stock = &n
	}

	ctx, cancel := commands.Context()
	defer cancel()

	if err := b.Store.ReactivateItem(ctx, itemID, stock); err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			s.ChannelMessageSend(m.ChannelID, "No item with that id exists.")
			return
		}
		log.Error().Err(err).Int64("item", itemID).Msg("reactivating item")
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}

	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Item #%d is back on sale.", itemID))
}

// ItemsList shows every item across all shops, inactive ones included.
func ItemsList(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return
	}
	if !commands.RequireAdmin(s, m) {
		return
	}

	ctx, cancel := commands.Context()
	defer cancel()

	items, err := b.Store.ListAllItems(ctx)
	if err != nil {
		log.Error().Err(err).Msg("listing all items")
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}
	if len(items) == 0 {
		s.ChannelMessageSend(m.ChannelID, "No items exist yet.")
		return
	}

	var pages []*discordgo.MessageEmbed
	for start := 0; start < len(items); start += itemsPerPage {
		end := start + itemsPerPage
		if end > len(items) {
			end = len(items)
		}
		page := &discordgo.MessageEmbed{
			Title: "All Items",
			Color: 0x3498db, // Blue
		}
		for _, it := range items[start:end] {
			status := "active"
			if !it.Active {
				status = "inactive"
			}
			page.Fields = append(page.Fields, &discordgo.MessageEmbedField{
				Name: fmt.Sprintf("#%d - %s", it.ID, it.Name),
				Value: fmt.Sprintf("Shop: #%d | Price: %d coins | Stock: %s | %s",
					it.ShopID, it.Price, formatStock(it.Stock), status),
			})
		}
		pages = append(pages, page)
	}

	commands.SendPaginated(s, m, pages)
}
