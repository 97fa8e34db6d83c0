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

// Number of items shown per embed page when browsing a shop.
const itemsPerPage = 10

func init() {
	commands.RegisterCommand("shops", Shops, "shoplist")
	commands.RegisterCommand("shop", Shop)
	commands.RegisterCommand("iteminfo", ItemInfo, "item")
}

// Shops lists every shop with its id and description.
func Shops(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return
	}

	ctx, cancel := commands.Context()
	defer cancel()

	shops, err := b.Store.ListShops(ctx)
	if err != nil {
		log.Error().Err(err).Msg("listing shops")
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}
	if len(shops) == 0 {
		s.ChannelMessageSend(m.ChannelID, "No shops exist yet.")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: "Shops",
		Color: 0x3498db, // Blue
	}
	for _, sh := range shops {
		desc := sh.Description
		if desc == "" {
			desc = "No description."
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("#%d - %s", sh.ID, sh.Name),
			Value: desc,
		})
	}
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: "Use .shop <shop_id> to browse a shop",
	}

	s.ChannelMessageSendEmbed(m.ChannelID, embed)
}

// Shop shows the active items of one shop, paginated.
func Shop(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return
	}

	if len(args) < 2 {
		s.ChannelMessageSend(m.ChannelID, "Usage: .shop <shop_id>")
		return
	}
	shopID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Invalid shop id.")
		return
	}

	ctx, cancel := commands.Context()
	defer cancel()

	items, err := b.Store.ListActiveItems(ctx, shopID)
	if err != nil {
		if errors.Is(err, store.ErrShopNotFound) {
			s.ChannelMessageSend(m.ChannelID, "That shop does not exist.")
			return
		}
		log.Error().Err(err).Int64("shop", shopID).Msg("listing shop items")
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}
	if len(items) == 0 {
		s.ChannelMessageSend(m.ChannelID, "This shop has nothing for sale right now.")
		return
	}

	var pages []*discordgo.MessageEmbed
	for start := 0; start < len(items); start += itemsPerPage {
		end := start + itemsPerPage
		if end > len(items) {
			end = len(items)
		}
		page := &discordgo.MessageEmbed{
			Title: fmt.Sprintf("Shop #%d", shopID),
			Color: 0x3498db, // Blue
		}
		for _, it := range items[start:end] {
			page.Fields = append(page.Fields, &discordgo.MessageEmbedField{
				Name:  it.Name,
				Value: fmt.Sprintf("Price: %d coins | Stock: %s", it.Price, formatStock(it.Stock)),
			})
		}
		pages = append(pages, page)
	}

	commands.SendPaginated(s, m, pages)
}

// ItemInfo shows the full details of one item, resolved by name.
func ItemInfo(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return
	}

	if len(args) < 2 {
		s.ChannelMessageSend(m.ChannelID, "Usage: .iteminfo <item_name>")
		return
	}
	name := strings.Join(args[1:], " ")

	ctx, cancel := commands.Context()
	defer cancel()

	item, err := b.Store.FindItemByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			s.ChannelMessageSend(m.ChannelID, "No item with that name exists.")
			return
		}
		log.Error().Err(err).Str("item", name).Msg("looking up item")
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}

	desc := item.Description
	if desc == "" {
		desc = "No description."
	}
	status := "Available"
	if !item.Active {
		status = "Unavailable"
	}

	embed := &discordgo.MessageEmbed{
		Title:       item.Name,
		Description: desc,
		Color:       0x3498db, // Blue
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Price", Value: fmt.Sprintf("%d coins", item.Price), Inline: true},
			{Name: "Stock", Value: formatStock(item.Stock), Inline: true},
			{Name: "Shop", Value: fmt.Sprintf("#%d", item.ShopID), Inline: true},
			{Name: "Status", Value: status, Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Item ID: %d", item.ID),
		},
	}

	s.ChannelMessageSendEmbed(m.ChannelID, embed)
}

// formatStock renders a stock count, with -1 standing for unlimited supply.
func formatStock(stock int64) string {
	if stock == -1 {
		return "∞"
	}
	return strconv.FormatInt(stock, 10)
}
