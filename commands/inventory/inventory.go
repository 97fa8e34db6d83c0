package inventory

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/yanlgn/bot/bot"
	"github.com/yanlgn/bot/commands"
	"github.com/yanlgn/bot/store"
	"github.com/yanlgn/bot/utils"
)

const entriesPerPage = 15

func init() {
	commands.RegisterCommand("inventory", Inventory, "inv")
}

// Inventory shows the items a user owns, grouped by shop.
func Inventory(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return
	}

	targetID := m.Author.ID
	if len(args) >= 2 {
		id, err := utils.ExtractUserID(args[1])
		if err != nil {
			s.ChannelMessageSend(m.ChannelID, "Invalid mention. Please use a proper mention (e.g., @username).")
			return
		}
		targetID = id
	}

	ctx, cancel := commands.Context()
	defer cancel()

	entries, err := b.Store.GetInventory(ctx, targetID)
	if err != nil {
		log.Error().Err(err).Str("user", targetID).Msg("fetching inventory")
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}
	if len(entries) == 0 {
		if targetID == m.Author.ID {
			s.ChannelMessageSend(m.ChannelID, "Your inventory is empty.")
		} else {
			s.ChannelMessageSend(m.ChannelID, "That user's inventory is empty.")
		}
		return
	}

	pages := buildInventoryPages(targetID, entries)
	commands.SendPaginated(s, m, pages)
}

// buildInventoryPages renders inventory entries into embeds, one shop
// field per entry group.
func buildInventoryPages(userID string, entries []store.InventoryEntry) []*discordgo.MessageEmbed {
	var pages []*discordgo.MessageEmbed
	for start := 0; start < len(entries); start += entriesPerPage {
		end := start + entriesPerPage
		if end > len(entries) {
			end = len(entries)
		}

		page := &discordgo.MessageEmbed{
			Title:       "Inventory",
			Description: fmt.Sprintf("Items owned by <@%s>", userID),
			Color:       0x9b59b6, // Purple
		}
		// Entries arrive ordered by shop, so one field per shop run.
		var (
			currentShop int64 = -1
			field       *discordgo.MessageEmbedField
		)
		for _, e := range entries[start:end] {
			if e.ShopID != currentShop {
				field = &discordgo.MessageEmbedField{
					Name: fmt.Sprintf("%s (#%d)", e.ShopName, e.ShopID),
				}
				page.Fields = append(page.Fields, field)
				currentShop = e.ShopID
			}
			field.Value += fmt.Sprintf("%s x%d\n", e.ItemName, e.Quantity)
		}
		pages = append(pages, page)
	}
	return pages
}
