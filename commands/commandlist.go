package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/yanlgn/bot/bot"
)

func init() {
	RegisterCommand("commandlist", CommandList, "cl", "help")
}

// CommandList shows one page per registered module.
func CommandList(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	// Ensure command is used in a guild
	if m.GuildID == "" {
		return // Don't respond to DMs
	}

	names := make([]string, 0, len(RegisteredModules))
	for name := range RegisteredModules {
		names = append(names, name)
	}
	sort.Strings(names)

	var pages []*discordgo.MessageEmbed
	for _, name := range names {
		module := RegisteredModules[name]
		page := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("Commands - %s", module.Name),
			Description: module.Description,
			Color:       0x00ff00,
		}
		for _, cmd := range module.Commands {
			description := cmd.Description
			if description == "" {
				description = "No description available"
			}
			aliasText := ""
			if len(cmd.Aliases) > 0 {
				aliasText = fmt.Sprintf(" (Aliases: %s)", strings.Join(cmd.Aliases, ", "))
			}
			page.Fields = append(page.Fields, &discordgo.MessageEmbedField{
				Name:  fmt.Sprintf("%s%s%s", b.Cfg.Discord.Prefix, cmd.Name, aliasText),
				Value: description,
			})
		}
		if len(page.Fields) > 0 {
			pages = append(pages, page)
		}
	}

	if len(pages) == 0 {
		s.ChannelMessageSend(m.ChannelID, "No commands available.")
		return
	}
	SendPaginated(s, m, pages)
}
