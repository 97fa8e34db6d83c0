package economy

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/yanlgn/bot/bot"
	"github.com/yanlgn/bot/commands"
)

func init() {
	commands.RegisterCommand("salary", Salary, "collect")
	commands.RegisterCommand("salaries", Salaries)
}

// Salary collects the salaries of every held role whose cooldown has
// elapsed.
func Salary(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return
	}

	member, err := s.GuildMember(m.GuildID, m.Author.ID)
	if err != nil {
		log.Error().Err(err).Str("user", m.Author.ID).Msg("fetching member roles")
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}

	ctx, cancel := commands.Context()
	defer cancel()

	result, err := b.Store.Collect(ctx, m.Author.ID, member.Roles)
	if err != nil {
		log.Error().Err(err).Str("user", m.Author.ID).Msg("collecting salary")
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}

	switch {
	case result.Collected > 0:
		s.ChannelMessageSend(m.ChannelID,
			fmt.Sprintf("You collected %d coins in salaries!", result.Collected))
	case result.Wait > 0:
		minutes := int(result.Wait.Minutes())
		seconds := int(result.Wait.Seconds()) % 60
		s.ChannelMessageSend(m.ChannelID,
			fmt.Sprintf("Your salary is on cooldown. Try again in %d minutes %d seconds.", minutes, seconds))
	default:
		s.ChannelMessageSend(m.ChannelID, "None of your roles has a salary.")
	}
}

// Salaries shows every role salary configured on the server.
func Salaries(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return
	}

	ctx, cancel := commands.Context()
	defer cancel()

	salaries, err := b.Store.ListRoleSalaries(ctx)
	if err != nil {
		log.Error().Err(err).Msg("listing role salaries")
		s.ChannelMessageSend(m.ChannelID, "An error occurred while retrieving role salaries.")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Role Salaries",
		Description: "Roles that pay a salary on this server.",
		Color:       0x00ff00, // Green
	}
	for _, rs := range salaries {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("<@&%s>", rs.RoleID),
			Value:  fmt.Sprintf("Salary: %d coins\nCooldown: %d seconds", rs.Salary, rs.Cooldown),
			Inline: true,
		})
	}
	if len(embed.Fields) == 0 {
		embed.Description = "No role salaries have been set."
	}

	s.ChannelMessageSendEmbed(m.ChannelID, embed)
}
