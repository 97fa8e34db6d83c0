package commands

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/yanlgn/bot/utils"
)

// RequireAdmin replies to the channel and returns false when the author
// lacks the administrator permission.
func RequireAdmin(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	isAdmin, err := utils.CheckAdminPermission(s, m.GuildID, m.Author.ID)
	if err != nil {
		log.Error().Err(err).Str("user", m.Author.ID).Msg("checking admin permission")
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return false
	}
	if !isAdmin {
		s.ChannelMessageSend(m.ChannelID, "You must be an admin to use this command.")
		return false
	}
	return true
}
