package commands

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// PaginationState holds the state of paginated messages
type PaginationState struct {
	UserID      string
	MessageID   string
	CurrentPage int
	TotalPages  int
	Pages       []*discordgo.MessageEmbed
	GuildID     string
}

// PaginationManager manages pagination states
type PaginationManager struct {
	states map[string]*PaginationState // messageID -> state
	mu     sync.RWMutex
}

func NewPaginationManager() *PaginationManager {
	return &PaginationManager{
		states: make(map[string]*PaginationState),
	}
}

func (pm *PaginationManager) AddState(state *PaginationState) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.states[state.MessageID] = state
}

func (pm *PaginationManager) GetState(messageID string) (*PaginationState, bool) {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	state, exists := pm.states[messageID]
	return state, exists
}

func (pm *PaginationManager) RemoveState(messageID string) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	delete(pm.states, messageID)
}

// Global pagination manager
var paginationManager = NewPaginationManager()

// SendPaginated sends the first page of a multi-page embed and, when there
// is more than one page, registers arrow reactions for navigation. Only the
// requesting user can turn pages.
func SendPaginated(s *discordgo.Session, m *discordgo.MessageCreate, pages []*discordgo.MessageEmbed) {
	if len(pages) == 0 {
		return
	}
	for i, page := range pages {
		page.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Page %d of %d", i+1, len(pages)),
		}
	}

	msg, err := s.ChannelMessageSendEmbed(m.ChannelID, pages[0])
	if err != nil {
		log.Error().Err(err).Msg("sending paginated embed")
		return
	}
	if len(pages) <= 1 {
		return
	}

	if err := s.MessageReactionAdd(msg.ChannelID, msg.ID, "⬅️"); err != nil {
		log.Error().Err(err).Msg("adding left reaction")
	}
	if err := s.MessageReactionAdd(msg.ChannelID, msg.ID, "➡️"); err != nil {
		log.Error().Err(err).Msg("adding right reaction")
	}

	paginationManager.AddState(&PaginationState{
		UserID:      m.Author.ID,
		MessageID:   msg.ID,
		CurrentPage: 0,
		TotalPages:  len(pages),
		Pages:       pages,
		GuildID:     m.GuildID,
	})
}

// HandlePagination handles pagination reactions
func HandlePagination(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	// Ignore bot reactions
	if r.UserID == s.State.User.ID {
		return
	}
	if r.Emoji.Name != "⬅️" && r.Emoji.Name != "➡️" {
		return
	}

	state, exists := paginationManager.GetState(r.MessageID)
	if !exists {
		return
	}

	// Only allow the user who requested the command to paginate
	if r.UserID != state.UserID {
		return
	}

	if r.Emoji.Name == "➡️" {
		state.CurrentPage++
		if state.CurrentPage >= len(state.Pages) {
			state.CurrentPage = 0
		}
	} else {
		state.CurrentPage--
		if state.CurrentPage < 0 {
			state.CurrentPage = len(state.Pages) - 1
		}
	}

	if _, err := s.ChannelMessageEditEmbed(r.ChannelID, r.MessageID, state.Pages[state.CurrentPage]); err != nil {
		log.Error().Err(err).Msg("editing paginated message")
		return
	}

	if err := s.MessageReactionRemove(r.ChannelID, r.MessageID, r.Emoji.Name, r.UserID); err != nil {
		log.Error().Err(err).Msg("removing pagination reaction")
	}
}
