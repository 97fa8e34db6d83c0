package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yanlgn/bot/bot"
	"github.com/yanlgn/bot/commands"
	"github.com/yanlgn/bot/store"
	"github.com/yanlgn/bot/utils"

	// Command modules register themselves at init time.
	_ "github.com/yanlgn/bot/commands/economy"
	_ "github.com/yanlgn/bot/commands/inventory"
	_ "github.com/yanlgn/bot/commands/shop"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := bot.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}

	st, err := store.Open(cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("opening store")
	}
	defer st.Close()

	b, err := bot.NewBot(cfg, st)
	if err != nil {
		log.Fatal().Err(err).Msg("creating bot")
	}

	b.Client.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		handleMessage(b, s, m)
	})
	b.Client.AddHandler(func(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
		commands.HandlePagination(s, r)
	})

	if err := b.Client.Open(); err != nil {
		log.Fatal().Err(err).Msg("opening gateway connection")
	}
	defer b.Client.Close()

	log.Info().Str("prefix", cfg.Discord.Prefix).Msg("bot is running, press Ctrl+C to exit")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
}

// 15 commands per user per command each minute
var limiter = utils.NewRateLimiter(15, time.Minute)

// handleMessage dispatches dot commands to their registered handlers.
func handleMessage(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID {
		return
	}
	if !strings.HasPrefix(m.Content, b.Cfg.Discord.Prefix) {
		return
	}

	args := strings.Fields(m.Content)
	if len(args) == 0 {
		return
	}
	cmd := strings.ToLower(strings.TrimPrefix(args[0], b.Cfg.Discord.Prefix))

	handler, ok := commands.Resolve(cmd)
	if !ok {
		return
	}

	if !limiter.Allow(m.Author.ID, cmd) {
		wait := int(limiter.RetryAfter(m.Author.ID, cmd).Seconds())
		s.ChannelMessageSend(m.ChannelID,
			fmt.Sprintf("You're doing that too often. Try again in %d seconds.", wait))
		return
	}

	handler(b, s, m, args)
}
