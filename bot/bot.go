package bot

import (
	"github.com/bwmarrin/discordgo"

	"github.com/yanlgn/bot/store"
)

// Bot ties the discord session to the economy store. Command handlers
// receive it as their first argument.
type Bot struct {
	Store  *store.Store
	Client *discordgo.Session
	Cfg    *Config
}

func NewBot(cfg *Config, st *store.Store) (*Bot, error) {
	client, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return nil, err
	}
	client.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsDirectMessages

	return &Bot{Store: st, Client: client, Cfg: cfg}, nil
}
