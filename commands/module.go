package commands

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/yanlgn/bot/bot"
)

// CommandFunc defines the signature for command handlers
type CommandFunc func(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string)

// CommandInfo holds detailed information about a command
type CommandInfo struct {
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases"`
	Description string   `json:"description"`
	Usage       string   `json:"usage"`
	Category    string   `json:"category"`
}

// ModuleInfo represents a complete module with its commands and metadata
type ModuleInfo struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Version     string        `json:"version"`
	Author      string        `json:"author"`
	Category    string        `json:"category"`
	Commands    []CommandInfo `json:"commands"`
}

// Global registries
var (
	RegisteredModules = make(map[string]*ModuleInfo)
	CommandDetails    = make(map[string]CommandInfo) // Auto-compiled from modules
	CommandMap        = make(map[string]CommandFunc)
	CommandAliases    = make(map[string]string)
)

// RegisterCommand registers individual commands (used by modules)
func RegisterCommand(name string, handler CommandFunc, aliases ...string) {
	CommandMap[name] = handler
	for _, alias := range aliases {
		CommandAliases[alias] = name
	}
}

// RegisterModule registers a complete module and auto-compiles command info
func RegisterModule(module *ModuleInfo) {
	RegisteredModules[module.Name] = module
	for _, cmd := range module.Commands {
		CommandDetails[cmd.Name] = cmd
	}
}

// Resolve maps a command name or alias to its handler.
func Resolve(name string) (CommandFunc, bool) {
	if canonical, ok := CommandAliases[name]; ok {
		name = canonical
	}
	handler, ok := CommandMap[name]
	return handler, ok
}

// Context returns the bounded context handlers use for store calls.
func Context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

// GetCommandsByModule returns all commands in a specific module
func GetCommandsByModule(moduleName string) []CommandInfo {
	if module, exists := RegisteredModules[moduleName]; exists {
		return module.Commands
	}
	return []CommandInfo{}
}
