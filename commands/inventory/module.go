package inventory

import (
	"github.com/yanlgn/bot/commands"
)

func init() {
	module := &commands.ModuleInfo{
		Name:        "Inventory",
		Description: "Items owned by users",
		Version:     "1.0.0",
		Author:      "Bot Team",
		Category:    "Inventory",
		Commands: []commands.CommandInfo{
			{
				Name:        "inventory",
				Aliases:     []string{"inv"},
				Description: "Show your inventory, or another user's",
				Usage:       ".inventory [@user]",
				Category:    "Inventory",
			},
			{
				Name:        "giveitem",
				Aliases:     []string{},
				Description: "Give an item to a user (admin)",
				Usage:       ".giveitem @user <item_name> [quantity]",
				Category:    "Inventory",
			},
			{
				Name:        "takeitem",
				Aliases:     []string{},
				Description: "Take an item from a user (admin)",
				Usage:       ".takeitem @user <item_name> [quantity]",
				Category:    "Inventory",
			},
		},
	}

	commands.RegisterModule(module)
}
