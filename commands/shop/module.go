package shop

import (
	"github.com/yanlgn/bot/commands"
)

func init() {
	module := &commands.ModuleInfo{
		Name:        "Shop",
		Description: "Shops with buyable and sellable items",
		Version:     "1.0.0",
		Author:      "Bot Team",
		Category:    "Shop",
		Commands: []commands.CommandInfo{
			{
				Name:        "shops",
				Aliases:     []string{"shoplist"},
				Description: "List all shops",
				Usage:       ".shops",
				Category:    "Shop",
			},
			{
				Name:        "shop",
				Aliases:     []string{},
				Description: "Show the items for sale in a shop",
				Usage:       ".shop <shop_id>",
				Category:    "Shop",
			},
			{
				Name:        "iteminfo",
				Aliases:     []string{"item"},
				Description: "Show the details of an item",
				Usage:       ".iteminfo <item_name>",
				Category:    "Shop",
			},
			{
				Name:        "buy",
				Aliases:     []string{},
				Description: "Buy an item from a shop",
				Usage:       ".buy <shop_id> <item_name> [quantity]",
				Category:    "Shop",
			},
			{
				Name:        "sell",
				Aliases:     []string{},
				Description: "Sell an item back to its shop at 80% of its price",
				Usage:       ".sell <shop_id> <item_name> [quantity]",
				Category:    "Shop",
			},
			{
				Name:        "createshop",
				Aliases:     []string{},
				Description: "Create a shop (admin)",
				Usage:       ".createshop <name> [description]",
				Category:    "Shop",
			},
			{
				Name:        "deleteshop",
				Aliases:     []string{},
				Description: "Delete a shop and all its items (admin)",
				Usage:       ".deleteshop <shop_id>",
				Category:    "Shop",
			},
			{
				Name:        "additem",
				Aliases:     []string{},
				Description: "Add an item to a shop (admin)",
				Usage:       ".additem <shop_id> <name> <price> [stock] [description]",
				Category:    "Shop",
			},
			{
				Name:        "removeitem",
				Aliases:     []string{},
				Description: "Deactivate an item (admin)",
				Usage:       ".removeitem <item_id>",
				Category:    "Shop",
			},
			{
				Name:        "reactivateitem",
				Aliases:     []string{},
				Description: "Reactivate a deactivated item (admin)",
				Usage:       ".reactivateitem <item_id> [stock]",
				Category:    "Shop",
			},
			{
				Name:        "itemslist",
				Aliases:     []string{"allitems"},
				Description: "List every item, inactive ones included (admin)",
				Usage:       ".itemslist",
				Category:    "Shop",
			},
		},
	}

	commands.RegisterModule(module)
}
