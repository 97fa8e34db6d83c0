package economy

import (
	"github.com/yanlgn/bot/commands"
)

func init() {
	module := &commands.ModuleInfo{
		Name:        "Economy",
		Description: "Virtual economy system with wallet, bank and role salaries",
		Version:     "1.0.0",
		Author:      "Bot Team",
		Category:    "Economy",
		Commands: []commands.CommandInfo{
			{
				Name:        "balance",
				Aliases:     []string{"bal", "$"},
				Description: "Check your wallet and bank balance",
				Usage:       ".balance [@user]",
				Category:    "Economy",
			},
			{
				Name:        "deposit",
				Aliases:     []string{"dep"},
				Description: "Move money from your wallet into the bank",
				Usage:       ".deposit <amount>",
				Category:    "Economy",
			},
			{
				Name:        "withdraw",
				Aliases:     []string{"with"},
				Description: "Move money from the bank back into your wallet",
				Usage:       ".withdraw <amount>",
				Category:    "Economy",
			},
			{
				Name:        "transfer",
				Aliases:     []string{"pay", "give"},
				Description: "Transfer money to another user",
				Usage:       ".transfer @user <amount>",
				Category:    "Economy",
			},
			{
				Name:        "salary",
				Aliases:     []string{"collect"},
				Description: "Collect the salaries of your roles",
				Usage:       ".salary",
				Category:    "Economy",
			},
			{
				Name:        "salaries",
				Aliases:     []string{},
				Description: "List all role salaries",
				Usage:       ".salaries",
				Category:    "Economy",
			},
			{
				Name:        "setsalary",
				Aliases:     []string{},
				Description: "Set a role's salary and cooldown (admin)",
				Usage:       ".setsalary <role> <amount> [cooldown_seconds]",
				Category:    "Economy",
			},
			{
				Name:        "removesalary",
				Aliases:     []string{},
				Description: "Remove a role's salary (admin)",
				Usage:       ".removesalary <role>",
				Category:    "Economy",
			},
			{
				Name:        "setbalance",
				Aliases:     []string{},
				Description: "Set a user's wallet balance (admin)",
				Usage:       ".setbalance @user <amount>",
				Category:    "Economy",
			},
			{
				Name:        "addmoney",
				Aliases:     []string{},
				Description: "Add money to a user's wallet (admin)",
				Usage:       ".addmoney @user <amount>",
				Category:    "Economy",
			},
			{
				Name:        "takemoney",
				Aliases:     []string{},
				Description: "Take money from a user's wallet (admin)",
				Usage:       ".takemoney @user <amount>",
				Category:    "Economy",
			},
			{
				Name:        "flip",
				Aliases:     []string{},
				Description: "Gamble coins on a coin flip, double or nothing",
				Usage:       ".flip <amount|all>",
				Category:    "Economy",
			},
		},
	}

	commands.RegisterModule(module)
}
