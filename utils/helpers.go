package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

func UserExists(s *discordgo.Session, userID string) (bool, error) {
	_, err := s.User(userID)
	if err != nil {
		if strings.Contains(err.Error(), "Unknown User") {
			return false, nil // User does not exist
		}
		return false, err // Other error
	}
	return true, nil // User exists
}

// ExtractUserID extracts the user ID from a mention
func ExtractUserID(mention string) (string, error) {
	// Check if the mention is properly formatted
	if !strings.HasPrefix(mention, "<@") || !strings.HasSuffix(mention, ">") {
		return "", fmt.Errorf("invalid mention format")
	}

	// Extract the user ID
	userID := strings.TrimPrefix(strings.TrimSuffix(mention, ">"), "<@")

	// Remove the nickname exclamation mark if present
	userID = strings.TrimPrefix(userID, "!")

	// Validate that the user ID is a valid Snowflake (Discord ID)
	if _, err := strconv.ParseUint(userID, 10, 64); err != nil {
		return "", fmt.Errorf("invalid user ID")
	}

	return userID, nil
}

func ExtractRoleID(input string) string {
	if strings.HasPrefix(input, "<@&") && strings.HasSuffix(input, ">") {
		return input[3 : len(input)-1]
	}
	return input // Return as is for ID/name validation
}

// function to validate and find role
func FindRole(s *discordgo.Session, guildID string, roleInput string) (*discordgo.Role, error) {
	roles, err := s.GuildRoles(guildID)
	if err != nil {
		return nil, err
	}

	cleanedInput := ExtractRoleID(roleInput)

	// Check by ID first
	for _, role := range roles {
		if role.ID == cleanedInput {
			return role, nil
		}
	}

	// Check by name (case-insensitive)
	cleanedInput = strings.ToLower(strings.TrimSpace(cleanedInput))
	for _, role := range roles {
		if strings.ToLower(role.Name) == cleanedInput {
			return role, nil
		}
	}

	return nil, fmt.Errorf("role not found")
}

// CheckPermission checks if a user has a specific permission in a guild
func CheckPermission(s *discordgo.Session, guildID, userID string, permission int64) (bool, error) {
	// Fetch guild member details
	member, err := s.GuildMember(guildID, userID)
	if err != nil {
		return false, fmt.Errorf("error fetching member: %v", err)
	}

	// Fetch guild roles
	guild, err := s.Guild(guildID)
	if err != nil {
		return false, fmt.Errorf("error fetching guild: %v", err)
	}

	// Check if the user has the required permission
	hasPermission := false
	for _, roleID := range member.Roles {
		for _, role := range guild.Roles {
			if role.ID == roleID && role.Permissions&permission != 0 {
				hasPermission = true
				break
			}
		}
	}

	return hasPermission, nil
}

// CheckAdminPermission checks if a user has administrator permissions in a guild
func CheckAdminPermission(s *discordgo.Session, guildID, userID string) (bool, error) {
	return CheckPermission(s, guildID, userID, discordgo.PermissionAdministrator)
}
