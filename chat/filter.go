package chat

import (
	"strings"

	"github.com/boxpad/boxpad-api/models"
)

// FilterChats returns the users whose name or preview text contains the
// query, case-insensitively, preserving the original order. An empty or
// all-whitespace query returns users as-is.
func FilterChats(users []models.ChatUser, previewOf func(id int) string, query string) []models.ChatUser {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return users
	}

	filtered := make([]models.ChatUser, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), q) ||
			strings.Contains(strings.ToLower(previewOf(u.ID)), q) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}
