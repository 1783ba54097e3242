package chat

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/boxpad/boxpad-api/models"
)

// MessageLimit is how many messages a conversation shows; the demo slices
// a fixed prefix instead of paginating.
const MessageLimit = 10

// BuildChatUsers normalizes a raw user listing in order. When two rows
// resolve to the same id, the later row keeps its id but gets a synthetic
// selection key so list selection stays unambiguous.
func BuildChatUsers(raws []models.RawRecord) []models.ChatUser {
	users := make([]models.ChatUser, 0, len(raws))
	seen := make(map[int]bool, len(raws))
	for i, raw := range raws {
		u := NormalizeUser(raw, i)
		if seen[u.ID] {
			u.Key = uuid.New().String()
			zap.S().Debugw("duplicate chat id, assigned synthetic key", "id", u.ID, "key", u.Key)
		}
		seen[u.ID] = true
		users = append(users, u)
	}
	return users
}

// BuildMessages transforms at most limit records, alternating the sender
// side by position. limit <= 0 means no limit.
func BuildMessages(raws []models.RawRecord, limit int) []models.Message {
	if limit > 0 && len(raws) > limit {
		raws = raws[:limit]
	}
	msgs := make([]models.Message, 0, len(raws))
	for i, raw := range raws {
		msgs = append(msgs, NormalizeMessage(raw, i%2 == 0))
	}
	return msgs
}

// Rows pairs each user with its derived preview and display time for the
// chat list.
func Rows(users []models.ChatUser) []models.ChatRow {
	rows := make([]models.ChatRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, models.ChatRow{
			ChatUser: u,
			Preview:  PreviewFor(u.ID),
			Time:     TimeFor(u.ID),
		})
	}
	return rows
}
