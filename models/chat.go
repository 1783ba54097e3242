package models

// ChatUser holds the canonical chat-list entity derived from a raw user
// record. Initial is always a single uppercase character and Color always
// comes from the fixed palette.
type ChatUser struct {
	ID      int     `json:"id"`
	Key     string  `json:"key"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Initial string  `json:"initial"`
	Color   string  `json:"color"`
	Avatar  *string `json:"avatar"`
}

// Message holds one normalized conversation message. Timestamp is the
// wall-clock time at transform time, the source records carry no time of
// their own.
type Message struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
	FromUser  bool   `json:"fromUser"`
	Author    string `json:"author"`
}

// ChatRow is a chat-list row: the user plus the derived preview text and
// display time for that row.
type ChatRow struct {
	ChatUser
	Preview string `json:"preview"`
	Time    string `json:"time"`
}
