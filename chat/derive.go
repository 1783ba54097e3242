package chat

import "fmt"

// previews is the canned preview cycle shown in the chat list.
var previews = []string{
	"Oh my god! I'll try it ASAP, thank...",
	"Good Evening, Emily! Hope you are...",
	"Thank you for signing up! If t...",
	"I am sending you the report right a...",
	"Thank you for filling out our survey!",
}

// PreviewFor returns the preview line for a chat id. Pure function of id.
func PreviewFor(id int) string {
	return previews[mod(id, len(previews))]
}

// TimeFor returns the pseudo display time for a chat-list row. It is a
// pure function of id, distinct from Message.Timestamp which is the wall
// clock at transform time.
func TimeFor(id int) string {
	k := mod(id, 3)
	return fmt.Sprintf("%02d:%02d", 23-k, 19+k)
}
