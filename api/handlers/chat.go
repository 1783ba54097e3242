package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/boxpad/boxpad-api/chat"
	"github.com/boxpad/boxpad-api/config"
	"github.com/boxpad/boxpad-api/fetch"
	"github.com/boxpad/boxpad-api/metrics"
	"github.com/boxpad/boxpad-api/models"
	"github.com/boxpad/boxpad-api/upstream"
)

// Chat exported for testing purposes
type Chat struct {
	Source upstream.Source
	Users  *fetch.Loader[[]models.ChatUser]
}

// ChatListHandler returns the chat list, optionally filtered by the free
// text ?q= parameter against name and preview text
func (c Chat) ChatListHandler(w http.ResponseWriter, r *http.Request) {
	c.Users.Load("users")
	res := c.Users.Wait(r.Context())

	if res.Loading {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"loading": true}`))
		return
	}
	if res.Err != "" && !res.Loaded {
		config.ErrorStatus("failed to fetch chats", http.StatusBadGateway, w, errors.New(res.Err))
		return
	}
	if res.Err != "" {
		// stale-while-error: keep serving the last good list
		zap.S().Warnw("serving stale chat list", "error", res.Err)
	}

	users := res.Data
	if q := r.URL.Query().Get("q"); q != "" {
		metrics.ChatSearches.Inc()
		users = chat.FilterChats(users, chat.PreviewFor, q)
	}

	// Because the frontend requires that the data elements exist, if
	// len == 0 then we will just return an empty data object
	rows := chat.Rows(users)
	if len(rows) == 0 {
		rows = []models.ChatRow{}
	}
	b, err := json.Marshal(rows)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ChatByIDHandler returns a single normalized chat user given a chat_id
func (c Chat) ChatByIDHandler(w http.ResponseWriter, r *http.Request) {
	chatID := mux.Vars(r)["chat_id"]

	zap.S().Debugf("chat_id: %v", chatID)

	id, err := strconv.Atoi(chatID)
	if err != nil {
		config.ErrorStatus("failed to parse chat id", http.StatusBadRequest, w, err)
		return
	}

	// prefer the loaded listing so the color stays consistent with the
	// row's position in the list
	if res := c.Users.Snapshot(); res.Loaded {
		for _, u := range res.Data {
			if u.ID == id {
				writeJSON(w, u)
				return
			}
		}
	}

	raw, err := c.Source.UserByID(r.Context(), id)
	if err != nil {
		countUpstreamFailure(err)
		config.ErrorStatus("failed to fetch chat", http.StatusBadGateway, w, err)
		return
	}
	writeJSON(w, chat.NormalizeUser(raw, 0))
}

// ChatMessagesHandler returns the conversation for a chat: the comments
// of the post with the same id, transformed to messages
func (c Chat) ChatMessagesHandler(w http.ResponseWriter, r *http.Request) {
	chatID := mux.Vars(r)["chat_id"]

	zap.S().Debugf("chat_id: %v", chatID)

	id, err := strconv.Atoi(chatID)
	if err != nil {
		config.ErrorStatus("failed to parse chat id", http.StatusBadRequest, w, err)
		return
	}

	raws, err := c.Source.CommentsByPost(r.Context(), id)
	if err != nil {
		countUpstreamFailure(err)
		config.ErrorStatus("failed to fetch messages", http.StatusBadGateway, w, err)
		return
	}
	writeJSON(w, chat.BuildMessages(raws, chat.MessageLimit))
}

// ContactsHandler returns a short contact listing from the enveloped
// users source
func (c Chat) ContactsHandler(w http.ResponseWriter, r *http.Request) {
	raws, err := c.Source.UsersPage(r.Context(), "users", 10)
	if err != nil {
		countUpstreamFailure(err)
		config.ErrorStatus("failed to fetch contacts", http.StatusBadGateway, w, err)
		return
	}
	writeJSON(w, chat.Rows(chat.BuildChatUsers(raws)))
}

func writeJSON(w http.ResponseWriter, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
