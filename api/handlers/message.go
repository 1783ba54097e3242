package handlers

import (
	"errors"
	"net/http"

	"github.com/boxpad/boxpad-api/config"
	"github.com/boxpad/boxpad-api/fetch"
	"github.com/boxpad/boxpad-api/models"
)

// Message exported for testing purposes
type Message struct {
	Loader *fetch.Loader[[]models.Message]
	Nav    *NavStore
}

// MessagesHandler returns the current conversation: the comments of the
// selected chat, or the global comment feed when nothing is selected.
// Re-keying the loader on the nav selection means a selection change
// triggers a refetch and any response still in flight for the previous
// selection is discarded.
func (m Message) MessagesHandler(w http.ResponseWriter, r *http.Request) {
	m.Loader.Load(m.Nav.MessagesKey())
	res := m.Loader.Wait(r.Context())

	if res.Loading {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"loading": true}`))
		return
	}
	if res.Err != "" && !res.Loaded {
		config.ErrorStatus("failed to fetch messages", http.StatusBadGateway, w, errors.New(res.Err))
		return
	}

	msgs := res.Data
	if len(msgs) == 0 {
		msgs = []models.Message{}
	}
	writeJSON(w, msgs)
}
