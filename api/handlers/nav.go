package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/boxpad/boxpad-api/config"
	"github.com/boxpad/boxpad-api/models"
)

// NavStore owns the explicit UI-navigation state: one enumerated view
// variant plus overlay toggles plus the selected chat, instead of a pile
// of independent booleans.
type NavStore struct {
	mu  sync.Mutex
	nav models.Nav
}

// NewNavStore starts in the list view with nothing selected.
func NewNavStore() *NavStore {
	return &NavStore{nav: models.Nav{View: models.ListView}}
}

// Get returns the current nav state.
func (s *NavStore) Get() models.Nav {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav
}

// Set replaces the nav state after validating the view variant.
func (s *NavStore) Set(n models.Nav) error {
	if err := n.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav = n
	return nil
}

// Selected returns the selected chat id, if any.
func (s *NavStore) Selected() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nav.SelectedChat == nil {
		return 0, false
	}
	return *s.nav.SelectedChat, true
}

// MessagesKey is the dependency key for the conversation loader; it
// changes when the selection changes.
func (s *NavStore) MessagesKey() string {
	if id, ok := s.Selected(); ok {
		return fmt.Sprintf("comments-%d", id)
	}
	return "comments"
}

// Nav exported for testing purposes
type Nav struct {
	Store *NavStore
}

// GetNavHandler returns the current navigation state
func (n Nav) GetNavHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, n.Store.Get())
}

// SetNavHandler replaces the navigation state
func (n Nav) SetNavHandler(w http.ResponseWriter, r *http.Request) {
	var nav models.Nav
	if err := json.NewDecoder(r.Body).Decode(&nav); err != nil {
		config.ErrorStatus("failed to decode nav state", http.StatusBadRequest, w, err)
		return
	}
	if err := n.Store.Set(nav); err != nil {
		config.ErrorStatus("invalid nav state", http.StatusBadRequest, w, err)
		return
	}
	writeJSON(w, n.Store.Get())
}
