package models

import "fmt"

// NavState enumerates the top-level view the client is showing.
type NavState string

// The three navigation variants.
const (
	ListView    NavState = "list"
	ChatView    NavState = "chat"
	DetailsView NavState = "details"
)

// Valid reports whether s is one of the enumerated variants.
func (s NavState) Valid() bool {
	switch s {
	case ListView, ChatView, DetailsView:
		return true
	}
	return false
}

// NavOverlays holds the overlay toggles that are orthogonal to the view
// variant.
type NavOverlays struct {
	Sidebar bool `json:"sidebar"`
	Details bool `json:"details"`
}

// Nav is the explicit UI-navigation state: one view variant, the overlay
// toggles, and the currently selected chat (nil when nothing is selected).
type Nav struct {
	View         NavState    `json:"view"`
	Overlays     NavOverlays `json:"overlays"`
	SelectedChat *int        `json:"selectedChat"`
}

// Validate checks the view variant.
func (n Nav) Validate() error {
	if !n.View.Valid() {
		return fmt.Errorf("unknown view %q", n.View)
	}
	return nil
}
