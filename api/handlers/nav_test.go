package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boxpad/boxpad-api/api/handlers"
	"github.com/boxpad/boxpad-api/models"
	"github.com/boxpad/boxpad-api/upstream/mocks"
)

func putNav(a *handlers.App, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("PUT", "/api/v1/nav", strings.NewReader(body))
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)
	return rr
}

func TestNav_DefaultState(t *testing.T) {
	a := newApp(&mocks.Source{})

	rr := do(a, "GET", "/api/v1/nav")

	assert.Equal(t, http.StatusOK, rr.Code)

	var nav models.Nav
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &nav))
	assert.Equal(t, models.ListView, nav.View)
	assert.False(t, nav.Overlays.Sidebar)
	assert.Nil(t, nav.SelectedChat)
}

func TestNav_SetNavHandler(t *testing.T) {
	a := newApp(&mocks.Source{})

	rr := putNav(a, `{"view": "details", "overlays": {"sidebar": true, "details": true}, "selectedChat": 4}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = do(a, "GET", "/api/v1/nav")
	var nav models.Nav
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &nav))
	assert.Equal(t, models.DetailsView, nav.View)
	assert.True(t, nav.Overlays.Sidebar)
	if assert.NotNil(t, nav.SelectedChat) {
		assert.Equal(t, 4, *nav.SelectedChat)
	}
}

func TestNav_SetNavHandlerInvalidView(t *testing.T) {
	a := newApp(&mocks.Source{})

	rr := putNav(a, `{"view": "dashboard"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid nav state")
}

func TestNav_SetNavHandlerBadBody(t *testing.T) {
	a := newApp(&mocks.Source{})

	req := httptest.NewRequest("PUT", "/api/v1/nav", bytes.NewReader([]byte("{")))
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "failed to decode nav state")
}

func TestNavStore_MessagesKey(t *testing.T) {
	s := handlers.NewNavStore()
	assert.Equal(t, "comments", s.MessagesKey())

	four := 4
	assert.NoError(t, s.Set(models.Nav{View: models.ChatView, SelectedChat: &four}))
	assert.Equal(t, "comments-4", s.MessagesKey())

	id, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, 4, id)
}
