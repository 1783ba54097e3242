package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/boxpad/boxpad-api/api"
	"github.com/boxpad/boxpad-api/api/scheduler"
	"github.com/boxpad/boxpad-api/chat"
	"github.com/boxpad/boxpad-api/config"
	"github.com/boxpad/boxpad-api/fetch"
	"github.com/boxpad/boxpad-api/metrics"
	"github.com/boxpad/boxpad-api/models"
	"github.com/boxpad/boxpad-api/upstream"
)

// App stores the router, the upstream source and the loaders, so they can
// be reused
type App struct {
	Router   *mux.Router
	Source   upstream.Source
	Config   config.Config
	Users    *fetch.Loader[[]models.ChatUser]
	Messages *fetch.Loader[[]models.Message]
	Nav      *NavStore

	scheduler *scheduler.Scheduler
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	if a.Nav == nil {
		a.Nav = NewNavStore()
	}
	if a.Users == nil {
		a.Users = fetch.NewLoader(func(ctx context.Context) ([]models.ChatUser, error) {
			raws, err := a.Source.Users(ctx)
			if err != nil {
				countUpstreamFailure(err)
				return nil, err
			}
			return chat.BuildChatUsers(raws), nil
		})
	}
	if a.Messages == nil {
		// the conversation loader re-runs whenever the selected chat in
		// the nav state changes, see NavStore.MessagesKey
		a.Messages = fetch.NewLoader(func(ctx context.Context) ([]models.Message, error) {
			var raws []models.RawRecord
			var err error
			if id, ok := a.Nav.Selected(); ok {
				raws, err = a.Source.CommentsByPost(ctx, id)
			} else {
				raws, err = a.Source.Comments(ctx)
			}
			if err != nil {
				countUpstreamFailure(err)
				return nil, err
			}
			return chat.BuildMessages(raws, chat.MessageLimit), nil
		})
	}

	r := mux.NewRouter()

	c := Chat{Source: a.Source, Users: a.Users}
	m := Message{Loader: a.Messages, Nav: a.Nav}
	n := Nav{Store: a.Nav}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)
	r.Handle("/metrics", promhttp.Handler())

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/chats", api.Middleware(http.HandlerFunc(c.ChatListHandler))).Methods("GET")
	apiCreate.Handle("/chats/{chat_id}", api.Middleware(http.HandlerFunc(c.ChatByIDHandler))).Methods("GET")
	apiCreate.Handle("/chats/{chat_id}/messages", api.Middleware(http.HandlerFunc(c.ChatMessagesHandler))).Methods("GET")
	apiCreate.Handle("/messages", api.Middleware(http.HandlerFunc(m.MessagesHandler))).Methods("GET")
	apiCreate.Handle("/contacts", api.Middleware(http.HandlerFunc(c.ContactsHandler))).Methods("GET")
	apiCreate.Handle("/nav", api.Middleware(http.HandlerFunc(n.GetNavHandler))).Methods("GET")
	apiCreate.Handle("/nav", api.Middleware(http.HandlerFunc(n.SetNavHandler))).Methods("PUT")

	return r
}

// Initialize creates the upstream client and router, kicks off the first
// chat-list load and starts the background refresh scheduler
func (a *App) Initialize() error {
	a.Source = upstream.New(a.Config.UpstreamURL, a.Config.UpstreamTimeout)
	a.Router = a.New()

	a.Users.Load("users")

	s := scheduler.New(a.Users, a.Config.RefreshCron)
	if err := s.Start(); err != nil {
		zap.S().With(err).Error("failed to start refresh scheduler")
		return err
	}
	a.scheduler = s
	return nil
}

// Close stops the background refresh and tears the loaders down; any
// response still in flight is dropped instead of mutating state.
func (a *App) Close() {
	if a.scheduler != nil {
		a.scheduler.Stop()
	}
	if a.Users != nil {
		a.Users.Close()
	}
	if a.Messages != nil {
		a.Messages.Close()
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}

// countUpstreamFailure records a typed upstream failure; anything else is
// left to the logs
func countUpstreamFailure(err error) {
	var ue *upstream.Error
	if errors.As(err, &ue) {
		metrics.UpstreamFailures.WithLabelValues(ue.Op).Inc()
	}
}
