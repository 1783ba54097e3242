// Package docs BOXpad Inbox API.
//
// Documentation of the BOXpad inbox API.
//
//	Schemes: https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs

import (
	"github.com/boxpad/boxpad-api/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route GET /api/v1/chats chats chatListEndpointID
// Lists the chat rows for the inbox, optionally filtered by ?q=.
// responses:
//   200: chatListResponse

// The chat list with derived preview and display time per row.
// swagger:response chatListResponse
type chatListResponseWrapper struct {
	// in:body
	Body []models.ChatRow
}

// swagger:route GET /api/v1/chats/{chat_id}/messages messages chatMessagesEndpointID
// Lists the conversation for one chat.
// responses:
//   200: messagesResponse

// The messages of one conversation.
// swagger:response messagesResponse
type messagesResponseWrapper struct {
	// in:body
	Body []models.Message
}
