package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wYibin/miniweibo/internal/models"
	"github.com/wYibin/miniweibo/internal/services"
)

// MessageHandler handles message posting HTTP requests
type MessageHandler struct {
	messageService *services.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// RegisterMessageRoutes registers message-related routes
func (h *MessageHandler) RegisterMessageRoutes(g *echo.Group) {
	g.POST("/messages", h.PostMessage)
}

// PostMessage appends a new message authored by the viewer.
func (h *MessageHandler) PostMessage(c echo.Context) error {
	viewerID := getUserIDFromContext(c)
	if viewerID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.PostMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	messageID, err := h.messageService.Post(c.Request().Context(), viewerID, req.Text)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message_id": messageID})
}
