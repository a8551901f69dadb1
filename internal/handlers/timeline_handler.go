package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wYibin/miniweibo/internal/services"
)

// TimelineHandler handles feed-related HTTP requests
type TimelineHandler struct {
	timelineService *services.TimelineService
}

// NewTimelineHandler creates a new TimelineHandler
func NewTimelineHandler(timelineService *services.TimelineService) *TimelineHandler {
	return &TimelineHandler{timelineService: timelineService}
}

// RegisterAuthedTimelineRoutes registers routes that require a viewer identity
func (h *TimelineHandler) RegisterAuthedTimelineRoutes(g *echo.Group) {
	g.GET("/timeline", h.GetPersonalTimeline)
}

// RegisterPublicTimelineRoutes registers routes open to anonymous viewers
func (h *TimelineHandler) RegisterPublicTimelineRoutes(g *echo.Group) {
	g.GET("/public", h.GetPublicTimeline)
	g.GET("/users/:username", h.GetAuthorTimeline)
}

// GetPersonalTimeline returns the viewer's own feed: messages by the viewer
// and everyone the viewer follows, newest first.
func (h *TimelineHandler) GetPersonalTimeline(c echo.Context) error {
	viewerID := getUserIDFromContext(c)
	if viewerID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	entries, err := h.timelineService.Personal(c.Request().Context(), viewerID, getLimitFromQuery(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"entries": entries})
}

// GetPublicTimeline returns the latest messages across all users.
func (h *TimelineHandler) GetPublicTimeline(c echo.Context) error {
	entries, err := h.timelineService.Public(c.Request().Context(), getLimitFromQuery(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"entries": entries})
}

// GetAuthorTimeline returns one user's messages plus whether the viewer
// follows that user.
func (h *TimelineHandler) GetAuthorTimeline(c echo.Context) error {
	viewerID := getUserIDFromContext(c)

	feed, err := h.timelineService.Author(c.Request().Context(), c.Param("username"), viewerID, getLimitFromQuery(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, feed)
}
