package api

import (
	"errors"
	"net/http"

	"glass-dispatch/internal/handler/httperr"
	"glass-dispatch/internal/handler/middleware"
	"glass-dispatch/internal/usecase/commands"
	"glass-dispatch/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	cmds commands.NotificationCommands
	q    queries.NotificationQueries
}

func NewNotificationHandler(cmds commands.NotificationCommands, q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{cmds: cmds, q: q}
}

// @Summary List notifications
// @Description The caller's notifications newest first with the unread count
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.NotificationFeed
// @Failure 401 {object} map[string]string
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	feed, err := h.q.FeedForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list notifications", nil)
		return
	}
	c.JSON(http.StatusOK, feed)
}

// @Summary Mark notification read
// @Description Mark one of the caller's notifications as read
// @Tags notifications
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	if err := h.cmds.MarkRead(c.Request.Context(), id, userID); err != nil {
		if errors.Is(err, commands.ErrNotificationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Notification not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Mark read failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Mark all notifications read
// @Description Mark every unread notification of the caller as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64
// @Failure 401 {object} map[string]string
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	count, err := h.cmds.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Mark all read failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": count})
}
