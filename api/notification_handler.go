package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/santiagoprado21/southpark-club-backend/auth"
	"github.com/santiagoprado21/southpark-club-backend/notification"
)

type NotificationService interface {
	FindNotificationsPerUser(ctx context.Context, userID string) ([]notification.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
}

type NotificationHandler struct {
	service NotificationService
}

func NewNotificationHandler(service NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func (h *NotificationHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.ListMine)
	rg.PUT("/:id/read", h.MarkRead)
}

func (h *NotificationHandler) ListMine(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	notifications, err := h.service.FindNotificationsPerUser(c.Request.Context(), user.ID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get notifications"})
		return
	}

	c.IndentedJSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	user := c.MustGet("user").(auth.User)
	id := c.Param("id")

	err := h.service.MarkRead(c.Request.Context(), id, user.ID)

	if err != nil {
		c.Error(err)
		if errors.Is(err, notification.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update notification"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "notification read"})
}
