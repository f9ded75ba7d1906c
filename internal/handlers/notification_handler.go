package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/pangrm/blogdee/backend/internal/models"
	"github.com/pangrm/blogdee/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	notificationRepository repositories.NotificationRepository
	userRepository         repositories.UserRepository
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifRepo repositories.NotificationRepository, userRepo repositories.UserRepository) *NotificationHandler {
	return &NotificationHandler{
		notificationRepository: notifRepo,
		userRepository:         userRepo,
	}
}

// RegisterNotificationRoutes registers notification routes. The :id of the
// GET route is a recipient user id; the :id of the read route is a
// notification id.
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.POST("/notifications", h.CreateNotification)
	g.GET("/notifications", h.GetMyNotifications)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.GET("/notifications/:id", h.GetNotificationsByUserID)
	g.PUT("/notifications/:id/read", h.MarkAsRead)
	g.PUT("/notifications/read-all", h.MarkAllAsRead)
}

// EnrichedNotification includes actor info
type EnrichedNotification struct {
	models.Notification
	Actor models.UserCompact `json:"actor"`
}

type notificationListResponse struct {
	models.PageMeta
	Notifications []EnrichedNotification `json:"notifications"`
}

func (h *NotificationHandler) enrichNotifications(notifications []models.Notification) []EnrichedNotification {
	enriched := make([]EnrichedNotification, len(notifications))
	userCache := make(map[uint]models.UserCompact)

	for i, n := range notifications {
		enriched[i] = EnrichedNotification{Notification: n}
		if actor, ok := userCache[n.ActorID]; ok {
			enriched[i].Actor = actor
		} else {
			user, err := h.userRepository.GetUserByID(n.ActorID)
			if err == nil {
				compact := user.ToCompact()
				userCache[n.ActorID] = compact
				enriched[i].Actor = compact
			}
		}
	}
	return enriched
}

// CreateNotification creates a notification through the API. A missing
// recipient_id makes it a broadcast. Self-targeted notifications are
// rejected outright.
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	var req models.CreateNotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.RecipientID != nil && *req.RecipientID == req.ActorID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot create notification for self")
	}

	notification := &models.Notification{
		Type:        req.Type,
		TargetType:  req.TargetType,
		TargetID:    req.TargetID,
		RecipientID: req.RecipientID,
		ActorID:     req.ActorID,
		Message:     req.Message,
		CreatedAt:   time.Now(),
	}
	if req.CommentText != "" {
		notification.CommentText = &req.CommentText
	}

	if err := h.notificationRepository.CreateNotification(notification); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Notification created successfully", "data": notification})
}

// GetMyNotifications returns paginated notifications for the current user,
// broadcasts included.
func (h *NotificationHandler) GetMyNotifications(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	return h.listForRecipient(c, currentUserID)
}

// GetNotificationsByUserID returns paginated notifications for the given
// recipient user id. Users may only read their own feed.
func (h *NotificationHandler) GetNotificationsByUserID(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	userID, err := parseUintParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	if userID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Cannot read another user's notifications")
	}

	return h.listForRecipient(c, userID)
}

func (h *NotificationHandler) listForRecipient(c echo.Context, recipientID uint) error {
	page, limit := pageParams(c)

	notifications, total, err := h.notificationRepository.GetByRecipientID(recipientID, page, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	page, limit = models.ClampPage(page, limit)
	return c.JSON(http.StatusOK, notificationListResponse{
		PageMeta:      models.NewPageMeta(total, page, limit),
		Notifications: h.enrichNotifications(notifications),
	})
}

// GetUnreadCount returns the unread notification count for the current user
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	count, err := h.notificationRepository.GetUnreadCount(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

// MarkAsRead marks a notification as read
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	notifID, err := parseUintParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid notification ID")
	}

	if err := h.notificationRepository.MarkAsRead(notifID, currentUserID); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Notification not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Notification marked as read"})
}

// MarkAllAsRead marks all of the current user's notifications as read
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if err := h.notificationRepository.MarkAllAsRead(currentUserID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "All notifications marked as read"})
}
