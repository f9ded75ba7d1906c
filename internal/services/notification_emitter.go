package services

import (
	"context"
	"log"
	"time"

	"github.com/pangrm/blogdee/backend/internal/models"
	"github.com/pangrm/blogdee/backend/internal/repositories"
)

// NotificationEvent describes a fact to record for later retrieval. A nil
// RecipientID means broadcast to all users; a nil TargetID means the event
// has no specific target.
type NotificationEvent struct {
	Type        string
	TargetType  string
	TargetID    *uint
	RecipientID *uint
	ActorID     uint
	Message     string
	CommentText *string
}

// NotificationEmitter records engagement events best-effort. Emission failures
// are logged and swallowed: they must never fail the business operation that
// triggered them.
type NotificationEmitter struct {
	notifications repositories.NotificationRepository
}

// NewNotificationEmitter creates a new NotificationEmitter
func NewNotificationEmitter(notificationRepo repositories.NotificationRepository) *NotificationEmitter {
	return &NotificationEmitter{notifications: notificationRepo}
}

// Emit writes one notification row. Self-targeted events are dropped: a user
// is never notified of their own action.
func (e *NotificationEmitter) Emit(ctx context.Context, event NotificationEvent) {
	if event.RecipientID != nil && *event.RecipientID == event.ActorID {
		return
	}

	notification := &models.Notification{
		Type:        event.Type,
		TargetType:  event.TargetType,
		TargetID:    event.TargetID,
		RecipientID: event.RecipientID,
		ActorID:     event.ActorID,
		Message:     event.Message,
		CommentText: event.CommentText,
		CreatedAt:   time.Now(),
	}

	if err := e.notifications.CreateNotification(notification); err != nil {
		log.Printf("notification emit failed: type=%s actor=%d: %v", event.Type, event.ActorID, err)
	}
}
