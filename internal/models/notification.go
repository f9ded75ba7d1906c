package models

import "time"

// Notification types. The set is open: rows may carry kinds this service
// never emits itself (e.g. system announcements created via the API).
const (
	NotificationTypeLike    = "like"
	NotificationTypeUnlike  = "unlike"
	NotificationTypeComment = "comment"
	NotificationTypeSystem  = "system"
)

// Notification target types
const (
	TargetTypePost    = "post"
	TargetTypeComment = "comment"
	TargetTypeUser    = "user"
)

// Notification represents a fact delivered to a recipient about an actor's
// action on a target. RecipientID nil means broadcast to all users; TargetID
// nil means the event has no specific target.
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Type        string    `json:"type" gorm:"size:30;index"`
	TargetType  string    `json:"target_type" gorm:"size:20"`
	TargetID    *uint     `json:"target_id"`
	RecipientID *uint     `json:"recipient_id" gorm:"index"`
	ActorID     uint      `json:"actor_id" gorm:"index"`
	Message     string    `json:"message"`
	CommentText *string   `json:"comment_text,omitempty"`
	IsRead      bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}

// CreateNotificationRequest defines the request body for the manual
// notification-creation endpoint. RecipientID and TargetID stay optional:
// a missing recipient means broadcast.
type CreateNotificationRequest struct {
	Type        string `json:"type" validate:"required,min=1,max=30"`
	TargetType  string `json:"target_type" validate:"required,min=1,max=20"`
	TargetID    *uint  `json:"target_id,omitempty"`
	RecipientID *uint  `json:"recipient_id,omitempty"`
	ActorID     uint   `json:"actor_id" validate:"required"`
	Message     string `json:"message" validate:"required"`
	CommentText string `json:"comment_text,omitempty"`
}
