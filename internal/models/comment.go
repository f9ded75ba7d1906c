package models

import "time"

// Comment represents a user's remark on a post. Comments are immutable once
// created; there is no edit or delete path.
type Comment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	PostID      uint      `json:"post_id" gorm:"index;not null"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	CommentText string    `json:"comment_text" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`

	Author User `json:"author" gorm:"foreignKey:UserID"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	CommentText string `json:"comment_text" validate:"required,min=1,max=500"`
}
