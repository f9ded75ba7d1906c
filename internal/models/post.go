package models

import "time"

// Post represents a publishable article.
// LikesCount is denormalized and is only ever adjusted inside the like toggle
// transaction (see repositories.PostgresLikeRepository.ToggleLike).
type Post struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	CategoryID  uint      `json:"category_id" gorm:"index;not null"`
	StatusID    uint      `json:"status_id" gorm:"index;not null"`
	LikesCount  int       `json:"likes_count" gorm:"not null;default:0"`
	Date        time.Time `json:"date" gorm:"index"`

	Author   User     `json:"author" gorm:"foreignKey:UserID"`
	Category Category `json:"category" gorm:"foreignKey:CategoryID"`
	Status   Status   `json:"status" gorm:"foreignKey:StatusID"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Image       string `json:"image,omitempty" validate:"omitempty,url"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
	Content     string `json:"content,omitempty"`
	CategoryID  uint   `json:"category_id" validate:"required"`
	StatusID    uint   `json:"status_id" validate:"required"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Title       string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Image       string `json:"image,omitempty" validate:"omitempty,url"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
	Content     string `json:"content,omitempty"`
	CategoryID  uint   `json:"category_id,omitempty"`
	StatusID    uint   `json:"status_id,omitempty"`
}

// PostTitle is the trimmed shape returned by the titles listing
type PostTitle struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// ListPostsOptions collects the filters accepted by the paginated post listing
type ListPostsOptions struct {
	Page       int
	Limit      int
	SearchID   uint
	Keyword    string
	CategoryID uint
	StatusID   uint
}
