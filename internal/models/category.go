package models

import "time"

// Category represents a post category
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCategoryRequest defines the request body for creating a category
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateCategoryRequest defines the request body for renaming a category
type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}
