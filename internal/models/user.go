package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Username    string    `json:"username" gorm:"size:50;uniqueIndex"`
	Name        string    `json:"name"`
	Email       string    `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all users
	Password    string    `json:"-"`                        // Store hashed password, ignore for JSON serialization
	ProfilePic  string    `json:"profile_pic"`
	Bio         string    `json:"bio"`
	Role        string    `json:"role" gorm:"size:20;default:user"`
	FirebaseUID string    `json:"firebase_uid,omitempty" gorm:"index"` // Link to Firebase User UID, empty for local accounts
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserCompact is the slimmed-down user shape joined into notifications and comments
type UserCompact struct {
	ID         uint   `json:"id"`
	Username   string `json:"username"`
	Name       string `json:"name"`
	ProfilePic string `json:"profile_pic"`
}

// ToCompact returns the compact representation of the user
func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:         u.ID,
		Username:   u.Username,
		Name:       u.Name,
		ProfilePic: u.ProfilePic,
	}
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ResetPasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type UpdateUserRequest struct {
	Name       string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	ProfilePic string `json:"profile_pic,omitempty" validate:"omitempty,url"`
	Bio        string `json:"bio,omitempty" validate:"omitempty,max=500"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
