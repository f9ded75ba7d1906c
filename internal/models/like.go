package models

import "time"

// Like represents one user's endorsement of one post. The composite unique
// index is the backstop against concurrent double-insert: at most one edge may
// exist per (user, post) pair.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_likes_user_post,priority:1"`
	PostID    uint      `json:"post_id" gorm:"not null;uniqueIndex:idx_likes_user_post,priority:2"`
	CreatedAt time.Time `json:"created_at"`
}

// Like toggle outcomes
const (
	LikeStatusLiked   = "liked"
	LikeStatusUnliked = "unliked"
)

// ToggleResult carries the outcome of one toggle transaction back to the
// orchestrator, including what it needs for notification targeting.
type ToggleResult struct {
	Status      string `json:"status"`
	PostOwnerID uint   `json:"-"`
	PostTitle   string `json:"-"`
	LikesCount  int    `json:"likes_count"`
}
