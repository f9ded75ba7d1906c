package repositories

import "errors"

// Sentinel errors shared by the repository layer. Handlers and services match
// on these with errors.Is instead of comparing error strings.
var (
	ErrPostNotFound         = errors.New("post not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrLikeNotFound         = errors.New("like not found")

	// ErrAlreadyLiked is returned when the unique index on (user_id, post_id)
	// rejects a like insert. Under a concurrent toggle this means the other
	// caller won the race; the orchestrator treats it as a no-op success.
	ErrAlreadyLiked = errors.New("post already liked by this user")

	// ErrAlreadyUnliked is the delete-direction counterpart: the edge was
	// already gone when the delete ran, so the toggle aborts without touching
	// the counter.
	ErrAlreadyUnliked = errors.New("post already unliked by this user")

	ErrCategoryNameTaken = errors.New("category name already taken")
)
