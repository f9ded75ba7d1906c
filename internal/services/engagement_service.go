package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/pangrm/blogdee/backend/internal/models"
	"github.com/pangrm/blogdee/backend/internal/repositories"
)

// Emitter records engagement events without ever failing the caller
type Emitter interface {
	Emit(ctx context.Context, event NotificationEvent)
}

// EngagementService orchestrates the like toggle and the comment-creation
// path. The engagement state change is transactional in the repository; the
// notification write happens after the transaction and is best-effort.
type EngagementService struct {
	likes    repositories.LikeRepository
	comments repositories.CommentRepository
	posts    repositories.PostRepository
	users    repositories.UserRepository
	emitter  Emitter
}

// NewEngagementService creates a new EngagementService
func NewEngagementService(
	likeRepo repositories.LikeRepository,
	commentRepo repositories.CommentRepository,
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	emitter Emitter,
) *EngagementService {
	return &EngagementService{
		likes:    likeRepo,
		comments: commentRepo,
		posts:    postRepo,
		users:    userRepo,
		emitter:  emitter,
	}
}

// ToggleLike flips the like state for (actorID, postID) and returns "liked"
// or "unliked". A repeated call by the same actor reverses the previous one.
// When a concurrent caller wins the race in either direction the conflict is
// absorbed as a no-op success with no duplicate notification: the losing
// insert reports "liked", the losing delete reports "unliked".
func (s *EngagementService) ToggleLike(ctx context.Context, actorID, postID uint) (string, error) {
	result, err := s.likes.ToggleLike(ctx, actorID, postID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrAlreadyLiked):
			return models.LikeStatusLiked, nil
		case errors.Is(err, repositories.ErrAlreadyUnliked):
			return models.LikeStatusUnliked, nil
		}
		return "", err
	}

	if result.PostOwnerID != actorID {
		notifType := models.NotificationTypeLike
		verb := "liked"
		if result.Status == models.LikeStatusUnliked {
			notifType = models.NotificationTypeUnlike
			verb = "unliked"
		}

		recipientID := result.PostOwnerID
		targetID := postID
		s.emitter.Emit(ctx, NotificationEvent{
			Type:        notifType,
			TargetType:  models.TargetTypePost,
			TargetID:    &targetID,
			RecipientID: &recipientID,
			ActorID:     actorID,
			Message:     fmt.Sprintf("%s %s your post: %s", s.actorName(actorID), verb, result.PostTitle),
		})
	}

	return result.Status, nil
}

// AddComment records a comment on a post and notifies the post owner unless
// the commenter is the owner. The comment insert is the primary operation;
// the notification is fire-and-forget.
func (s *EngagementService) AddComment(ctx context.Context, actorID, postID uint, text string) (*models.Comment, error) {
	post, err := s.posts.GetPostByID(postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:      postID,
		UserID:      actorID,
		CommentText: text,
		CreatedAt:   time.Now(),
	}
	if err := s.comments.CreateComment(comment); err != nil {
		return nil, err
	}

	if post.UserID != actorID {
		recipientID := post.UserID
		targetID := postID
		commentText := text
		s.emitter.Emit(ctx, NotificationEvent{
			Type:        models.NotificationTypeComment,
			TargetType:  models.TargetTypePost,
			TargetID:    &targetID,
			RecipientID: &recipientID,
			ActorID:     actorID,
			Message:     fmt.Sprintf("%s commented on your post: %s", s.actorName(actorID), post.Title),
			CommentText: &commentText,
		})
	}

	return comment, nil
}

// actorName resolves the actor's display name for notification messages.
// Lookup failures degrade the message, never the operation.
func (s *EngagementService) actorName(actorID uint) string {
	actor, err := s.users.GetUserByID(actorID)
	if err != nil {
		log.Printf("actor lookup failed for notification message: actor=%d: %v", actorID, err)
		return "Someone"
	}
	if actor.Name != "" {
		return actor.Name
	}
	return actor.Username
}
