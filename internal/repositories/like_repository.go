package repositories

import (
	"context"
	"errors"

	"github.com/pangrm/blogdee/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository is the engagement store: it owns the like edges and the
// denormalized likes_count on posts. ToggleLike is the only writer of the
// counter; both mutations commit or abort together.
type LikeRepository interface {
	ToggleLike(ctx context.Context, userID, postID uint) (*models.ToggleResult, error)
	GetLike(postID, userID uint) (*models.Like, error)
	CreateLike(like *models.Like) error
	DeleteLike(postID, userID uint) error
	GetLikesCountByPostID(postID uint) (int64, error)
	HasUserLikedPost(postID, userID uint) (bool, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// ToggleLike flips the like state of (userID, postID) inside one transaction.
// The counter is adjusted with a relative update in the same transaction as
// the edge mutation, so concurrent toggles on the same post cannot lose an
// increment. The decrement is floored at zero: a prior undercount is masked,
// never turned into a negative counter.
//
// Returns ErrPostNotFound before any write when the post does not exist,
// ErrAlreadyLiked when a concurrent caller inserted the edge first, and
// ErrAlreadyUnliked when a concurrent caller deleted it first.
func (r *PostgresLikeRepository) ToggleLike(ctx context.Context, userID, postID uint) (*models.ToggleResult, error) {
	var result models.ToggleResult

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Select("id", "user_id", "title", "likes_count").First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}
		result.PostOwnerID = post.UserID
		result.PostTitle = post.Title

		var like models.Like
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).First(&like).Error
		switch {
		case err == nil:
			res := tx.Delete(&like)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// Another caller deleted the edge between our check and this
				// delete. Abort so the counter is not decremented twice for
				// one removed edge.
				return ErrAlreadyUnliked
			}
			if err := tx.Model(&models.Post{}).Where("id = ?", postID).
				UpdateColumn("likes_count", gorm.Expr("GREATEST(likes_count - 1, 0)")).Error; err != nil {
				return err
			}
			result.Status = models.LikeStatusUnliked
			result.LikesCount = max(post.LikesCount-1, 0)
			return nil

		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&models.Like{PostID: postID, UserID: userID}).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					// Another caller inserted the edge between our check and
					// this insert. The transaction aborts; the caller decides
					// what "already liked" means.
					return ErrAlreadyLiked
				}
				return err
			}
			if err := tx.Model(&models.Post{}).Where("id = ?", postID).
				UpdateColumn("likes_count", gorm.Expr("likes_count + ?", 1)).Error; err != nil {
				return err
			}
			result.Status = models.LikeStatusLiked
			result.LikesCount = post.LikesCount + 1
			return nil

		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetLike retrieves the like edge for (postID, userID). Absence is not an
// error: it returns (nil, nil) when no edge exists.
func (r *PostgresLikeRepository) GetLike(postID, userID uint) (*models.Like, error) {
	var like models.Like
	if err := r.db.Where("post_id = ? AND user_id = ?", postID, userID).First(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

// CreateLike inserts a like edge. Returns ErrAlreadyLiked when the (user,
// post) pair already exists.
func (r *PostgresLikeRepository) CreateLike(like *models.Like) error {
	if err := r.db.Create(like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyLiked
		}
		return err
	}
	return nil
}

// DeleteLike deletes the like edge for (postID, userID)
func (r *PostgresLikeRepository) DeleteLike(postID, userID uint) error {
	res := r.db.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLikeNotFound
	}
	return nil
}

// GetLikesCountByPostID counts the like edges for a post
func (r *PostgresLikeRepository) GetLikesCountByPostID(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// HasUserLikedPost checks if a user has liked a specific post
func (r *PostgresLikeRepository) HasUserLikedPost(postID, userID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
