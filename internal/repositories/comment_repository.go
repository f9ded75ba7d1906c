package repositories

import (
	"github.com/pangrm/blogdee/backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentsByPostID(postID uint, page, limit int) ([]models.Comment, int64, error)
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment creates a new comment
func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetCommentsByPostID retrieves a page of comments for a post, newest first,
// with the author joined in.
func (r *PostgresCommentRepository) GetCommentsByPostID(postID uint, page, limit int) ([]models.Comment, int64, error) {
	page, limit = models.ClampPage(page, limit)

	var total int64
	if err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []models.Comment
	err := r.db.Where("post_id = ?", postID).
		Preload("Author").
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}
