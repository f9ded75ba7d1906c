package repositories

import (
	"errors"

	"github.com/pangrm/blogdee/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetPosts(opts models.ListPostsOptions) ([]models.Post, int64, error)
	GetPostTitles(statusID uint, keyword string) ([]models.PostTitle, error)
	UpdatePost(post *models.Post) error
	DeletePost(id uint) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post with its category, status and author joined
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Category").Preload("Status").Preload("Author").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// GetPosts retrieves a filtered page of posts, newest first, with the total
// row count for pagination.
func (r *PostgresPostRepository) GetPosts(opts models.ListPostsOptions) ([]models.Post, int64, error) {
	page, limit := models.ClampPage(opts.Page, opts.Limit)

	query := r.db.Model(&models.Post{})
	if opts.CategoryID != 0 {
		query = query.Where("category_id = ?", opts.CategoryID)
	}
	if opts.StatusID != 0 {
		query = query.Where("status_id = ?", opts.StatusID)
	}
	if opts.SearchID != 0 {
		query = query.Where("id = ?", opts.SearchID)
	}
	if opts.Keyword != "" {
		pattern := "%" + opts.Keyword + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ? OR description ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := query.Preload("Category").Preload("Status").Preload("Author").
		Order("date DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// GetPostTitles retrieves id/title pairs, optionally filtered by status and keyword
func (r *PostgresPostRepository) GetPostTitles(statusID uint, keyword string) ([]models.PostTitle, error) {
	query := r.db.Model(&models.Post{})
	if statusID != 0 {
		query = query.Where("status_id = ?", statusID)
	}
	if keyword != "" {
		query = query.Where("title ILIKE ?", "%"+keyword+"%")
	}

	var titles []models.PostTitle
	if err := query.Select("id", "title").Order("date DESC").Find(&titles).Error; err != nil {
		return nil, err
	}
	return titles, nil
}

// UpdatePost updates an existing post
func (r *PostgresPostRepository) UpdatePost(post *models.Post) error {
	return r.db.Save(post).Error
}

// DeletePost deletes a post together with its like edges and comments in one
// transaction, so no orphaned engagement rows survive.
func (r *PostgresPostRepository) DeletePost(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrPostNotFound
		}
		return nil
	})
}
