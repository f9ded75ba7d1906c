package repositories

import (
	"errors"

	"github.com/pangrm/blogdee/backend/internal/models"
	"gorm.io/gorm"
)

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	CreateCategory(category *models.Category) error
	GetCategories() ([]models.Category, error)
	GetCategoryByID(id uint) (*models.Category, error)
	UpdateCategory(category *models.Category) error
	DeleteCategory(id uint) error
}

// PostgresCategoryRepository implements CategoryRepository for PostgreSQL
type PostgresCategoryRepository struct {
	db *gorm.DB
}

// NewPostgresCategoryRepository creates a new PostgresCategoryRepository
func NewPostgresCategoryRepository(db *gorm.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

// CreateCategory creates a category. The unique index on name enforces
// name uniqueness; violations surface as ErrCategoryNameTaken.
func (r *PostgresCategoryRepository) CreateCategory(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCategoryNameTaken
		}
		return err
	}
	return nil
}

// GetCategories retrieves all categories ordered by name
func (r *PostgresCategoryRepository) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategoryByID retrieves a category by ID
func (r *PostgresCategoryRepository) GetCategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// UpdateCategory renames a category
func (r *PostgresCategoryRepository) UpdateCategory(category *models.Category) error {
	if err := r.db.Save(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCategoryNameTaken
		}
		return err
	}
	return nil
}

// DeleteCategory deletes a category by ID
func (r *PostgresCategoryRepository) DeleteCategory(id uint) error {
	res := r.db.Delete(&models.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
