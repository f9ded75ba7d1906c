package repositories

import (
	"github.com/pangrm/blogdee/backend/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification operations.
// A NULL recipient_id marks a broadcast notification, visible to every user,
// so all recipient-scoped reads include the IS NULL branch.
type NotificationRepository interface {
	CreateNotification(notification *models.Notification) error
	GetByRecipientID(recipientID uint, page, limit int) ([]models.Notification, int64, error)
	GetUnreadCount(recipientID uint) (int64, error)
	MarkAsRead(notificationID, recipientID uint) error
	MarkAllAsRead(recipientID uint) error
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

// NewPostgresNotificationRepository creates a new Postgres-backed NotificationRepository
func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

func (r *postgresNotificationRepository) CreateNotification(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *postgresNotificationRepository) GetByRecipientID(recipientID uint, page, limit int) ([]models.Notification, int64, error) {
	page, limit = models.ClampPage(page, limit)

	var total int64
	if err := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? OR recipient_id IS NULL", recipientID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []models.Notification
	err := r.db.Where("recipient_id = ? OR recipient_id IS NULL", recipientID).
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (r *postgresNotificationRepository) GetUnreadCount(recipientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("(recipient_id = ? OR recipient_id IS NULL) AND is_read = false", recipientID).
		Count(&count).Error
	return count, err
}

// MarkAsRead marks one notification read, scoped to the recipient so a user
// cannot mark another user's notification. Broadcasts are markable by anyone.
func (r *postgresNotificationRepository) MarkAsRead(notificationID, recipientID uint) error {
	res := r.db.Model(&models.Notification{}).
		Where("id = ? AND (recipient_id = ? OR recipient_id IS NULL)", notificationID, recipientID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *postgresNotificationRepository) MarkAllAsRead(recipientID uint) error {
	return r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = false", recipientID).
		Update("is_read", true).Error
}
