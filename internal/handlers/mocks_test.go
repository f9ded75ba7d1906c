package handlers

import (
	"context"

	"github.com/pangrm/blogdee/backend/internal/models"
	"github.com/stretchr/testify/mock"
)

// Shared mocks for handler tests

type mockEngagementService struct {
	mock.Mock
}

func (m *mockEngagementService) ToggleLike(ctx context.Context, actorID, postID uint) (string, error) {
	args := m.Called(ctx, actorID, postID)
	return args.String(0), args.Error(1)
}

func (m *mockEngagementService) AddComment(ctx context.Context, actorID, postID uint, text string) (*models.Comment, error) {
	args := m.Called(ctx, actorID, postID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

type mockLikeRepository struct {
	mock.Mock
}

func (m *mockLikeRepository) ToggleLike(ctx context.Context, userID, postID uint) (*models.ToggleResult, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ToggleResult), args.Error(1)
}

func (m *mockLikeRepository) GetLike(postID, userID uint) (*models.Like, error) {
	args := m.Called(postID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Like), args.Error(1)
}

func (m *mockLikeRepository) CreateLike(like *models.Like) error {
	args := m.Called(like)
	return args.Error(0)
}

func (m *mockLikeRepository) DeleteLike(postID, userID uint) error {
	args := m.Called(postID, userID)
	return args.Error(0)
}

func (m *mockLikeRepository) GetLikesCountByPostID(postID uint) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockLikeRepository) HasUserLikedPost(postID, userID uint) (bool, error) {
	args := m.Called(postID, userID)
	return args.Bool(0), args.Error(1)
}

type mockPostRepository struct {
	mock.Mock
}

func (m *mockPostRepository) CreatePost(post *models.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *mockPostRepository) GetPostByID(id uint) (*models.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *mockPostRepository) GetPosts(opts models.ListPostsOptions) ([]models.Post, int64, error) {
	args := m.Called(opts)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Post), args.Get(1).(int64), args.Error(2)
}

func (m *mockPostRepository) GetPostTitles(statusID uint, keyword string) ([]models.PostTitle, error) {
	args := m.Called(statusID, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostTitle), args.Error(1)
}

func (m *mockPostRepository) UpdatePost(post *models.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *mockPostRepository) DeletePost(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) CreateComment(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *mockCommentRepository) GetCommentsByPostID(postID uint, page, limit int) ([]models.Comment, int64, error) {
	args := m.Called(postID, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Comment), args.Get(1).(int64), args.Error(2)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *mockUserRepository) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) GetUserByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) GetUserByFirebaseUID(firebaseUID string) (*models.User, error) {
	args := m.Called(firebaseUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) UpdateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

type mockNotificationRepository struct {
	mock.Mock
}

func (m *mockNotificationRepository) CreateNotification(notification *models.Notification) error {
	args := m.Called(notification)
	return args.Error(0)
}

func (m *mockNotificationRepository) GetByRecipientID(recipientID uint, page, limit int) ([]models.Notification, int64, error) {
	args := m.Called(recipientID, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *mockNotificationRepository) GetUnreadCount(recipientID uint) (int64, error) {
	args := m.Called(recipientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockNotificationRepository) MarkAsRead(notificationID, recipientID uint) error {
	args := m.Called(notificationID, recipientID)
	return args.Error(0)
}

func (m *mockNotificationRepository) MarkAllAsRead(recipientID uint) error {
	args := m.Called(recipientID)
	return args.Error(0)
}

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) CreateCategory(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *mockCategoryRepository) GetCategories() ([]models.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *mockCategoryRepository) GetCategoryByID(id uint) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *mockCategoryRepository) UpdateCategory(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *mockCategoryRepository) DeleteCategory(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}
