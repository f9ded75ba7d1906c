package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/pangrm/blogdee/backend/internal/models"
	"github.com/pangrm/blogdee/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// EngagementService is the slice of the engagement orchestrator the HTTP
// layer depends on.
type EngagementService interface {
	ToggleLike(ctx context.Context, actorID, postID uint) (string, error)
	AddComment(ctx context.Context, actorID, postID uint, text string) (*models.Comment, error)
}

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	engagement     EngagementService
	likeRepository repositories.LikeRepository
	postRepository repositories.PostRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(engagement EngagementService, likeRepo repositories.LikeRepository, postRepo repositories.PostRepository) *LikeHandler {
	return &LikeHandler{
		engagement:     engagement,
		likeRepository: likeRepo,
		postRepository: postRepo,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/likes", h.ToggleLike)
	g.GET("/posts/:post_id/likes/count", h.GetLikesCountForPost)
	g.GET("/posts/:post_id/likes/status", h.GetUserLikeStatusForPost)
}

// ToggleLike flips the caller's like state on a post. Repeated calls
// alternate between {"status":"liked"} and {"status":"unliked"}.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := parseUintParam(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	status, err := h.engagement.ToggleLike(c.Request().Context(), currentUserID, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"status": status})
}

// GetLikesCountForPost retrieves the total number of likes for a specific post
func (h *LikeHandler) GetLikesCountForPost(c echo.Context) error {
	postID, err := parseUintParam(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	if _, err := h.postRepository.GetPostByID(postID); err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	count, err := h.likeRepository.GetLikesCountByPostID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "likes_count": count})
}

// GetUserLikeStatusForPost checks if the authenticated user has liked a specific post
func (h *LikeHandler) GetUserLikeStatusForPost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := parseUintParam(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	hasLiked, err := h.likeRepository.HasUserLikedPost(postID, currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "user_id": currentUserID, "has_liked": hasLiked})
}
