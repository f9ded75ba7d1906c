package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/pangrm/blogdee/backend/internal/models"
	"github.com/pangrm/blogdee/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	engagement        EngagementService
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(engagement EngagementService, commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentHandler {
	return &CommentHandler{
		engagement:        engagement,
		commentRepository: commentRepo,
		postRepository:    postRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.CreateComment)
	g.GET("/posts/:post_id/comments", h.GetCommentsByPostID)
}

type commentListResponse struct {
	models.PageMeta
	Comments []commentView `json:"comments"`
}

type commentView struct {
	ID          uint               `json:"id"`
	CommentText string             `json:"comment_text"`
	CreatedAt   time.Time          `json:"created_at"`
	Author      models.UserCompact `json:"author"`
}

// CreateComment creates a new comment on a post and triggers the
// notification path for the post owner.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := parseUintParam(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.engagement.AddComment(c.Request().Context(), currentUserID, postID, req.CommentText)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, comment)
}

// GetCommentsByPostID retrieves a page of comments for a specific post
func (h *CommentHandler) GetCommentsByPostID(c echo.Context) error {
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

	page, limit := pageParams(c)
	comments, total, err := h.commentRepository.GetCommentsByPostID(postID, page, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	page, limit = models.ClampPage(page, limit)
	resp := commentListResponse{
		PageMeta: models.NewPageMeta(total, page, limit),
		Comments: make([]commentView, len(comments)),
	}
	for i, comment := range comments {
		resp.Comments[i] = commentView{
			ID:          comment.ID,
			CommentText: comment.CommentText,
			CreatedAt:   comment.CreatedAt,
			Author:      comment.Author.ToCompact(),
		}
	}

	return c.JSON(http.StatusOK, resp)
}
