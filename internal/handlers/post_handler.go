package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/pangrm/blogdee/backend/internal/models"
	"github.com/pangrm/blogdee/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository     repositories.PostRepository
	categoryRepository repositories.CategoryRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, categoryRepo repositories.CategoryRepository) *PostHandler {
	return &PostHandler{
		postRepository:     postRepo,
		categoryRepository: categoryRepo,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts", h.GetPosts)
	g.GET("/posts/titles", h.GetPostTitles)
	g.GET("/posts/:post_id", h.GetPostByID)
	g.PUT("/posts/:post_id", h.UpdatePost)
	g.DELETE("/posts/:post_id", h.DeletePost)
}

type postListResponse struct {
	models.PageMeta
	Posts []models.Post `json:"posts"`
}

// CreatePost creates a new post owned by the authenticated user
func (h *PostHandler) CreatePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.categoryRepository.GetCategoryByID(req.CategoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "Category does not exist")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	post := &models.Post{
		Title:       req.Title,
		Image:       req.Image,
		Description: req.Description,
		Content:     req.Content,
		UserID:      currentUserID,
		CategoryID:  req.CategoryID,
		StatusID:    req.StatusID,
		Date:        time.Now(),
	}

	if err := h.postRepository.CreatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Created post successfully", "post_id": post.ID})
}

// GetPosts returns a filtered, paginated post listing
func (h *PostHandler) GetPosts(c echo.Context) error {
	page, limit := pageParams(c)
	searchID, _ := strconv.ParseUint(c.QueryParam("searchId"), 10, 32)
	categoryID, _ := strconv.ParseUint(c.QueryParam("category"), 10, 32)
	statusID, _ := strconv.ParseUint(c.QueryParam("status"), 10, 32)

	opts := models.ListPostsOptions{
		Page:       page,
		Limit:      limit,
		SearchID:   uint(searchID),
		Keyword:    c.QueryParam("keyword"),
		CategoryID: uint(categoryID),
		StatusID:   uint(statusID),
	}

	posts, total, err := h.postRepository.GetPosts(opts)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	page, limit = models.ClampPage(page, limit)
	return c.JSON(http.StatusOK, postListResponse{
		PageMeta: models.NewPageMeta(total, page, limit),
		Posts:    posts,
	})
}

// GetPostTitles returns id/title pairs for the given status and keyword
func (h *PostHandler) GetPostTitles(c echo.Context) error {
	statusID, _ := strconv.ParseUint(c.QueryParam("status"), 10, 32)

	titles, err := h.postRepository.GetPostTitles(uint(statusID), c.QueryParam("keyword"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, titles)
}

// GetPostByID retrieves a single post with category, status and author joined
func (h *PostHandler) GetPostByID(c echo.Context) error {
	postID, err := parseUintParam(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, post)
}

// UpdatePost updates an existing post owned by the authenticated user
func (h *PostHandler) UpdatePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := parseUintParam(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if post.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Not the owner of this post")
	}

	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Image != "" {
		post.Image = req.Image
	}
	if req.Description != "" {
		post.Description = req.Description
	}
	if req.Content != "" {
		post.Content = req.Content
	}
	if req.CategoryID != 0 {
		post.CategoryID = req.CategoryID
	}
	if req.StatusID != 0 {
		post.StatusID = req.StatusID
	}
	post.Date = time.Now()

	if err := h.postRepository.UpdatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Updated post successfully", "post": post})
}

// DeletePost deletes a post together with its likes and comments
func (h *PostHandler) DeletePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := parseUintParam(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if post.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Not the owner of this post")
	}

	if err := h.postRepository.DeletePost(postID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Deleted post successfully"})
}
