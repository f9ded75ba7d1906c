package handlers

import (
	"errors"
	"net/http"

	"github.com/pangrm/blogdee/backend/internal/models"
	"github.com/pangrm/blogdee/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// CategoryHandler handles HTTP requests related to categories
type CategoryHandler struct {
	categoryRepository repositories.CategoryRepository
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryRepo repositories.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categoryRepository: categoryRepo}
}

// RegisterCategoryRoutes registers category-related routes
func (h *CategoryHandler) RegisterCategoryRoutes(g *echo.Group) {
	g.POST("/categories", h.CreateCategory)
	g.GET("/categories", h.GetCategories)
	g.GET("/categories/:id", h.GetCategoryByID)
	g.PUT("/categories/:id", h.UpdateCategory)
	g.DELETE("/categories/:id", h.DeleteCategory)
}

// CreateCategory creates a new category
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req models.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category := &models.Category{Name: req.Name}
	if err := h.categoryRepository.CreateCategory(category); err != nil {
		if errors.Is(err, repositories.ErrCategoryNameTaken) {
			return echo.NewHTTPError(http.StatusConflict, "Category name already taken")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, category)
}

// GetCategories retrieves all categories
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	categories, err := h.categoryRepository.GetCategories()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, categories)
}

// GetCategoryByID retrieves a category by ID
func (h *CategoryHandler) GetCategoryByID(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid category ID")
	}

	category, err := h.categoryRepository.GetCategoryByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Category not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, category)
}

// UpdateCategory renames a category
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid category ID")
	}

	var req models.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.categoryRepository.GetCategoryByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Category not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	category.Name = req.Name
	if err := h.categoryRepository.UpdateCategory(category); err != nil {
		if errors.Is(err, repositories.ErrCategoryNameTaken) {
			return echo.NewHTTPError(http.StatusConflict, "Category name already taken")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, category)
}

// DeleteCategory deletes a category by ID
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid category ID")
	}

	if err := h.categoryRepository.DeleteCategory(id); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Category not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
