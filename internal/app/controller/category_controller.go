package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chaekdam/chaekdam-backend/internal/app/model"
	"github.com/chaekdam/chaekdam-backend/internal/app/service"
	apperrors "github.com/chaekdam/chaekdam-backend/internal/errors"
	"github.com/chaekdam/chaekdam-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	categoryService *service.CategoryService
}

func NewCategoryController(categoryService *service.CategoryService) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

// List returns all categories
// GET /api/v1/categories
func (ctrl *CategoryController) List(c *gin.Context) {
	categories, err := ctrl.categoryService.ListCategories()
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// Get returns a category by ID
// GET /api/v1/categories/:id
func (ctrl *CategoryController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 카테고리 ID입니다")
		return
	}

	category, err := ctrl.categoryService.GetCategory(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.CategoryNotFound, "카테고리를 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// Create creates a new category (admin only)
// POST /api/v1/categories
func (ctrl *CategoryController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req model.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "카테고리 이름을 입력해주세요")
		return
	}

	category, err := ctrl.categoryService.CreateCategory(req.Name)
	if err != nil {
		log.Error("Category creation failed", err, map[string]interface{}{
			"name": req.Name,
		})
		apperrors.ParseAndRespond(c, http.StatusBadRequest, err, "category")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// Update renames a category (admin only)
// PATCH /api/v1/categories/:id
func (ctrl *CategoryController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 카테고리 ID입니다")
		return
	}

	var req model.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "카테고리 이름을 입력해주세요")
		return
	}

	category, err := ctrl.categoryService.UpdateCategory(uint(id), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.CategoryNotFound, "카테고리를 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusBadRequest, err, "category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// Delete removes a category (admin only)
// DELETE /api/v1/categories/:id
func (ctrl *CategoryController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 카테고리 ID입니다")
		return
	}

	if err := ctrl.categoryService.DeleteCategory(uint(id)); err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			apperrors.NotFound(c, apperrors.CategoryNotFound, "카테고리를 찾을 수 없습니다")
		case errors.Is(err, service.ErrCategoryHasBooks):
			apperrors.BadRequest(c, apperrors.CategoryHasBooks, "책이 소속된 카테고리는 삭제할 수 없습니다")
		default:
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "category")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "카테고리가 삭제되었습니다"})
}
