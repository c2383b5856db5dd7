package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chaekdam/chaekdam-backend/internal/app/model"
	"github.com/chaekdam/chaekdam-backend/internal/app/service"
	apperrors "github.com/chaekdam/chaekdam-backend/internal/errors"
	"github.com/gin-gonic/gin"
)

type TagController struct {
	tagService *service.TagService
}

func NewTagController(tagService *service.TagService) *TagController {
	return &TagController{
		tagService: tagService,
	}
}

// List returns all tags
// GET /api/v1/tags
func (ctrl *TagController) List(c *gin.Context) {
	tags, err := ctrl.tagService.ListTags()
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "tag")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

// Get returns a tag by ID
// GET /api/v1/tags/:id
func (ctrl *TagController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 태그 ID입니다")
		return
	}

	tag, err := ctrl.tagService.GetTag(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrTagNotFound) {
			apperrors.NotFound(c, apperrors.TagNotFound, "태그를 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "tag")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tag": tag})
}

// Create creates a tag, reusing an existing one with the same name (admin only)
// POST /api/v1/tags
func (ctrl *TagController) Create(c *gin.Context) {
	var req model.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "태그 이름을 입력해주세요")
		return
	}

	tag, err := ctrl.tagService.CreateTag(req.Name)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusBadRequest, err, "tag")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"tag": tag})
}

// Update renames a tag (admin only)
// PATCH /api/v1/tags/:id
func (ctrl *TagController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 태그 ID입니다")
		return
	}

	var req model.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "태그 이름을 입력해주세요")
		return
	}

	tag, err := ctrl.tagService.UpdateTag(uint(id), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrTagNotFound) {
			apperrors.NotFound(c, apperrors.TagNotFound, "태그를 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusBadRequest, err, "tag")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tag": tag})
}

// Delete removes a tag (admin only)
// DELETE /api/v1/tags/:id
func (ctrl *TagController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 태그 ID입니다")
		return
	}

	if err := ctrl.tagService.DeleteTag(uint(id)); err != nil {
		if errors.Is(err, service.ErrTagNotFound) {
			apperrors.NotFound(c, apperrors.TagNotFound, "태그를 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "tag")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "태그가 삭제되었습니다"})
}
