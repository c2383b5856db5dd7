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

type DraftController struct {
	draftService *service.DraftService
}

func NewDraftController(draftService *service.DraftService) *DraftController {
	return &DraftController{
		draftService: draftService,
	}
}

// List returns the current user's drafts
// GET /api/v1/drafts
func (ctrl *DraftController) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	drafts, err := ctrl.draftService.ListDrafts(userID)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "draft")
		return
	}

	c.JSON(http.StatusOK, gin.H{"drafts": drafts})
}

// Get returns a draft (author only)
// GET /api/v1/drafts/:id
func (ctrl *DraftController) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 임시 저장 ID입니다")
		return
	}

	draft, err := ctrl.draftService.GetDraft(uint(id), userID)
	if err != nil {
		respondDraftError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// Create saves a review draft
// POST /api/v1/drafts
func (ctrl *DraftController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var req model.CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	draft, err := ctrl.draftService.CreateDraft(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookNotFound):
			apperrors.NotFound(c, apperrors.BookNotFound, "책을 찾을 수 없습니다")
		case errors.Is(err, service.ErrInvalidRating):
			apperrors.BadRequest(c, apperrors.RatingInvalidRange, "평점은 1에서 5 사이여야 합니다")
		default:
			log.Error("Draft creation failed", err, map[string]interface{}{
				"book_id": req.BookID,
				"user_id": userID,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "draft")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"draft": draft})
}

// Update modifies a draft (author only)
// PUT /api/v1/drafts/:id
func (ctrl *DraftController) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 임시 저장 ID입니다")
		return
	}

	var req model.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	draft, err := ctrl.draftService.UpdateDraft(uint(id), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRating) {
			apperrors.BadRequest(c, apperrors.RatingInvalidRange, "평점은 1에서 5 사이여야 합니다")
			return
		}
		respondDraftError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// Delete removes a draft (author only)
// DELETE /api/v1/drafts/:id
func (ctrl *DraftController) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 임시 저장 ID입니다")
		return
	}

	if err := ctrl.draftService.DeleteDraft(uint(id), userID); err != nil {
		respondDraftError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "임시 저장이 삭제되었습니다"})
}

// Publish turns a draft into a published review (author only)
// POST /api/v1/drafts/:id/publish
func (ctrl *DraftController) Publish(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 임시 저장 ID입니다")
		return
	}

	review, err := ctrl.draftService.PublishDraft(uint(id), userID)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			apperrors.NotFound(c, apperrors.BookNotFound, "책을 찾을 수 없습니다")
			return
		}
		log.Error("Draft publish failed", err, map[string]interface{}{
			"draft_id": id,
			"user_id":  userID,
		})
		respondDraftError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"review": review})
}

func respondDraftError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDraftNotFound):
		apperrors.NotFound(c, apperrors.ReviewDraftNotFound, "임시 저장된 리뷰를 찾을 수 없습니다")
	case errors.Is(err, service.ErrNotOwner):
		apperrors.RespondWithError(c, http.StatusForbidden, apperrors.AuthzOwnerOnly, "작성자만 접근할 수 있습니다")
	default:
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "draft")
	}
}
