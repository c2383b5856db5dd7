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

type ReplyController struct {
	replyService *service.ReplyService
}

func NewReplyController(replyService *service.ReplyService) *ReplyController {
	return &ReplyController{
		replyService: replyService,
	}
}

// GetReviewReplies returns replies for a review with their comments
// GET /api/v1/replies/review/:reviewId
func (ctrl *ReplyController) GetReviewReplies(c *gin.Context) {
	reviewID, err := strconv.ParseUint(c.Param("reviewId"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 리뷰 ID입니다")
		return
	}

	replies, err := ctrl.replyService.GetReviewReplies(uint(reviewID))
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			apperrors.NotFound(c, apperrors.ReviewNotFound, "리뷰를 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "reply")
		return
	}

	c.JSON(http.StatusOK, gin.H{"replies": replies})
}

// Get returns a single reply with its comments
// GET /api/v1/replies/:id
func (ctrl *ReplyController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 의견 ID입니다")
		return
	}

	reply, err := ctrl.replyService.GetReply(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrReplyNotFound) {
			apperrors.NotFound(c, apperrors.ReplyNotFound, "의견을 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "reply")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// Create creates a reply on a review
// POST /api/v1/replies
func (ctrl *ReplyController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var req model.CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	reply, err := ctrl.replyService.CreateReply(userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			apperrors.NotFound(c, apperrors.ReviewNotFound, "리뷰를 찾을 수 없습니다")
			return
		}
		log.Error("Reply creation failed", err, map[string]interface{}{
			"review_id": req.ReviewID,
			"user_id":   userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "reply")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"reply": reply})
}

// Update updates a reply (author only)
// PUT /api/v1/replies/:id
func (ctrl *ReplyController) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 의견 ID입니다")
		return
	}

	var req model.UpdateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	reply, err := ctrl.replyService.UpdateReply(uint(id), userID, req.Reply)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReplyNotFound):
			apperrors.NotFound(c, apperrors.ReplyNotFound, "의견을 찾을 수 없습니다")
		case errors.Is(err, service.ErrNotOwner):
			apperrors.RespondWithError(c, http.StatusForbidden, apperrors.AuthzOwnerOnly, "작성자만 수정할 수 있습니다")
		default:
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "reply")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// Delete deletes a reply (author only)
// DELETE /api/v1/replies/:id
func (ctrl *ReplyController) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 의견 ID입니다")
		return
	}

	if err := ctrl.replyService.DeleteReply(uint(id), userID); err != nil {
		switch {
		case errors.Is(err, service.ErrReplyNotFound):
			apperrors.NotFound(c, apperrors.ReplyNotFound, "의견을 찾을 수 없습니다")
		case errors.Is(err, service.ErrNotOwner):
			apperrors.RespondWithError(c, http.StatusForbidden, apperrors.AuthzOwnerOnly, "작성자만 삭제할 수 있습니다")
		default:
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "reply")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "의견이 삭제되었습니다"})
}
