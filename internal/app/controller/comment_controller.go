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

type CommentController struct {
	commentService *service.CommentService
}

func NewCommentController(commentService *service.CommentService) *CommentController {
	return &CommentController{
		commentService: commentService,
	}
}

// GetReplyComments returns comments for a reply
// GET /api/v1/comments/reply/:replyId
func (ctrl *CommentController) GetReplyComments(c *gin.Context) {
	replyID, err := strconv.ParseUint(c.Param("replyId"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 의견 ID입니다")
		return
	}

	comments, err := ctrl.commentService.GetReplyComments(uint(replyID))
	if err != nil {
		if errors.Is(err, service.ErrReplyNotFound) {
			apperrors.NotFound(c, apperrors.ReplyNotFound, "의견을 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// Get returns a single comment
// GET /api/v1/comments/:id
func (ctrl *CommentController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 댓글 ID입니다")
		return
	}

	comment, err := ctrl.commentService.GetComment(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			apperrors.NotFound(c, apperrors.CommentNotFound, "댓글을 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// Create creates a comment on a reply
// POST /api/v1/comments
func (ctrl *CommentController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	comment, err := ctrl.commentService.CreateComment(userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrReplyNotFound) {
			apperrors.NotFound(c, apperrors.ReplyNotFound, "의견을 찾을 수 없습니다")
			return
		}
		log.Error("Comment creation failed", err, map[string]interface{}{
			"reply_id": req.ReplyID,
			"user_id":  userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "comment")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// Update updates a comment (author only)
// PUT /api/v1/comments/:id
func (ctrl *CommentController) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 댓글 ID입니다")
		return
	}

	var req model.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	comment, err := ctrl.commentService.UpdateComment(uint(id), userID, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			apperrors.NotFound(c, apperrors.CommentNotFound, "댓글을 찾을 수 없습니다")
		case errors.Is(err, service.ErrNotOwner):
			apperrors.RespondWithError(c, http.StatusForbidden, apperrors.AuthzOwnerOnly, "작성자만 수정할 수 있습니다")
		default:
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "comment")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// Delete deletes a comment (author only)
// DELETE /api/v1/comments/:id
func (ctrl *CommentController) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 댓글 ID입니다")
		return
	}

	if err := ctrl.commentService.DeleteComment(uint(id), userID); err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			apperrors.NotFound(c, apperrors.CommentNotFound, "댓글을 찾을 수 없습니다")
		case errors.Is(err, service.ErrNotOwner):
			apperrors.RespondWithError(c, http.StatusForbidden, apperrors.AuthzOwnerOnly, "작성자만 삭제할 수 있습니다")
		default:
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "comment")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "댓글이 삭제되었습니다"})
}
