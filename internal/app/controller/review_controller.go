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

type ReviewController struct {
	reviewService *service.ReviewService
}

func NewReviewController(reviewService *service.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

// GetBookReviews returns reviews for a book
// GET /api/v1/reviews/book/:bookId?page=1&page_size=20
func (ctrl *ReviewController) GetBookReviews(c *gin.Context) {
	bookID, err := strconv.ParseUint(c.Param("bookId"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 책 ID입니다")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	reviews, total, err := ctrl.reviewService.GetBookReviews(uint(bookID), page, pageSize)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			apperrors.NotFound(c, apperrors.BookNotFound, "책을 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "review")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews":   reviews,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetMyReviews returns the current user's reviews
// GET /api/v1/reviews/me
func (ctrl *ReviewController) GetMyReviews(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	reviews, total, err := ctrl.reviewService.GetUserReviews(userID, page, pageSize)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "review")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews":   reviews,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// Get returns a single review
// GET /api/v1/reviews/:id
func (ctrl *ReviewController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 리뷰 ID입니다")
		return
	}

	review, err := ctrl.reviewService.GetReview(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			apperrors.NotFound(c, apperrors.ReviewNotFound, "리뷰를 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "review")
		return
	}

	c.JSON(http.StatusOK, gin.H{"review": review})
}

// Create creates a review
// POST /api/v1/reviews
func (ctrl *ReviewController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid review creation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	review, err := ctrl.reviewService.CreateReview(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookNotFound):
			apperrors.NotFound(c, apperrors.BookNotFound, "책을 찾을 수 없습니다")
		case errors.Is(err, service.ErrUserNotFound):
			apperrors.NotFound(c, apperrors.UserNotFound, "사용자를 찾을 수 없습니다")
		case errors.Is(err, service.ErrInvalidRating):
			apperrors.BadRequest(c, apperrors.RatingInvalidRange, "평점은 1에서 5 사이여야 합니다")
		default:
			log.Error("Review creation failed", err, map[string]interface{}{
				"book_id": req.BookID,
				"user_id": userID,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "review")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"review": review})
}

// Update updates a review (author only)
// PUT /api/v1/reviews/:id
func (ctrl *ReviewController) Update(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 리뷰 ID입니다")
		return
	}

	var req model.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	review, err := ctrl.reviewService.UpdateReview(uint(id), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReviewNotFound):
			apperrors.NotFound(c, apperrors.ReviewNotFound, "리뷰를 찾을 수 없습니다")
		case errors.Is(err, service.ErrNotOwner):
			apperrors.RespondWithError(c, http.StatusForbidden, apperrors.AuthzOwnerOnly, "작성자만 수정할 수 있습니다")
		case errors.Is(err, service.ErrInvalidRating):
			apperrors.BadRequest(c, apperrors.RatingInvalidRange, "평점은 1에서 5 사이여야 합니다")
		default:
			log.Error("Review update failed", err, map[string]interface{}{
				"review_id": id,
				"user_id":   userID,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "review")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"review": review})
}

// Delete deletes a review (author only)
// DELETE /api/v1/reviews/:id
func (ctrl *ReviewController) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 리뷰 ID입니다")
		return
	}

	if err := ctrl.reviewService.DeleteReview(uint(id), userID); err != nil {
		switch {
		case errors.Is(err, service.ErrReviewNotFound):
			apperrors.NotFound(c, apperrors.ReviewNotFound, "리뷰를 찾을 수 없습니다")
		case errors.Is(err, service.ErrNotOwner):
			apperrors.RespondWithError(c, http.StatusForbidden, apperrors.AuthzOwnerOnly, "작성자만 삭제할 수 있습니다")
		default:
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "review")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "리뷰가 삭제되었습니다"})
}
