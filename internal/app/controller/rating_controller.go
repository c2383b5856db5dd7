package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chaekdam/chaekdam-backend/internal/app/model"
	"github.com/chaekdam/chaekdam-backend/internal/app/service"
	apperrors "github.com/chaekdam/chaekdam-backend/internal/errors"
	"github.com/chaekdam/chaekdam-backend/internal/middleware"
	"github.com/chaekdam/chaekdam-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

type RatingController struct {
	ratingService *service.RatingService
}

func NewRatingController(ratingService *service.RatingService) *RatingController {
	return &RatingController{
		ratingService: ratingService,
	}
}

// GetBookAverage returns the average rating of a book
// GET /api/v1/ratings/book/:bookId
func (ctrl *RatingController) GetBookAverage(c *gin.Context) {
	bookID, err := strconv.ParseUint(c.Param("bookId"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 책 ID입니다")
		return
	}

	average, count, err := ctrl.ratingService.GetBookAverage(uint(bookID))
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			apperrors.NotFound(c, apperrors.BookNotFound, "책을 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "rating")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"book_id": bookID,
		"average": average,
		"count":   count,
	})
}

// Create registers a rating for a review (review author only)
// POST /api/v1/ratings
func (ctrl *RatingController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var req model.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.RatingInvalidRange, "평점은 1에서 5 사이여야 합니다")
		return
	}

	rating, err := ctrl.ratingService.CreateRating(userID, &req)
	if err != nil {
		ctrl.respondRatingError(c, log, err, req.ReviewID, userID)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"rating": rating})
}

// UpdateByID updates a rating by its own ID (review author only)
// PUT /api/v1/ratings/:id
func (ctrl *RatingController) UpdateByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 평점 ID입니다")
		return
	}

	var req model.UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.RatingInvalidRange, "평점은 1에서 5 사이여야 합니다")
		return
	}

	rating, err := ctrl.ratingService.UpdateRatingByID(uint(id), userID, req.Rating)
	if err != nil {
		if errors.Is(err, service.ErrRatingNotFound) {
			apperrors.NotFound(c, apperrors.RatingNotFound, "평점을 찾을 수 없습니다")
			return
		}
		ctrl.respondRatingError(c, log, err, uint(id), userID)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rating": rating})
}

// Update sets the rating of a review (review author only)
// PUT /api/v1/ratings/review/:reviewId
func (ctrl *RatingController) Update(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	reviewID, err := strconv.ParseUint(c.Param("reviewId"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 리뷰 ID입니다")
		return
	}

	var req model.UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.RatingInvalidRange, "평점은 1에서 5 사이여야 합니다")
		return
	}

	rating, err := ctrl.ratingService.UpdateRating(uint(reviewID), userID, req.Rating)
	if err != nil {
		ctrl.respondRatingError(c, log, err, uint(reviewID), userID)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rating": rating})
}

func (ctrl *RatingController) respondRatingError(c *gin.Context, log *logger.Logger, err error, id, userID uint) {
	switch {
	case errors.Is(err, service.ErrReviewNotFound):
		apperrors.NotFound(c, apperrors.ReviewNotFound, "리뷰를 찾을 수 없습니다")
	case errors.Is(err, service.ErrNotOwner):
		apperrors.RespondWithError(c, http.StatusForbidden, apperrors.AuthzOwnerOnly, "작성자만 평점을 변경할 수 있습니다")
	case errors.Is(err, service.ErrInvalidRating):
		apperrors.BadRequest(c, apperrors.RatingInvalidRange, "평점은 1에서 5 사이여야 합니다")
	default:
		log.Error("Rating request failed", err, map[string]interface{}{
			"id":      id,
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "rating")
	}
}
