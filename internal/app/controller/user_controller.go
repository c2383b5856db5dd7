package controller

import (
	"errors"
	"net/http"

	"github.com/chaekdam/chaekdam-backend/internal/app/model"
	"github.com/chaekdam/chaekdam-backend/internal/app/service"
	apperrors "github.com/chaekdam/chaekdam-backend/internal/errors"
	"github.com/chaekdam/chaekdam-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetMe returns the current user's profile
// GET /api/v1/users/me
func (ctrl *UserController) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	user, err := ctrl.userService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.UserNotFound, "사용자를 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateMe updates the current user's profile
// PATCH /api/v1/users/me
func (ctrl *UserController) UpdateMe(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid profile update request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	user, err := ctrl.userService.UpdateProfile(userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.UserNotFound, "사용자를 찾을 수 없습니다")
			return
		}
		log.Error("Profile update failed", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteMe deletes the current user's account
// DELETE /api/v1/users/me
func (ctrl *UserController) DeleteMe(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	if err := ctrl.userService.DeleteAccount(userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.UserNotFound, "사용자를 찾을 수 없습니다")
			return
		}
		log.Error("Account deletion failed", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "회원 탈퇴가 완료되었습니다",
	})
}

// GetMyBadges returns the badges the current user has earned
// GET /api/v1/users/me/badges
func (ctrl *UserController) GetMyBadges(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	badges, err := ctrl.userService.ListMyBadges(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.UserNotFound, "사용자를 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "badge")
		return
	}

	c.JSON(http.StatusOK, gin.H{"badges": badges})
}

// ChangePrimaryBadge changes the user's primary badge
// PATCH /api/v1/users/me/primary-badge
func (ctrl *UserController) ChangePrimaryBadge(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var req model.ChangePrimaryBadgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	user, err := ctrl.userService.ChangePrimaryBadge(userID, req.PrimaryBadgeID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBadgeNotFound):
			apperrors.NotFound(c, apperrors.BadgeNotFound, "배지를 찾을 수 없습니다")
		case errors.Is(err, service.ErrBadgeNotOwned):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "획득하지 않은 배지입니다")
		default:
			log.Error("Primary badge change failed", err, map[string]interface{}{
				"user_id":  userID,
				"badge_id": req.PrimaryBadgeID,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "badge")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// ChangeFavoriteBook changes the user's favorite book
// PATCH /api/v1/users/me/favorite-book
func (ctrl *UserController) ChangeFavoriteBook(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var req model.ChangeFavoriteBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	user, err := ctrl.userService.ChangeFavoriteBook(userID, req.FavoriteBookID)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			apperrors.NotFound(c, apperrors.BookNotFound, "책을 찾을 수 없습니다")
			return
		}
		log.Error("Favorite book change failed", err, map[string]interface{}{
			"user_id": userID,
			"book_id": req.FavoriteBookID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "book")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// ListBadges returns all badges
// GET /api/v1/badges
func (ctrl *UserController) ListBadges(c *gin.Context) {
	badges, err := ctrl.userService.ListBadges()
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "badge")
		return
	}

	c.JSON(http.StatusOK, gin.H{"badges": badges})
}
