package service

import (
	"errors"

	"github.com/chaekdam/chaekdam-backend/internal/app/model"
	"github.com/chaekdam/chaekdam-backend/internal/app/repository"
	"github.com/chaekdam/chaekdam-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
)

type ReviewService struct {
	reviewRepo *repository.ReviewRepository
	bookRepo   repository.BookRepository
	userRepo   repository.UserRepository
	tagRepo    *repository.TagRepository
	ratingRepo *repository.RatingRepository
	userSvc    UserService
}

func NewReviewService(
	reviewRepo *repository.ReviewRepository,
	bookRepo repository.BookRepository,
	userRepo repository.UserRepository,
	tagRepo *repository.TagRepository,
	ratingRepo *repository.RatingRepository,
	userSvc UserService,
) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		bookRepo:   bookRepo,
		userRepo:   userRepo,
		tagRepo:    tagRepo,
		ratingRepo: ratingRepo,
		userSvc:    userSvc,
	}
}

// CreateReview 리뷰 작성
// 책/작성자 확인 → 평점 검증 → 태그 정리 → 리뷰 생성 → 평점 행 생성 순서
func (s *ReviewService) CreateReview(authorID uint, req *model.CreateReviewRequest) (*model.Review, error) {
	// 책 존재 확인
	if _, err := s.bookRepo.FindByID(req.BookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	// 작성자 확인
	if _, err := s.userRepo.FindByID(authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// 평점 범위 검증
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	// 태그 정리 (없는 태그는 생성)
	tags, err := s.tagRepo.FindOrCreateByNames(req.Tags)
	if err != nil {
		return nil, err
	}

	// 리뷰 생성
	review := &model.Review{
		BookID:      req.BookID,
		AuthorID:    authorID,
		Title:       req.Title,
		Description: req.Description,
		ImageURLs:   req.ImageURLs,
		Tags:        tags,
	}
	if err := s.reviewRepo.CreateReview(review); err != nil {
		return nil, err
	}

	// 평점은 별도 행으로 저장
	rating := &model.Rating{
		BookID:   req.BookID,
		ReviewID: review.ID,
		Rating:   req.Rating,
	}
	if err := s.ratingRepo.CreateRating(rating); err != nil {
		return nil, err
	}

	logger.Info("Review created", map[string]interface{}{
		"review_id": review.ID,
		"book_id":   req.BookID,
		"author_id": authorID,
		"rating":    req.Rating,
	})

	// 리뷰 개수 배지 부여 (실패해도 리뷰 작성은 성공 처리)
	if count, err := s.reviewRepo.CountByAuthorID(authorID); err == nil {
		if err := s.userSvc.AwardReviewBadges(authorID, count); err != nil {
			logger.Warn("Failed to award review badges", map[string]interface{}{
				"author_id": authorID,
				"error":     err.Error(),
			})
		}
	}

	return s.reviewRepo.GetReviewByID(review.ID)
}

// GetReview 리뷰 조회
func (s *ReviewService) GetReview(id uint) (*model.Review, error) {
	review, err := s.reviewRepo.GetReviewByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return review, nil
}

// GetBookReviews 책별 리뷰 목록 조회
func (s *ReviewService) GetBookReviews(bookID uint, page, pageSize int) ([]model.Review, int64, error) {
	if _, err := s.bookRepo.FindByID(bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrBookNotFound
		}
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return s.reviewRepo.GetReviewsByBookID(bookID, offset, pageSize)
}

// GetUserReviews 작성자별 리뷰 목록 조회
func (s *ReviewService) GetUserReviews(authorID uint, page, pageSize int) ([]model.Review, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return s.reviewRepo.GetReviewsByAuthorID(authorID, offset, pageSize)
}

// UpdateReview 리뷰 수정 (작성자만 가능)
// 태그를 보내면 기존 연결을 전부 교체하고, 평점은 기존 행을 갱신함
func (s *ReviewService) UpdateReview(reviewID, actorID uint, req *model.UpdateReviewRequest) (*model.Review, error) {
	review, err := s.reviewRepo.GetReviewByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	if err := assertOwner(review.AuthorID, actorID); err != nil {
		logger.Warn("Review update rejected: not the author", map[string]interface{}{
			"review_id": reviewID,
			"author_id": review.AuthorID,
			"actor_id":  actorID,
		})
		return nil, err
	}

	if req.Title != nil {
		review.Title = *req.Title
	}
	if req.Description != nil {
		review.Description = *req.Description
	}
	if req.ImageURLs != nil {
		review.ImageURLs = req.ImageURLs
	}

	// 평점 수정: 기존 행이 있으면 갱신, 없으면 새로 생성
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, ErrInvalidRating
		}

		rating, err := s.ratingRepo.GetRatingByReviewID(reviewID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			rating = &model.Rating{
				BookID:   review.BookID,
				ReviewID: reviewID,
				Rating:   *req.Rating,
			}
			if err := s.ratingRepo.CreateRating(rating); err != nil {
				return nil, err
			}
		} else {
			rating.Rating = *req.Rating
			if err := s.ratingRepo.UpdateRating(rating); err != nil {
				return nil, err
			}
		}
	}

	// 태그 전체 교체
	if req.Tags != nil {
		tags, err := s.tagRepo.FindOrCreateByNames(req.Tags)
		if err != nil {
			return nil, err
		}
		if err := s.reviewRepo.ReplaceTags(review, tags); err != nil {
			return nil, err
		}
	}

	review.Tags = nil // Save가 태그 연결을 다시 건드리지 않도록
	review.Rating = nil
	if err := s.reviewRepo.UpdateReview(review); err != nil {
		return nil, err
	}

	return s.reviewRepo.GetReviewByID(reviewID)
}

// DeleteReview 리뷰 삭제 (작성자만 가능)
func (s *ReviewService) DeleteReview(reviewID, actorID uint) error {
	review, err := s.reviewRepo.GetReviewByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	if err := assertOwner(review.AuthorID, actorID); err != nil {
		logger.Warn("Review delete rejected: not the author", map[string]interface{}{
			"review_id": reviewID,
			"author_id": review.AuthorID,
			"actor_id":  actorID,
		})
		return err
	}

	return s.reviewRepo.DeleteReview(reviewID)
}
