package service

import (
	"errors"

	"github.com/chaekdam/chaekdam-backend/internal/app/model"
	"github.com/chaekdam/chaekdam-backend/internal/app/repository"
	"gorm.io/gorm"
)

var ErrRatingNotFound = errors.New("rating not found")

type RatingService struct {
	ratingRepo *repository.RatingRepository
	reviewRepo *repository.ReviewRepository
	bookRepo   repository.BookRepository
}

func NewRatingService(
	ratingRepo *repository.RatingRepository,
	reviewRepo *repository.ReviewRepository,
	bookRepo repository.BookRepository,
) *RatingService {
	return &RatingService{
		ratingRepo: ratingRepo,
		reviewRepo: reviewRepo,
		bookRepo:   bookRepo,
	}
}

// GetRating 평점 조회
func (s *RatingService) GetRating(id uint) (*model.Rating, error) {
	rating, err := s.ratingRepo.GetRatingByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return rating, nil
}

// GetBookAverage 책의 평균 평점과 평점 개수 조회
func (s *RatingService) GetBookAverage(bookID uint) (float64, int64, error) {
	if _, err := s.bookRepo.FindByID(bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, ErrBookNotFound
		}
		return 0, 0, err
	}
	return s.ratingRepo.GetAverageByBookID(bookID)
}

// CreateRating 평점 등록 (리뷰 작성자만 가능)
// 리뷰 작성 시 평점 행이 같이 만들어지므로 이미 있으면 그 행을 갱신함
func (s *RatingService) CreateRating(actorID uint, req *model.CreateRatingRequest) (*model.Rating, error) {
	return s.UpdateRating(req.ReviewID, actorID, req.Rating)
}

// UpdateRatingByID 평점 ID로 수정 (리뷰 작성자만 가능)
func (s *RatingService) UpdateRatingByID(ratingID, actorID uint, value int) (*model.Rating, error) {
	rating, err := s.ratingRepo.GetRatingByID(ratingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return s.UpdateRating(rating.ReviewID, actorID, value)
}

// UpdateRating 평점 수정 (리뷰 작성자만 가능)
// 해당 리뷰에 평점 행이 없으면 새로 만듦
func (s *RatingService) UpdateRating(reviewID, actorID uint, value int) (*model.Rating, error) {
	review, err := s.reviewRepo.GetReviewByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	if err := assertOwner(review.AuthorID, actorID); err != nil {
		return nil, err
	}

	if value < 1 || value > 5 {
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
			Rating:   value,
		}
		if err := s.ratingRepo.CreateRating(rating); err != nil {
			return nil, err
		}
		return rating, nil
	}

	rating.Rating = value
	if err := s.ratingRepo.UpdateRating(rating); err != nil {
		return nil, err
	}
	return rating, nil
}
