package repository

import (
	"github.com/chaekdam/chaekdam-backend/internal/app/model"

	"gorm.io/gorm"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// CreateRating 평점 생성
func (r *RatingRepository) CreateRating(rating *model.Rating) error {
	return r.db.Create(rating).Error
}

// GetRatingByID ID로 평점 조회
func (r *RatingRepository) GetRatingByID(id uint) (*model.Rating, error) {
	var rating model.Rating
	err := r.db.First(&rating, id).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetRatingByReviewID 리뷰 ID로 평점 조회
func (r *RatingRepository) GetRatingByReviewID(reviewID uint) (*model.Rating, error) {
	var rating model.Rating
	err := r.db.Where("review_id = ?", reviewID).First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// UpdateRating 평점 수정
func (r *RatingRepository) UpdateRating(rating *model.Rating) error {
	return r.db.Save(rating).Error
}

// DeleteRating 평점 삭제
func (r *RatingRepository) DeleteRating(id uint) error {
	return r.db.Delete(&model.Rating{}, id).Error
}

// GetAverageByBookID 책의 평균 평점 조회
func (r *RatingRepository) GetAverageByBookID(bookID uint) (float64, int64, error) {
	var count int64
	if err := r.db.Model(&model.Rating{}).Where("book_id = ?", bookID).Count(&count).Error; err != nil {
		return 0, 0, err
	}

	var avg float64
	if count > 0 {
		err := r.db.Model(&model.Rating{}).
			Where("book_id = ?", bookID).
			Select("AVG(rating)").
			Scan(&avg).Error
		if err != nil {
			return 0, 0, err
		}
	}

	return avg, count, nil
}
