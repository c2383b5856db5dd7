package repository

import (
	"github.com/chaekdam/chaekdam-backend/internal/app/model"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// CreateReview 리뷰 생성 (태그 연결 포함)
func (r *ReviewRepository) CreateReview(review *model.Review) error {
	return r.db.Create(review).Error
}

// GetReviewByID ID로 리뷰 조회
func (r *ReviewRepository) GetReviewByID(id uint) (*model.Review, error) {
	var review model.Review
	err := r.db.
		Preload("Author").
		Preload("Book").
		Preload("Book.Category").
		Preload("Tags").
		Preload("Rating").
		First(&review, id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// GetReviewsByBookID 책별 리뷰 목록 조회
func (r *ReviewRepository) GetReviewsByBookID(bookID uint, offset, limit int) ([]model.Review, int64, error) {
	var reviews []model.Review
	var total int64

	query := r.db.Model(&model.Review{}).Where("book_id = ?", bookID)

	// 전체 개수
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 데이터 조회
	err := query.
		Preload("Author").
		Preload("Tags").
		Preload("Rating").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// GetReviewsByAuthorID 작성자별 리뷰 목록 조회
func (r *ReviewRepository) GetReviewsByAuthorID(authorID uint, offset, limit int) ([]model.Review, int64, error) {
	var reviews []model.Review
	var total int64

	query := r.db.Model(&model.Review{}).Where("author_id = ?", authorID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Book").
		Preload("Tags").
		Preload("Rating").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// CountByAuthorID 작성자의 리뷰 개수 (배지 부여 판단에 사용)
func (r *ReviewRepository) CountByAuthorID(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Review{}).Where("author_id = ?", authorID).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateReview 리뷰 수정
func (r *ReviewRepository) UpdateReview(review *model.Review) error {
	return r.db.Save(review).Error
}

// ReplaceTags 리뷰의 태그 연결을 전체 교체
func (r *ReviewRepository) ReplaceTags(review *model.Review, tags []model.Tag) error {
	return r.db.Model(review).Association("Tags").Replace(tags)
}

// DeleteReview 리뷰 삭제
// 평점 행과 태그 연결을 함께 정리함
func (r *ReviewRepository) DeleteReview(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var review model.Review
		if err := tx.First(&review, id).Error; err != nil {
			return err
		}

		// 평점 행 삭제
		if err := tx.Where("review_id = ?", id).Delete(&model.Rating{}).Error; err != nil {
			return err
		}

		// 태그 연결 해제
		if err := tx.Model(&review).Association("Tags").Clear(); err != nil {
			return err
		}

		return tx.Delete(&review).Error
	})
}
