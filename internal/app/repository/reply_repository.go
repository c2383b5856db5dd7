package repository

import (
	"github.com/chaekdam/chaekdam-backend/internal/app/model"

	"gorm.io/gorm"
)

type ReplyRepository struct {
	db *gorm.DB
}

func NewReplyRepository(db *gorm.DB) *ReplyRepository {
	return &ReplyRepository{db: db}
}

// CreateReply 의견 생성
func (r *ReplyRepository) CreateReply(reply *model.Reply) error {
	return r.db.Create(reply).Error
}

// GetReplyByID ID로 의견 조회
func (r *ReplyRepository) GetReplyByID(id uint) (*model.Reply, error) {
	var reply model.Reply
	err := r.db.
		Preload("Author").
		Preload("Comments").
		Preload("Comments.Author").
		First(&reply, id).Error
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetRepliesByReviewID 리뷰별 의견 목록 조회 (댓글 포함)
func (r *ReplyRepository) GetRepliesByReviewID(reviewID uint) ([]model.Reply, error) {
	var replies []model.Reply
	err := r.db.
		Preload("Author").
		Preload("Comments").
		Preload("Comments.Author").
		Where("review_id = ?", reviewID).
		Order("created_at ASC").
		Find(&replies).Error
	if err != nil {
		return nil, err
	}
	return replies, nil
}

// UpdateReply 의견 수정
func (r *ReplyRepository) UpdateReply(reply *model.Reply) error {
	return r.db.Save(reply).Error
}

// DeleteReply 의견 삭제 (달린 댓글도 함께 삭제)
func (r *ReplyRepository) DeleteReply(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reply_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Reply{}, id).Error
	})
}
