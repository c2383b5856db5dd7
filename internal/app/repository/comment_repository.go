package repository

import (
	"github.com/chaekdam/chaekdam-backend/internal/app/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// CreateComment 댓글 생성
func (r *CommentRepository) CreateComment(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

// GetCommentByID ID로 댓글 조회
func (r *CommentRepository) GetCommentByID(id uint) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.Preload("Author").First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByReplyID 의견별 댓글 목록 조회
func (r *CommentRepository) GetCommentsByReplyID(replyID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.
		Preload("Author").
		Where("reply_id = ?", replyID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// UpdateComment 댓글 수정
func (r *CommentRepository) UpdateComment(comment *model.Comment) error {
	return r.db.Save(comment).Error
}

// DeleteComment 댓글 삭제
func (r *CommentRepository) DeleteComment(id uint) error {
	return r.db.Delete(&model.Comment{}, id).Error
}
