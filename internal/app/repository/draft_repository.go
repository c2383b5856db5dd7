package repository

import (
	"github.com/chaekdam/chaekdam-backend/internal/app/model"

	"gorm.io/gorm"
)

type DraftRepository struct {
	db *gorm.DB
}

func NewDraftRepository(db *gorm.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

// CreateDraft 임시 저장 리뷰 생성
func (r *DraftRepository) CreateDraft(draft *model.ReviewDraft) error {
	return r.db.Create(draft).Error
}

// GetDraftByID ID로 임시 저장 리뷰 조회
func (r *DraftRepository) GetDraftByID(id uint) (*model.ReviewDraft, error) {
	var draft model.ReviewDraft
	err := r.db.
		Preload("Author").
		Preload("Book").
		Preload("Tags").
		First(&draft, id).Error
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// GetDraftsByAuthorID 작성자별 임시 저장 목록 조회
func (r *DraftRepository) GetDraftsByAuthorID(authorID uint) ([]model.ReviewDraft, error) {
	var drafts []model.ReviewDraft
	err := r.db.
		Preload("Book").
		Preload("Tags").
		Where("author_id = ?", authorID).
		Order("updated_at DESC").
		Find(&drafts).Error
	if err != nil {
		return nil, err
	}
	return drafts, nil
}

// UpdateDraft 임시 저장 리뷰 수정
func (r *DraftRepository) UpdateDraft(draft *model.ReviewDraft) error {
	return r.db.Save(draft).Error
}

// ReplaceTags 임시 저장 리뷰의 태그 연결을 전체 교체
func (r *DraftRepository) ReplaceTags(draft *model.ReviewDraft, tags []model.Tag) error {
	return r.db.Model(draft).Association("Tags").Replace(tags)
}

// DeleteDraft 임시 저장 리뷰 삭제
func (r *DraftRepository) DeleteDraft(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var draft model.ReviewDraft
		if err := tx.First(&draft, id).Error; err != nil {
			return err
		}

		// 태그 연결 해제
		if err := tx.Model(&draft).Association("Tags").Clear(); err != nil {
			return err
		}

		return tx.Delete(&draft).Error
	})
}
