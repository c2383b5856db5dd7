package repository

import (
	"github.com/chaekdam/chaekdam-backend/internal/app/model"
	"gorm.io/gorm"
)

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// CreateTag 태그 생성
func (r *TagRepository) CreateTag(tag *model.Tag) error {
	return r.db.Create(tag).Error
}

// GetTagByID ID로 태그 조회
func (r *TagRepository) GetTagByID(id uint) (*model.Tag, error) {
	var tag model.Tag
	err := r.db.First(&tag, id).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindOrCreateByName 이름으로 태그를 찾고 없으면 생성
// name 컬럼의 유니크 인덱스가 동시 생성 경합을 막아줌
func (r *TagRepository) FindOrCreateByName(name string) (*model.Tag, error) {
	var tag model.Tag
	err := r.db.Where("name = ?", name).
		FirstOrCreate(&tag, model.Tag{Name: name}).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindOrCreateByNames 여러 태그를 이름순으로 정리하며 일괄 처리
func (r *TagRepository) FindOrCreateByNames(names []string) ([]model.Tag, error) {
	tags := make([]model.Tag, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		tag, err := r.FindOrCreateByName(name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}

// GetAllTags 전체 태그 목록 조회
func (r *TagRepository) GetAllTags() ([]model.Tag, error) {
	var tags []model.Tag
	err := r.db.Order("name ASC").Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// UpdateTag 태그 수정
func (r *TagRepository) UpdateTag(tag *model.Tag) error {
	return r.db.Save(tag).Error
}

// DeleteTag 태그 삭제
func (r *TagRepository) DeleteTag(id uint) error {
	return r.db.Delete(&model.Tag{}, id).Error
}
