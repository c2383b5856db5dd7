package service

import (
	"errors"

	"github.com/chaekdam/chaekdam-backend/internal/app/model"
	"github.com/chaekdam/chaekdam-backend/internal/app/repository"
	"gorm.io/gorm"
)

var ErrTagNotFound = errors.New("tag not found")

type TagService struct {
	tagRepo *repository.TagRepository
}

func NewTagService(tagRepo *repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

// ListTags 모든 태그 목록 조회
func (s *TagService) ListTags() ([]model.Tag, error) {
	return s.tagRepo.GetAllTags()
}

// GetTag 태그 조회
func (s *TagService) GetTag(id uint) (*model.Tag, error) {
	tag, err := s.tagRepo.GetTagByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	return tag, nil
}

// CreateTag 태그 생성 (같은 이름이 있으면 기존 태그 반환)
func (s *TagService) CreateTag(name string) (*model.Tag, error) {
	return s.tagRepo.FindOrCreateByName(name)
}

// UpdateTag 태그 이름 변경
func (s *TagService) UpdateTag(id uint, name string) (*model.Tag, error) {
	tag, err := s.tagRepo.GetTagByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}

	tag.Name = name
	if err := s.tagRepo.UpdateTag(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// DeleteTag 태그 삭제
func (s *TagService) DeleteTag(id uint) error {
	if _, err := s.tagRepo.GetTagByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTagNotFound
		}
		return err
	}
	return s.tagRepo.DeleteTag(id)
}
