package service

import (
	"errors"

	"github.com/chaekdam/chaekdam-backend/internal/app/model"
	"github.com/chaekdam/chaekdam-backend/internal/app/repository"
	"github.com/chaekdam/chaekdam-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrDraftNotFound = errors.New("draft not found")

type DraftService struct {
	draftRepo *repository.DraftRepository
	bookRepo  repository.BookRepository
	tagRepo   *repository.TagRepository
	reviewSvc *ReviewService
}

func NewDraftService(
	draftRepo *repository.DraftRepository,
	bookRepo repository.BookRepository,
	tagRepo *repository.TagRepository,
	reviewSvc *ReviewService,
) *DraftService {
	return &DraftService{
		draftRepo: draftRepo,
		bookRepo:  bookRepo,
		tagRepo:   tagRepo,
		reviewSvc: reviewSvc,
	}
}

// CreateDraft 리뷰 임시 저장
// 발행 전이므로 평점은 임시 저장 행 자체에 보관함
func (s *DraftService) CreateDraft(authorID uint, req *model.CreateDraftRequest) (*model.ReviewDraft, error) {
	if _, err := s.bookRepo.FindByID(req.BookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	tags, err := s.tagRepo.FindOrCreateByNames(req.Tags)
	if err != nil {
		return nil, err
	}

	draft := &model.ReviewDraft{
		BookID:      req.BookID,
		AuthorID:    authorID,
		Title:       req.Title,
		Description: req.Description,
		Rating:      req.Rating,
		Tags:        tags,
	}
	if err := s.draftRepo.CreateDraft(draft); err != nil {
		return nil, err
	}

	logger.Info("Review draft created", map[string]interface{}{
		"draft_id":  draft.ID,
		"book_id":   req.BookID,
		"author_id": authorID,
	})

	return s.draftRepo.GetDraftByID(draft.ID)
}

// GetDraft 임시 저장 리뷰 조회 (작성자만 가능)
func (s *DraftService) GetDraft(draftID, actorID uint) (*model.ReviewDraft, error) {
	draft, err := s.draftRepo.GetDraftByID(draftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, err
	}

	if err := assertOwner(draft.AuthorID, actorID); err != nil {
		return nil, err
	}
	return draft, nil
}

// ListDrafts 내 임시 저장 목록 조회
func (s *DraftService) ListDrafts(authorID uint) ([]model.ReviewDraft, error) {
	return s.draftRepo.GetDraftsByAuthorID(authorID)
}

// UpdateDraft 임시 저장 리뷰 수정 (작성자만 가능)
// 평점 변경은 임시 저장 행만 갱신하며 발행된 리뷰에는 영향이 없음
func (s *DraftService) UpdateDraft(draftID, actorID uint, req *model.UpdateDraftRequest) (*model.ReviewDraft, error) {
	draft, err := s.draftRepo.GetDraftByID(draftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, err
	}

	if err := assertOwner(draft.AuthorID, actorID); err != nil {
		logger.Warn("Draft update rejected: not the author", map[string]interface{}{
			"draft_id":  draftID,
			"author_id": draft.AuthorID,
			"actor_id":  actorID,
		})
		return nil, err
	}

	if req.Title != nil {
		draft.Title = *req.Title
	}
	if req.Description != nil {
		draft.Description = *req.Description
	}
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, ErrInvalidRating
		}
		draft.Rating = *req.Rating
	}

	if req.Tags != nil {
		tags, err := s.tagRepo.FindOrCreateByNames(req.Tags)
		if err != nil {
			return nil, err
		}
		if err := s.draftRepo.ReplaceTags(draft, tags); err != nil {
			return nil, err
		}
	}

	draft.Tags = nil
	if err := s.draftRepo.UpdateDraft(draft); err != nil {
		return nil, err
	}

	return s.draftRepo.GetDraftByID(draftID)
}

// DeleteDraft 임시 저장 리뷰 삭제 (작성자만 가능)
func (s *DraftService) DeleteDraft(draftID, actorID uint) error {
	draft, err := s.draftRepo.GetDraftByID(draftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDraftNotFound
		}
		return err
	}

	if err := assertOwner(draft.AuthorID, actorID); err != nil {
		return err
	}

	return s.draftRepo.DeleteDraft(draftID)
}

// PublishDraft 임시 저장 리뷰를 정식 리뷰로 발행
// 리뷰 생성이 성공하면 임시 저장 행은 삭제됨
func (s *DraftService) PublishDraft(draftID, actorID uint) (*model.Review, error) {
	draft, err := s.draftRepo.GetDraftByID(draftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, err
	}

	if err := assertOwner(draft.AuthorID, actorID); err != nil {
		return nil, err
	}

	tagNames := make([]string, 0, len(draft.Tags))
	for _, tag := range draft.Tags {
		tagNames = append(tagNames, tag.Name)
	}

	review, err := s.reviewSvc.CreateReview(actorID, &model.CreateReviewRequest{
		BookID:      draft.BookID,
		Title:       draft.Title,
		Description: draft.Description,
		Rating:      draft.Rating,
		Tags:        tagNames,
	})
	if err != nil {
		return nil, err
	}

	if err := s.draftRepo.DeleteDraft(draftID); err != nil {
		logger.Warn("Failed to remove draft after publish", map[string]interface{}{
			"draft_id":  draftID,
			"review_id": review.ID,
			"error":     err.Error(),
		})
	}

	logger.Info("Draft published as review", map[string]interface{}{
		"draft_id":  draftID,
		"review_id": review.ID,
	})
	return review, nil
}
