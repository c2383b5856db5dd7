package service

import (
	"errors"

	"github.com/chaekdam/chaekdam-backend/internal/app/model"
	"github.com/chaekdam/chaekdam-backend/internal/app/repository"
	"github.com/chaekdam/chaekdam-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrReplyNotFound = errors.New("reply not found")

type ReplyService struct {
	replyRepo  *repository.ReplyRepository
	reviewRepo *repository.ReviewRepository
}

func NewReplyService(replyRepo *repository.ReplyRepository, reviewRepo *repository.ReviewRepository) *ReplyService {
	return &ReplyService{
		replyRepo:  replyRepo,
		reviewRepo: reviewRepo,
	}
}

// CreateReply 리뷰에 의견 작성
func (s *ReplyService) CreateReply(authorID uint, req *model.CreateReplyRequest) (*model.Reply, error) {
	if _, err := s.reviewRepo.GetReviewByID(req.ReviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	reply := &model.Reply{
		Reply:    req.Reply,
		AuthorID: authorID,
		ReviewID: req.ReviewID,
	}
	if err := s.replyRepo.CreateReply(reply); err != nil {
		return nil, err
	}

	logger.Info("Reply created", map[string]interface{}{
		"reply_id":  reply.ID,
		"review_id": req.ReviewID,
		"author_id": authorID,
	})

	return s.replyRepo.GetReplyByID(reply.ID)
}

// GetReply 의견 조회
func (s *ReplyService) GetReply(id uint) (*model.Reply, error) {
	reply, err := s.replyRepo.GetReplyByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReplyNotFound
		}
		return nil, err
	}
	return reply, nil
}

// GetReviewReplies 리뷰별 의견 목록 조회 (댓글 포함)
func (s *ReplyService) GetReviewReplies(reviewID uint) ([]model.Reply, error) {
	if _, err := s.reviewRepo.GetReviewByID(reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return s.replyRepo.GetRepliesByReviewID(reviewID)
}

// UpdateReply 의견 수정 (작성자만 가능)
func (s *ReplyService) UpdateReply(replyID, actorID uint, content string) (*model.Reply, error) {
	reply, err := s.replyRepo.GetReplyByID(replyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReplyNotFound
		}
		return nil, err
	}

	if err := assertOwner(reply.AuthorID, actorID); err != nil {
		logger.Warn("Reply update rejected: not the author", map[string]interface{}{
			"reply_id":  replyID,
			"author_id": reply.AuthorID,
			"actor_id":  actorID,
		})
		return nil, err
	}

	reply.Reply = content
	reply.Comments = nil
	if err := s.replyRepo.UpdateReply(reply); err != nil {
		return nil, err
	}

	return s.replyRepo.GetReplyByID(replyID)
}

// DeleteReply 의견 삭제 (작성자만 가능, 달린 댓글도 함께 삭제)
func (s *ReplyService) DeleteReply(replyID, actorID uint) error {
	reply, err := s.replyRepo.GetReplyByID(replyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReplyNotFound
		}
		return err
	}

	if err := assertOwner(reply.AuthorID, actorID); err != nil {
		logger.Warn("Reply delete rejected: not the author", map[string]interface{}{
			"reply_id":  replyID,
			"author_id": reply.AuthorID,
			"actor_id":  actorID,
		})
		return err
	}

	return s.replyRepo.DeleteReply(replyID)
}
