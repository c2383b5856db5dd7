package service

import (
	"errors"

	"github.com/chaekdam/chaekdam-backend/internal/app/model"
	"github.com/chaekdam/chaekdam-backend/internal/app/repository"
	"github.com/chaekdam/chaekdam-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentService struct {
	commentRepo *repository.CommentRepository
	replyRepo   *repository.ReplyRepository
}

func NewCommentService(commentRepo *repository.CommentRepository, replyRepo *repository.ReplyRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		replyRepo:   replyRepo,
	}
}

// CreateComment 의견에 댓글 작성
func (s *CommentService) CreateComment(authorID uint, req *model.CreateCommentRequest) (*model.Comment, error) {
	if _, err := s.replyRepo.GetReplyByID(req.ReplyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReplyNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		Comment:  req.Comment,
		AuthorID: authorID,
		ReplyID:  req.ReplyID,
	}
	if err := s.commentRepo.CreateComment(comment); err != nil {
		return nil, err
	}

	logger.Info("Comment created", map[string]interface{}{
		"comment_id": comment.ID,
		"reply_id":   req.ReplyID,
		"author_id":  authorID,
	})

	return s.commentRepo.GetCommentByID(comment.ID)
}

// GetComment 댓글 단건 조회
func (s *CommentService) GetComment(id uint) (*model.Comment, error) {
	comment, err := s.commentRepo.GetCommentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return comment, nil
}

// GetReplyComments 의견별 댓글 목록 조회
func (s *CommentService) GetReplyComments(replyID uint) ([]model.Comment, error) {
	if _, err := s.replyRepo.GetReplyByID(replyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReplyNotFound
		}
		return nil, err
	}
	return s.commentRepo.GetCommentsByReplyID(replyID)
}

// UpdateComment 댓글 수정 (작성자만 가능)
func (s *CommentService) UpdateComment(commentID, actorID uint, content string) (*model.Comment, error) {
	comment, err := s.commentRepo.GetCommentByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	if err := assertOwner(comment.AuthorID, actorID); err != nil {
		logger.Warn("Comment update rejected: not the author", map[string]interface{}{
			"comment_id": commentID,
			"author_id":  comment.AuthorID,
			"actor_id":   actorID,
		})
		return nil, err
	}

	comment.Comment = content
	if err := s.commentRepo.UpdateComment(comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetCommentByID(commentID)
}

// DeleteComment 댓글 삭제 (작성자만 가능)
func (s *CommentService) DeleteComment(commentID, actorID uint) error {
	comment, err := s.commentRepo.GetCommentByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if err := assertOwner(comment.AuthorID, actorID); err != nil {
		logger.Warn("Comment delete rejected: not the author", map[string]interface{}{
			"comment_id": commentID,
			"author_id":  comment.AuthorID,
			"actor_id":   actorID,
		})
		return err
	}

	return s.commentRepo.DeleteComment(commentID)
}
