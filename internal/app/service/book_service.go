package service

import (
	"context"
	"errors"
	"time"

	"github.com/chaekdam/chaekdam-backend/internal/app/model"
	"github.com/chaekdam/chaekdam-backend/internal/app/repository"
	"github.com/chaekdam/chaekdam-backend/pkg/logger"
	"github.com/chaekdam/chaekdam-backend/pkg/naver"
	"gorm.io/gorm"
)

var (
	ErrBookNotFound      = errors.New("book not found")
	ErrBookAlreadyExists = errors.New("book already exists")
	ErrCategoryNotFound  = errors.New("category not found")
)

// BookProvider 외부 도서 검색 API 추상화
type BookProvider interface {
	Search(ctx context.Context, query string, display, start int, sort string) (*naver.SearchResult, error)
	SearchByISBN(ctx context.Context, isbn string) (*naver.BookItem, error)
}

type BookService interface {
	SearchBooks(ctx context.Context, query string, display, start int, sort string) (*naver.SearchResult, error)
	ImportByISBN(ctx context.Context, isbn string) (*model.Book, error)
	GetBook(id uint) (*model.Book, error)
	GetBookByISBN(ctx context.Context, isbn string) (*model.Book, error)
	ListBooks(page, pageSize int, categoryID uint, keyword string) ([]model.Book, int64, error)
	UpdateBook(id uint, req *model.UpdateBookRequest) (*model.Book, error)
	DeleteBook(id uint) error
	RefreshMetadata(ctx context.Context, isbn string) error
}

type bookService struct {
	bookRepo     repository.BookRepository
	categoryRepo *repository.CategoryRepository
	provider     BookProvider
}

func NewBookService(
	bookRepo repository.BookRepository,
	categoryRepo *repository.CategoryRepository,
	provider BookProvider,
) BookService {
	return &bookService{
		bookRepo:     bookRepo,
		categoryRepo: categoryRepo,
		provider:     provider,
	}
}

// SearchBooks 외부 검색 API로 도서 검색 (DB 저장 없음)
func (s *bookService) SearchBooks(ctx context.Context, query string, display, start int, sort string) (*naver.SearchResult, error) {
	return s.provider.Search(ctx, query, display, start, sort)
}

// ImportByISBN 외부 검색 API에서 책을 찾아 DB에 등록
// 이미 등록된 ISBN이면 ErrBookAlreadyExists
func (s *bookService) ImportByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	logger.Info("Importing book by ISBN", map[string]interface{}{
		"isbn": isbn,
	})

	// 중복 확인
	existing, err := s.bookRepo.FindByISBN(isbn)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		logger.Warn("Book import rejected: ISBN already exists", map[string]interface{}{
			"isbn":    isbn,
			"book_id": existing.ID,
		})
		return nil, ErrBookAlreadyExists
	}

	// 외부 API 조회
	item, err := s.provider.SearchByISBN(ctx, isbn)
	if err != nil {
		if errors.Is(err, naver.ErrBookNotFound) {
			logger.Warn("Book not found in search provider", map[string]interface{}{
				"isbn": isbn,
			})
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	// 분류 정보가 없으므로 기본 카테고리에 소속시킴
	category, err := s.categoryRepo.FindOrCreateByName(model.DefaultCategoryName)
	if err != nil {
		return nil, err
	}

	book := &model.Book{
		Title:       item.Title,
		Link:        item.Link,
		Image:       item.Image,
		Author:      item.Author,
		Publisher:   item.Publisher,
		PubDate:     item.PubDate,
		ISBN:        item.ISBN,
		Description: item.Description,
		CategoryID:  category.ID,
	}

	if err := s.bookRepo.Create(book); err != nil {
		return nil, err
	}

	logger.Info("Book imported successfully", map[string]interface{}{
		"book_id": book.ID,
		"isbn":    book.ISBN,
		"title":   book.Title,
	})

	return s.bookRepo.FindByID(book.ID)
}

func (s *bookService) GetBook(id uint) (*model.Book, error) {
	book, err := s.bookRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}

// GetBookByISBN ISBN으로 조회하고 DB에 없으면 외부 API에서 가져와 등록
func (s *bookService) GetBookByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	book, err := s.bookRepo.FindByISBN(isbn)
	if err == nil {
		return book, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	logger.Debug("Book not in catalog, falling back to search provider", map[string]interface{}{
		"isbn": isbn,
	})
	return s.ImportByISBN(ctx, isbn)
}

func (s *bookService) ListBooks(page, pageSize int, categoryID uint, keyword string) ([]model.Book, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return s.bookRepo.List(offset, pageSize, categoryID, keyword)
}

// UpdateBook 책 정보 부분 수정 (관리자)
func (s *bookService) UpdateBook(id uint, req *model.UpdateBookRequest) (*model.Book, error) {
	book, err := s.bookRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.Link != nil {
		book.Link = *req.Link
	}
	if req.Image != nil {
		book.Image = *req.Image
	}
	if req.Author != nil {
		book.Author = *req.Author
	}
	if req.Publisher != nil {
		book.Publisher = *req.Publisher
	}
	if req.Description != nil {
		book.Description = *req.Description
	}
	if req.PubDate != nil {
		pubDate, err := time.Parse("2006-01-02", *req.PubDate)
		if err != nil {
			return nil, err
		}
		book.PubDate = pubDate
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetCategoryByID(*req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		book.CategoryID = *req.CategoryID
	}

	if err := s.bookRepo.Update(book); err != nil {
		return nil, err
	}

	return s.bookRepo.FindByID(id)
}

func (s *bookService) DeleteBook(id uint) error {
	if _, err := s.bookRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return err
	}
	return s.bookRepo.Delete(id)
}

// RefreshMetadata 외부 API 기준으로 책 메타데이터 갱신
// 카탈로그 동기화 스케줄러에서 호출됨
func (s *bookService) RefreshMetadata(ctx context.Context, isbn string) error {
	book, err := s.bookRepo.FindByISBN(isbn)
	if err != nil {
		return err
	}

	item, err := s.provider.SearchByISBN(ctx, isbn)
	if err != nil {
		if errors.Is(err, naver.ErrBookNotFound) {
			// 검색 API에서 내려간 책은 그대로 둠
			logger.Debug("Book no longer in search provider, keeping local copy", map[string]interface{}{
				"isbn": isbn,
			})
			return nil
		}
		return err
	}

	book.Title = item.Title
	book.Link = item.Link
	book.Image = item.Image
	book.Author = item.Author
	book.Publisher = item.Publisher
	book.Description = item.Description
	if !item.PubDate.IsZero() {
		book.PubDate = item.PubDate
	}

	return s.bookRepo.Update(book)
}
