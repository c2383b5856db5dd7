package repository

import (
	"github.com/chaekdam/chaekdam-backend/internal/app/model"
	"github.com/chaekdam/chaekdam-backend/pkg/logger"
	"gorm.io/gorm"
)

type BookRepository interface {
	Create(book *model.Book) error
	FindByID(id uint) (*model.Book, error)
	FindByISBN(isbn string) (*model.Book, error)
	List(offset, limit int, categoryID uint, keyword string) ([]model.Book, int64, error)
	Update(book *model.Book) error
	Delete(id uint) error
	ListAllISBNs() ([]string, error)
	BulkCreate(books []model.Book, batchSize int) error
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(book *model.Book) error {
	logger.Debug("Creating book in database", map[string]interface{}{
		"isbn":  book.ISBN,
		"title": book.Title,
	})

	if err := r.db.Create(book).Error; err != nil {
		logger.Error("Failed to create book in database", err, map[string]interface{}{
			"isbn": book.ISBN,
		})
		return err
	}

	logger.Debug("Book created in database", map[string]interface{}{
		"book_id": book.ID,
		"isbn":    book.ISBN,
	})
	return nil
}

func (r *bookRepository) FindByID(id uint) (*model.Book, error) {
	var book model.Book
	err := r.db.Preload("Category").First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) FindByISBN(isbn string) (*model.Book, error) {
	var book model.Book
	err := r.db.Preload("Category").Where("isbn = ?", isbn).First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// List 책 목록 조회 (카테고리/키워드 필터 선택)
func (r *bookRepository) List(offset, limit int, categoryID uint, keyword string) ([]model.Book, int64, error) {
	var books []model.Book
	var total int64

	query := r.db.Model(&model.Book{})
	if categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	if keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("title LIKE ? OR author LIKE ?", like, like)
	}

	// 전체 개수
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 데이터 조회
	err := query.Preload("Category").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&books).Error
	if err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

func (r *bookRepository) Update(book *model.Book) error {
	if err := r.db.Save(book).Error; err != nil {
		logger.Error("Failed to update book in database", err, map[string]interface{}{
			"book_id": book.ID,
		})
		return err
	}
	return nil
}

func (r *bookRepository) Delete(id uint) error {
	return r.db.Delete(&model.Book{}, id).Error
}

// BulkCreate 대량 등록 (시드 스크립트에서 사용)
func (r *bookRepository) BulkCreate(books []model.Book, batchSize int) error {
	if len(books) == 0 {
		return nil
	}
	if err := r.db.CreateInBatches(books, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create books in database", err, map[string]interface{}{
			"count": len(books),
		})
		return err
	}
	return nil
}

// ListAllISBNs 카탈로그 동기화 스케줄러에서 사용
func (r *bookRepository) ListAllISBNs() ([]string, error) {
	var isbns []string
	err := r.db.Model(&model.Book{}).Order("id ASC").Pluck("isbn", &isbns).Error
	if err != nil {
		return nil, err
	}
	return isbns, nil
}
