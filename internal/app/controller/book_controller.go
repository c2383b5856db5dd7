package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chaekdam/chaekdam-backend/internal/app/model"
	"github.com/chaekdam/chaekdam-backend/internal/app/service"
	apperrors "github.com/chaekdam/chaekdam-backend/internal/errors"
	"github.com/chaekdam/chaekdam-backend/internal/middleware"
	"github.com/chaekdam/chaekdam-backend/pkg/naver"
	"github.com/gin-gonic/gin"
)

type BookController struct {
	bookService service.BookService
}

func NewBookController(bookService service.BookService) *BookController {
	return &BookController{
		bookService: bookService,
	}
}

type ImportBookRequest struct {
	ISBN string `json:"isbn" binding:"required"`
}

// Search searches books from the external search API
// GET /api/v1/books?query=데미안&display=10&start=1&sort=sim
func (ctrl *BookController) Search(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	query := c.Query("query")
	if query == "" {
		apperrors.BadRequest(c, apperrors.BookQueryNeeded, "검색어를 입력해주세요")
		return
	}

	display, _ := strconv.Atoi(c.DefaultQuery("display", "10"))
	start, _ := strconv.Atoi(c.DefaultQuery("start", "1"))
	sort := c.DefaultQuery("sort", naver.SortSim)

	result, err := ctrl.bookService.SearchBooks(c.Request.Context(), query, display, start, sort)
	if err != nil {
		log.Error("Book search failed", err, map[string]interface{}{
			"query": query,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "search")
		return
	}

	c.JSON(http.StatusOK, result)
}

// Import imports a book into the catalog by ISBN
// POST /api/v1/books?isbn=9788936434120 (본문 {"isbn": ...} 형태도 허용)
func (ctrl *BookController) Import(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	req := ImportBookRequest{ISBN: c.Query("isbn")}
	if req.ISBN == "" {
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "ISBN을 입력해주세요")
			return
		}
	}

	book, err := ctrl.bookService.ImportByISBN(c.Request.Context(), req.ISBN)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookAlreadyExists):
			apperrors.BadRequest(c, apperrors.BookIsbnExists, "이미 등록된 ISBN입니다")
		case errors.Is(err, service.ErrBookNotFound):
			apperrors.NotFound(c, apperrors.BookNotFound, "검색 결과에서 책을 찾을 수 없습니다")
		default:
			log.Error("Book import failed", err, map[string]interface{}{
				"isbn": req.ISBN,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "book")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"book": book})
}

// List returns books in the catalog
// GET /api/v1/books/list?page=1&page_size=20&category_id=2&keyword=헤세
func (ctrl *BookController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	categoryID, _ := strconv.ParseUint(c.DefaultQuery("category_id", "0"), 10, 32)
	keyword := c.Query("keyword")

	books, total, err := ctrl.bookService.ListBooks(page, pageSize, uint(categoryID), keyword)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "book")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"books":     books,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// Get returns a book by ID
// GET /api/v1/books/:id
func (ctrl *BookController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 책 ID입니다")
		return
	}

	book, err := ctrl.bookService.GetBook(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			apperrors.NotFound(c, apperrors.BookNotFound, "책을 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "book")
		return
	}

	c.JSON(http.StatusOK, gin.H{"book": book})
}

// GetByISBN returns a book by ISBN, importing it from the search API if missing
// GET /api/v1/books/isbn/:isbn
func (ctrl *BookController) GetByISBN(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	isbn := c.Param("isbn")
	if isbn == "" {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "ISBN을 입력해주세요")
		return
	}

	book, err := ctrl.bookService.GetBookByISBN(c.Request.Context(), isbn)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			apperrors.NotFound(c, apperrors.BookNotFound, "책을 찾을 수 없습니다")
			return
		}
		log.Error("Book lookup by ISBN failed", err, map[string]interface{}{
			"isbn": isbn,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "book")
		return
	}

	c.JSON(http.StatusOK, gin.H{"book": book})
}

// Update updates book fields (admin only)
// PATCH /api/v1/books/:id
func (ctrl *BookController) Update(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 책 ID입니다")
		return
	}

	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	book, err := ctrl.bookService.UpdateBook(uint(id), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookNotFound):
			apperrors.NotFound(c, apperrors.BookNotFound, "책을 찾을 수 없습니다")
		case errors.Is(err, service.ErrCategoryNotFound):
			apperrors.NotFound(c, apperrors.CategoryNotFound, "카테고리를 찾을 수 없습니다")
		default:
			log.Error("Book update failed", err, map[string]interface{}{
				"book_id": id,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "book")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"book": book})
}

// Delete removes a book from the catalog (admin only)
// DELETE /api/v1/books/:id
func (ctrl *BookController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 책 ID입니다")
		return
	}

	if err := ctrl.bookService.DeleteBook(uint(id)); err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			apperrors.NotFound(c, apperrors.BookNotFound, "책을 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "book")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "책이 삭제되었습니다"})
}
