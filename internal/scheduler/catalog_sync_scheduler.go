package scheduler

import (
	"context"
	"time"

	"github.com/chaekdam/chaekdam-backend/internal/app/repository"
	"github.com/chaekdam/chaekdam-backend/internal/app/service"
	"github.com/chaekdam/chaekdam-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// CatalogSyncScheduler 책 메타데이터 자동 갱신 스케줄러
// 검색 API 쪽에서 표지나 소개글이 바뀌는 경우가 있어 주기적으로 다시 받아옴
type CatalogSyncScheduler struct {
	cron        *cron.Cron
	bookService service.BookService
	bookRepo    repository.BookRepository
}

// NewCatalogSyncScheduler 카탈로그 동기화 스케줄러 생성
func NewCatalogSyncScheduler(bookService service.BookService, bookRepo repository.BookRepository) *CatalogSyncScheduler {
	return &CatalogSyncScheduler{
		cron:        cron.New(),
		bookService: bookService,
		bookRepo:    bookRepo,
	}
}

// Start 스케줄러 시작
func (s *CatalogSyncScheduler) Start() error {
	// 매일 새벽 4시에 전체 책 메타데이터 갱신 (KST 기준)
	// cron 표현식: "0 4 * * *" = 매일 4시 0분
	_, err := s.cron.AddFunc("0 4 * * *", func() {
		s.SyncAll()
	})

	if err != nil {
		logger.Error("Failed to add cron job for catalog sync", err)
		return err
	}

	s.cron.Start()
	logger.Info("Catalog sync scheduler started successfully (daily at 4:00 AM)", nil)

	return nil
}

// SyncAll 보유 중인 모든 책의 메타데이터를 다시 받아옴
// 책 한 권이 실패해도 나머지는 계속 진행함
func (s *CatalogSyncScheduler) SyncAll() {
	logger.Info("Starting scheduled catalog sync", nil)

	isbns, err := s.bookRepo.ListAllISBNs()
	if err != nil {
		logger.Error("Failed to list ISBNs for catalog sync", err)
		return
	}

	synced := 0
	failed := 0
	for _, isbn := range isbns {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := s.bookService.RefreshMetadata(ctx, isbn)
		cancel()

		if err != nil {
			failed++
			logger.Warn("Failed to refresh book metadata", map[string]interface{}{
				"isbn":  isbn,
				"error": err.Error(),
			})
			continue
		}
		synced++
	}

	logger.Info("Catalog sync finished", map[string]interface{}{
		"total":  len(isbns),
		"synced": synced,
		"failed": failed,
	})
}

// Stop 스케줄러 중지
func (s *CatalogSyncScheduler) Stop() {
	logger.Info("Stopping catalog sync scheduler...", nil)
	s.cron.Stop()
	logger.Info("Catalog sync scheduler stopped", nil)
}
