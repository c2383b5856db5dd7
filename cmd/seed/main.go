package main

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/chaekdam/chaekdam-backend/config"
	"github.com/chaekdam/chaekdam-backend/internal/app/model"
	"github.com/chaekdam/chaekdam-backend/internal/app/repository"
	"github.com/chaekdam/chaekdam-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

// XLSX 컬럼 순서: ISBN, 제목, 저자, 출판사, 출간일, 카테고리, 소개, 표지URL, 링크
const minColumns = 7

func main() {
	// 명령줄 인자 확인
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	// 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// DB 연결
	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	// 마이그레이션 (기본 카테고리 시드 포함)
	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Repository 생성
	bookRepo := repository.NewBookRepository(db.GetDB())
	categoryRepo := repository.NewCategoryRepository(db.GetDB())

	// XLSX 파일 읽기
	fmt.Printf("Reading XLSX file: %s\n", filePath)
	books, err := readBooksFromXLSX(filePath, categoryRepo)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total books to import: %d\n", len(books))

	// 사용자 확인
	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	// 배치로 저장
	batchSize := 1000
	fmt.Printf("Starting bulk import with batch size: %d\n", batchSize)
	if err := bookRepo.BulkCreate(books, batchSize); err != nil {
		log.Fatal("Failed to bulk create books:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total books imported: %d\n", len(books))
}

func readBooksFromXLSX(filePath string, categoryRepo *repository.CategoryRepository) ([]model.Book, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	// 첫 번째 시트 이름 가져오기
	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	// 모든 행 읽기
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var books []model.Book
	seenISBNs := make(map[string]bool)     // 중복 제거용
	categoryCache := make(map[string]uint) // 카테고리 이름 → ID 캐시
	skippedCount := 0
	invalidISBNCount := 0

	// 첫 행은 헤더이므로 스킵
	for i, row := range rows {
		if i == 0 {
			// 헤더 출력 (디버깅용)
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < minColumns {
			skippedCount++
			continue
		}

		// 데이터 추출
		isbn := normalizeISBN(row[0])            // ISBN
		title := strings.TrimSpace(row[1])       // 제목
		author := strings.TrimSpace(row[2])      // 저자
		publisher := strings.TrimSpace(row[3])   // 출판사
		pubDateStr := strings.TrimSpace(row[4])  // 출간일
		categoryName := strings.TrimSpace(row[5]) // 카테고리
		description := strings.TrimSpace(row[6]) // 소개

		image := ""
		if len(row) > 7 {
			image = strings.TrimSpace(row[7]) // 표지 URL
		}
		link := ""
		if len(row) > 8 {
			link = strings.TrimSpace(row[8]) // 상세 페이지 링크
		}

		// 1. 기본 필수 항목 검사
		if title == "" {
			skippedCount++
			continue
		}

		// 2. ISBN 유효성 검증 (13자리 숫자)
		if !isValidISBN(isbn) {
			invalidISBNCount++
			skippedCount++
			continue
		}

		// 3. 중복 체크
		if seenISBNs[isbn] {
			skippedCount++
			continue
		}
		seenISBNs[isbn] = true

		// 출간일 파싱 (실패하면 영 값으로 둠)
		var pubDate time.Time
		if pubDateStr != "" {
			pubDate, _ = time.Parse("2006-01-02", pubDateStr)
		}

		// 카테고리 해석 (없으면 기본 카테고리)
		if categoryName == "" {
			categoryName = model.DefaultCategoryName
		}
		categoryID, ok := categoryCache[categoryName]
		if !ok {
			category, err := categoryRepo.FindOrCreateByName(categoryName)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve category %q: %w", categoryName, err)
			}
			categoryID = category.ID
			categoryCache[categoryName] = categoryID
		}

		book := model.Book{
			ISBN:        isbn,
			Title:       title,
			Author:      author,
			Publisher:   publisher,
			PubDate:     pubDate,
			Description: description,
			Image:       image,
			Link:        link,
			CategoryID:  categoryID,
		}

		books = append(books, book)

		// 진행 상황 출력 (1000개마다)
		if len(books)%1000 == 0 {
			fmt.Printf("Processed %d books...\n", len(books))
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Total rows: %d\n", len(rows)-1)
	fmt.Printf("  Valid books: %d\n", len(books))
	fmt.Printf("  Skipped rows: %d\n", skippedCount)
	fmt.Printf("  Rows with invalid ISBN: %d\n", invalidISBNCount)

	return books, nil
}

// normalizeISBN은 하이픈과 공백을 제거한 ISBN을 돌려줍니다
func normalizeISBN(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

// isValidISBN은 13자리 숫자 형태인지 검증합니다
func isValidISBN(isbn string) bool {
	reg := regexp.MustCompile(`^[0-9]{13}$`)
	return reg.MatchString(isbn)
}
