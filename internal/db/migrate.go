package db

import (
	"github.com/chaekdam/chaekdam-backend/internal/app/model"
	"github.com/chaekdam/chaekdam-backend/pkg/logger"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.User{},
		&model.Badge{},
		&model.Category{},
		&model.Book{},
		&model.Tag{},
		&model.Review{},
		&model.ReviewDraft{},
		&model.Rating{},
		&model.Reply{},
		&model.Comment{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	if err := seedInitialData(); err != nil {
		logger.Error("Failed to seed initial data during migration", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// Seed adds initial data to the database (optional)
func Seed() error {
	return seedInitialData()
}

func seedInitialData() error {
	logger.Info("Seeding initial data...")

	// 기본 카테고리 생성 (카테고리 없는 책이 소속될 곳)
	if err := seedDefaultCategory(); err != nil {
		logger.Error("Failed to seed default category", err)
		return err
	}

	// 배지 데이터 생성
	if err := seedBadges(); err != nil {
		logger.Error("Failed to seed badges", err)
		return err
	}

	logger.Info("Initial data seeded successfully")
	return nil
}

// seedDefaultCategory 기본 카테고리 "기타" 생성
func seedDefaultCategory() error {
	category := model.Category{Name: model.DefaultCategoryName}
	if err := DB.Where("name = ?", model.DefaultCategoryName).FirstOrCreate(&category).Error; err != nil {
		return err
	}

	logger.Info("Default category ready", map[string]interface{}{
		"category_id": category.ID,
		"name":        category.Name,
	})
	return nil
}

// seedBadges 배지 데이터 생성
func seedBadges() error {
	var count int64
	if err := DB.Model(&model.Badge{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("Badges already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	logger.Info("Seeding badge data...")

	badges := []model.Badge{
		{Name: "첫 리뷰", Image: "/badges/first-review.png"},
		{Name: "리뷰 10권", Image: "/badges/review-10.png"},
		{Name: "리뷰 50권", Image: "/badges/review-50.png"},
		{Name: "다독가", Image: "/badges/heavy-reader.png"},
		{Name: "성실한 독서가", Image: "/badges/steady-reader.png"},
		{Name: "이달의 서평가", Image: "/badges/reviewer-of-month.png"},
	}

	totalInserted := 0
	for _, badge := range badges {
		if err := DB.Create(&badge).Error; err != nil {
			logger.Error("Failed to create badge", err, map[string]interface{}{
				"badge": badge.Name,
			})
			return err
		}
		totalInserted++
	}

	logger.Info("Badges seeded successfully", map[string]interface{}{
		"total_badges": totalInserted,
	})

	return nil
}
