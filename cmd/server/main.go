package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chaekdam/chaekdam-backend/config"
	"github.com/chaekdam/chaekdam-backend/internal/app/controller"
	"github.com/chaekdam/chaekdam-backend/internal/app/repository"
	"github.com/chaekdam/chaekdam-backend/internal/app/service"
	"github.com/chaekdam/chaekdam-backend/internal/db"
	"github.com/chaekdam/chaekdam-backend/internal/middleware"
	"github.com/chaekdam/chaekdam-backend/internal/router"
	"github.com/chaekdam/chaekdam-backend/internal/scheduler"
	"github.com/chaekdam/chaekdam-backend/internal/storage"
	"github.com/chaekdam/chaekdam-backend/pkg/logger"
	"github.com/chaekdam/chaekdam-backend/pkg/naver"
	"github.com/chaekdam/chaekdam-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting CHAEKDAM Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Seed database (optional)
	if err := db.Seed(); err != nil {
		logger.Warn("Failed to seed database", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Redis는 선택 사항 (없으면 로그아웃 토큰 무효화만 비활성화됨)
	if cfg.Redis.Host != "" {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Warn("Failed to connect to Redis, token revocation disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer redis.Close()
		}
	}

	// Initialize Naver book search client
	naverClient, err := naver.NewClient(naver.Config{
		ClientID:     cfg.Naver.ClientID,
		ClientSecret: cfg.Naver.ClientSecret,
		BaseURL:      cfg.Naver.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to create Naver API client", err)
	}

	// Initialize S3 storage
	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	bookRepo := repository.NewBookRepository(db.GetDB())
	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	tagRepo := repository.NewTagRepository(db.GetDB())
	reviewRepo := repository.NewReviewRepository(db.GetDB())
	draftRepo := repository.NewDraftRepository(db.GetDB())
	ratingRepo := repository.NewRatingRepository(db.GetDB())
	replyRepo := repository.NewReplyRepository(db.GetDB())
	commentRepo := repository.NewCommentRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	userService := service.NewUserService(userRepo, bookRepo)
	bookService := service.NewBookService(bookRepo, categoryRepo, naverClient)
	categoryService := service.NewCategoryService(categoryRepo)
	tagService := service.NewTagService(tagRepo)
	reviewService := service.NewReviewService(reviewRepo, bookRepo, userRepo, tagRepo, ratingRepo, userService)
	draftService := service.NewDraftService(draftRepo, bookRepo, tagRepo, reviewService)
	ratingService := service.NewRatingService(ratingRepo, reviewRepo, bookRepo)
	replyService := service.NewReplyService(replyRepo, reviewRepo)
	commentService := service.NewCommentService(commentRepo, replyRepo)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	userController := controller.NewUserController(userService)
	bookController := controller.NewBookController(bookService)
	categoryController := controller.NewCategoryController(categoryService)
	tagController := controller.NewTagController(tagService)
	reviewController := controller.NewReviewController(reviewService)
	draftController := controller.NewDraftController(draftService)
	ratingController := controller.NewRatingController(ratingService)
	replyController := controller.NewReplyController(replyService)
	commentController := controller.NewCommentController(commentService)
	uploadController := controller.NewUploadController(s3Storage)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Setup router
	r := router.NewRouter(
		authController,
		userController,
		bookController,
		categoryController,
		tagController,
		reviewController,
		draftController,
		ratingController,
		replyController,
		commentController,
		uploadController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start catalog sync scheduler
	catalogSync := scheduler.NewCatalogSyncScheduler(bookService, bookRepo)
	if err := catalogSync.Start(); err != nil {
		logger.Warn("Failed to start catalog sync scheduler", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer catalogSync.Stop()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
