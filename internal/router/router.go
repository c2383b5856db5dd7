package router

import (
	"github.com/chaekdam/chaekdam-backend/config"
	"github.com/chaekdam/chaekdam-backend/internal/app/controller"
	"github.com/chaekdam/chaekdam-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authController     *controller.AuthController
	userController     *controller.UserController
	bookController     *controller.BookController
	categoryController *controller.CategoryController
	tagController      *controller.TagController
	reviewController   *controller.ReviewController
	draftController    *controller.DraftController
	ratingController   *controller.RatingController
	replyController    *controller.ReplyController
	commentController  *controller.CommentController
	uploadController   *controller.UploadController
	authMiddleware     *middleware.AuthMiddleware
	config             *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	userController *controller.UserController,
	bookController *controller.BookController,
	categoryController *controller.CategoryController,
	tagController *controller.TagController,
	reviewController *controller.ReviewController,
	draftController *controller.DraftController,
	ratingController *controller.RatingController,
	replyController *controller.ReplyController,
	commentController *controller.CommentController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:     authController,
		userController:     userController,
		bookController:     bookController,
		categoryController: categoryController,
		tagController:      tagController,
		reviewController:   reviewController,
		draftController:    draftController,
		ratingController:   ratingController,
		replyController:    replyController,
		commentController:  commentController,
		uploadController:   uploadController,
		authMiddleware:     authMiddleware,
		config:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "CHAEKDAM API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
		}

		users := v1.Group("/users")
		users.Use(r.authMiddleware.Authenticate())
		{
			users.GET("/me", r.userController.GetMe)
			users.PATCH("/me", r.userController.UpdateMe)
			users.DELETE("/me", r.userController.DeleteMe)
			users.GET("/me/badges", r.userController.GetMyBadges)
			users.PATCH("/me/primary-badge", r.userController.ChangePrimaryBadge)
			users.PATCH("/me/favorite-book", r.userController.ChangeFavoriteBook)
		}

		v1.GET("/badges", r.userController.ListBadges)

		books := v1.Group("/books")
		{
			books.GET("", r.authMiddleware.Authenticate(), r.bookController.Search)
			books.GET("/list", r.bookController.List)
			books.GET("/:id", r.authMiddleware.OptionalAuthenticate(), r.bookController.Get)
			books.GET("/isbn/:isbn", r.authMiddleware.OptionalAuthenticate(), r.bookController.GetByISBN)

			books.POST("", r.authMiddleware.Authenticate(), r.bookController.Import)
			books.PATCH("/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.bookController.Update,
			)
			books.DELETE("/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.bookController.Delete,
			)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.List)
			categories.GET("/:id", r.categoryController.Get)

			categories.POST("",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.categoryController.Create,
			)
			categories.PATCH("/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.categoryController.Update,
			)
			categories.DELETE("/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.categoryController.Delete,
			)
		}

		tags := v1.Group("/tags")
		{
			tags.GET("", r.tagController.List)
			tags.GET("/:id", r.tagController.Get)

			tags.POST("",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.tagController.Create,
			)
			tags.PATCH("/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.tagController.Update,
			)
			tags.DELETE("/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.tagController.Delete,
			)
		}

		reviews := v1.Group("/reviews")
		{
			reviews.GET("/book/:bookId", r.reviewController.GetBookReviews)
			reviews.GET("/me", r.authMiddleware.Authenticate(), r.reviewController.GetMyReviews)
			reviews.GET("/:id", r.reviewController.Get)

			reviews.POST("", r.authMiddleware.Authenticate(), r.reviewController.Create)
			reviews.PUT("/:id", r.authMiddleware.Authenticate(), r.reviewController.Update)
			reviews.DELETE("/:id", r.authMiddleware.Authenticate(), r.reviewController.Delete)
		}

		drafts := v1.Group("/drafts")
		drafts.Use(r.authMiddleware.Authenticate())
		{
			drafts.GET("", r.draftController.List)
			drafts.GET("/:id", r.draftController.Get)
			drafts.POST("", r.draftController.Create)
			drafts.PUT("/:id", r.draftController.Update)
			drafts.DELETE("/:id", r.draftController.Delete)
			drafts.POST("/:id/publish", r.draftController.Publish)
		}

		ratings := v1.Group("/ratings")
		{
			ratings.GET("/book/:bookId", r.ratingController.GetBookAverage)

			ratings.POST("", r.authMiddleware.Authenticate(), r.ratingController.Create)
			ratings.PUT("/:id", r.authMiddleware.Authenticate(), r.ratingController.UpdateByID)
			ratings.PUT("/review/:reviewId", r.authMiddleware.Authenticate(), r.ratingController.Update)
		}

		replies := v1.Group("/replies")
		{
			replies.GET("/review/:reviewId", r.replyController.GetReviewReplies)
			replies.GET("/:id", r.replyController.Get)

			replies.POST("", r.authMiddleware.Authenticate(), r.replyController.Create)
			replies.PUT("/:id", r.authMiddleware.Authenticate(), r.replyController.Update)
			replies.DELETE("/:id", r.authMiddleware.Authenticate(), r.replyController.Delete)
		}

		comments := v1.Group("/comments")
		{
			comments.GET("/reply/:replyId", r.commentController.GetReplyComments)
			comments.GET("/:id", r.commentController.Get)

			comments.POST("", r.authMiddleware.Authenticate(), r.commentController.Create)
			comments.PUT("/:id", r.authMiddleware.Authenticate(), r.commentController.Update)
			comments.DELETE("/:id", r.authMiddleware.Authenticate(), r.commentController.Delete)
		}

		upload := v1.Group("/upload")
		upload.Use(r.authMiddleware.Authenticate())
		{
			upload.POST("/presigned-url", r.uploadController.GeneratePresignedURL)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
