package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/pangrm/blogdee/backend/internal/handlers"
	"github.com/pangrm/blogdee/backend/internal/middleware"
	"github.com/pangrm/blogdee/backend/internal/models"
	"github.com/pangrm/blogdee/backend/internal/repositories"
	"github.com/pangrm/blogdee/backend/internal/services"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies.
// firebaseAuthClient may be nil when Firebase login is not configured.
func SetupRoutes(e *echo.Echo, db *gorm.DB, firebaseAuthClient *auth.Client) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Status{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	seedStatuses(db)
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	categoryRepo := repositories.NewPostgresCategoryRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)

	// --- Core services ---
	emitter := services.NewNotificationEmitter(notificationRepo)
	engagement := services.NewEngagementService(likeRepo, commentRepo, postRepo, userRepo, emitter)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, firebaseAuthClient)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())

	protectedAuth := e.Group("/api/v1/auth")
	protectedAuth.Use(middleware.JWTAuthMiddleware())
	authHandler.RegisterProtectedAuthRoutes(protectedAuth)

	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterUserRoutes(api)

	postHandler := handlers.NewPostHandler(postRepo, categoryRepo)
	postHandler.RegisterPostRoutes(api)

	categoryHandler := handlers.NewCategoryHandler(categoryRepo)
	categoryHandler.RegisterCategoryRoutes(api)

	commentHandler := handlers.NewCommentHandler(engagement, commentRepo, postRepo)
	commentHandler.RegisterCommentRoutes(api)

	likeHandler := handlers.NewLikeHandler(engagement, likeRepo, postRepo)
	likeHandler.RegisterLikeRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notificationRepo, userRepo)
	notificationHandler.RegisterNotificationRoutes(api)

	log.Println("All routes configured.")
}

// seedStatuses makes sure the publication-state lookup rows exist
func seedStatuses(db *gorm.DB) {
	for _, status := range []string{models.StatusDraft, models.StatusPublished} {
		if err := db.Where(models.Status{Status: status}).FirstOrCreate(&models.Status{Status: status}).Error; err != nil {
			log.Printf("Failed to seed status %q: %v", status, err)
		}
	}
}
