// @title Frame Theory Studio API
// @version 1.0
// @description REST backend for the Frame Theory photography studio dashboard
// @host localhost:4000
// @BasePath /api
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Tahir1605/frame-theory/config"
	"github.com/Tahir1605/frame-theory/controllers/admin_controller"
	"github.com/Tahir1605/frame-theory/controllers/blog_controller"
	"github.com/Tahir1605/frame-theory/controllers/contact_controller"
	"github.com/Tahir1605/frame-theory/controllers/edit_image_controller"
	"github.com/Tahir1605/frame-theory/controllers/image_controller"
	"github.com/Tahir1605/frame-theory/controllers/review_controller"
	"github.com/Tahir1605/frame-theory/controllers/video_controller"
	"github.com/Tahir1605/frame-theory/middleware"
	"github.com/Tahir1605/frame-theory/models"
	"github.com/Tahir1605/frame-theory/repository"
	"github.com/Tahir1605/frame-theory/routes"
	"github.com/Tahir1605/frame-theory/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	defer config.CloseDB()

	// Redis connection for the rate limiter
	config.ConnectRedis()

	// Schema migration
	if err := config.StudioGorm.AutoMigrate(
		&models.Admin{},
		&models.Image{},
		&models.EditImage{},
		&models.Video{},
		&models.Review{},
		&models.Blog{},
		&models.Contact{},
	); err != nil {
		log.Fatalf("❌ Failed to migrate schema: %v", err)
	}

	// Asset Store client
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	store, err := services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	if err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	// JWT service for admin auth
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// Lifecycle manager over the local stage and the Asset Store
	stage := services.NewUploadStage(os.Getenv("UPLOAD_STAGE_DIR"))
	lifecycle := services.NewAssetLifecycle(store, stage)

	// Wire controller dependencies
	db := config.StudioGorm
	admin_controller.Init(repository.NewAdminRepository(db), lifecycle)
	image_controller.Init(repository.NewImageRepository(db), lifecycle)
	edit_image_controller.Init(repository.NewEditImageRepository(db), lifecycle)
	video_controller.Init(repository.NewVideoRepository(db))
	review_controller.Init(repository.NewReviewRepository(db), lifecycle)
	blog_controller.Init(repository.NewBlogRepository(db), lifecycle)
	contact_controller.Init(repository.NewContactRepository(db), services.NewResendClient())

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api")
	routes.SetupPublicRoutes(api)

	// Dashboard routes sit behind the Redis rate limiter
	limited := api.Group("")
	limited.Use(middleware.RateLimiter(100, time.Minute))
	routes.SetupAdminRoutes(limited)
	log.Println("✅ Admin routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", func(c *gin.Context) {
		c.String(200, "Welcome to the API!")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	fmt.Println("🚀 Server is running on http://localhost:" + port)
	router.Run(":" + port)
}
