package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/studious-dev/studious-api/internal/config"
	"github.com/studious-dev/studious-api/internal/database"
	"github.com/studious-dev/studious-api/internal/handlers"
	"github.com/studious-dev/studious-api/internal/middleware"
	"github.com/studious-dev/studious-api/internal/repository"
	"github.com/studious-dev/studious-api/internal/services"
)

func main() {
	// Load .env if present, then configuration
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to add indexes: %v", err)
	}

	db := database.GetDB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	eventRepo := repository.NewEventRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	searchRepo := repository.NewSearchRepository(db)

	// Services
	tokenExpiry := time.Duration(cfg.JWTExpiryHours) * time.Hour
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, tokenExpiry)
	courseService := services.NewCourseService(courseRepo, taskRepo, eventRepo)
	taskService := services.NewTaskService(taskRepo, courseRepo)
	eventService := services.NewEventService(eventRepo, courseRepo, taskRepo)
	resourceService := services.NewResourceService(resourceRepo, courseRepo, cfg.UploadDir)
	searchService := services.NewSearchService(searchRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(authService)
	courseHandler := handlers.NewCourseHandler(courseService)
	taskHandler := handlers.NewTaskHandler(taskService)
	eventHandler := handlers.NewEventHandler(eventService)
	resourceHandler := handlers.NewResourceHandler(resourceService)
	searchHandler := handlers.NewSearchHandler(searchService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Studious API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Everything else requires a bearer token
		protected := api.Group("")
		protected.Use(middleware.RequireAuth(cfg.JWTSecret))
		{
			users := protected.Group("/users")
			{
				users.GET("/profile", userHandler.GetProfile)
				users.PUT("/profile", userHandler.UpdateProfile)
			}

			courses := protected.Group("/courses")
			{
				courses.GET("", courseHandler.ListCourses)
				courses.POST("", courseHandler.CreateCourse)
				courses.GET("/:id", courseHandler.GetCourse)
				courses.GET("/:id/detail", courseHandler.GetCourseDetail)
				courses.PUT("/:id", courseHandler.UpdateCourse)
				courses.DELETE("/:id", courseHandler.DeleteCourse)
			}

			tasks := protected.Group("/tasks")
			{
				tasks.GET("", taskHandler.ListTasks)
				tasks.POST("", taskHandler.CreateTask)
				tasks.GET("/:id", taskHandler.GetTask)
				tasks.PUT("/:id", taskHandler.UpdateTask)
				tasks.DELETE("/:id", taskHandler.DeleteTask)
			}

			events := protected.Group("/events")
			{
				events.GET("", eventHandler.ListEvents)
				events.POST("", eventHandler.CreateEvent)
				events.GET("/:id", eventHandler.GetEvent)
				events.PUT("/:id", eventHandler.UpdateEvent)
				events.DELETE("/:id", eventHandler.DeleteEvent)
			}

			resources := protected.Group("/resources")
			{
				resources.POST("/upload", resourceHandler.UploadResource)
				resources.GET("/course/:courseId", resourceHandler.ListCourseResources)
				resources.GET("/:id", resourceHandler.GetResource)
				resources.DELETE("/:id", resourceHandler.DeleteResource)
			}

			protected.GET("/search", searchHandler.Search)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
