package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"helpcenter-backend/internal/audit"
	"helpcenter-backend/internal/config"
	"helpcenter-backend/internal/content"
	"helpcenter-backend/internal/db"
	"helpcenter-backend/internal/middleware"
	"helpcenter-backend/internal/notify"
	"helpcenter-backend/internal/user"
	"helpcenter-backend/internal/worker"
	"helpcenter-backend/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	config.LoadConfig()

	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Connect to database
	db.ConnectDb()
	defer db.CloseDb()

	// Migrate database schema
	db.Migrate()

	// Seed database with initial data (for development)
	db.SeedData()

	// Initialize Redis cache
	cache := redis.NewCache()
	defer cache.Close()

	// Background pool for audit writes, webhook calls and cache fills
	pool := worker.NewWorkerPool(4)

	// Initialize repositories
	userRepo := user.NewRepository(db.AppDb)
	auditRepo := audit.NewRepository(db.AppDb)
	contentRepo := content.SeedRepository()

	// Initialize services
	userService := user.NewService(userRepo)
	notifier := notify.NewClient(config.AppConfig.WebhookAddress, config.AppConfig.WebhookSecret)
	contentService := content.NewService(contentRepo, auditRepo, notifier, cache, pool)

	// Initialize handlers
	userHandler := user.NewHandler(userService, []byte(config.AppConfig.JWTSecret))
	contentHandler := content.NewHandler(contentService)

	authGuard := &middleware.Auth{Secret: []byte(config.AppConfig.JWTSecret)}

	// Initialize Gin router
	router := gin.Default()
	router.Use(middleware.ErrorHandler())

	// cors setting
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}

	if config.AppConfig.Environment == "development" {
		// Allow all origins in development
		corsConfig.AllowAllOrigins = true
	} else {
		// Restrict origins in production
		corsConfig.AllowOrigins = []string{config.AppConfig.FrontendAddress}
	}
	router.Use(cors.New(corsConfig))

	// User routes
	router.POST("/register", userHandler.Register)
	router.POST("/login", userHandler.Login)
	router.GET("/profile", authGuard.AuthMiddleware(), userHandler.GetProfile)

	// Public help-center routes
	router.GET("/categories", contentHandler.ListCategories)
	router.GET("/categories/:id", contentHandler.ShowCategory)
	router.GET("/articles/:slug", contentHandler.ShowArticleBySlug)
	router.GET("/search", contentHandler.SearchArticles)

	// Admin CMS routes
	admin := router.Group("/admin", authGuard.AuthMiddleware(), authGuard.RequireStaff())
	admin.POST("/categories", contentHandler.CreateCategory)
	admin.PUT("/categories/:id", contentHandler.RenameCategory)
	admin.GET("/categories/:id/history", contentHandler.ShowCategoryHistory)
	admin.POST("/articles", contentHandler.CreateArticle)
	admin.GET("/articles/:id", contentHandler.ShowArticle)
	admin.PUT("/articles/:id", contentHandler.EditArticle)
	admin.PATCH("/articles/:id/archive", contentHandler.SetArchived)
	admin.PATCH("/articles/:id/staff-only", contentHandler.SetStaffOnly)
	admin.GET("/articles/:id/history", contentHandler.ShowArticleHistory)
	admin.GET("/articles/:id/diff", contentHandler.ShowArticleDiff)
	admin.GET("/activity", contentHandler.ShowActivity)

	// Server configuration
	serverPort := config.AppConfig.ServerPort
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", serverPort),
		Handler: router.Handler(),
	}

	// Start server
	go func() {
		zlog.Info().Str("port", serverPort).Msg("Server listening")
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zlog.Error().Err(err).Msg("Server shutdown error")
	}

	// Drain background tasks before exit
	pool.Shutdown()

	zlog.Info().Msg("Server shutdown complete")
}
