package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"blogify/pkg/cache"
	"blogify/pkg/config"
	"blogify/pkg/database"
	"blogify/pkg/jwt"
	"blogify/pkg/logger"
	"blogify/pkg/middleware"
	"blogify/pkg/queue"
	"blogify/pkg/s3"
	"blogify/pkg/storage"
	"blogify/pkg/validation"
	blogHTTP "blogify/services/blog/internal/controller/http"
	"blogify/services/blog/internal/entity"
	"blogify/services/blog/internal/repo/persistent"
	"blogify/services/blog/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "blogify/services/blog/docs" // Swagger docs
)

const StorageDriverS3 = "s3"

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	queueClient *queue.Client
	blobs       storage.BlobStore
	router      *gin.Engine
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.NewForEnvironment(cfg.IsDevelopment())

	db, err := database.NewDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	if cfg.DBDriver == database.DriverSQLite || cfg.DBAutoMigrate {
		if err := persistent.AutoMigrate(db); err != nil {
			database.Close(db)
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	blobs, err := NewBlobStore(cfg)
	if err != nil {
		log.Error("Failed to create blob store: %v", err)
		database.Close(db)
		return nil, err
	}

	// Redis and RabbitMQ are optional
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Redis unavailable: %v (rate limiting in memory)", err)
		redisClient = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable: %v (continuing without events)", err)
		queueClient = nil
	}

	a := &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		queueClient: queueClient,
		blobs:       blobs,
	}
	a.router = a.setupRouter()
	return a, nil
}

// NewBlobStore returns the S3 client or the local disk selected by STORAGE_DRIVER.
func NewBlobStore(cfg *config.Config) (storage.BlobStore, error) {
	if cfg.StorageDriver == StorageDriverS3 {
		return s3.NewClient(cfg)
	}
	return storage.NewLocalDisk(cfg.StorageRoot, cfg.AppURL+cfg.StorageURLPath)
}

func (a *App) setupRouter() *gin.Engine {
	if !a.cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	jwtService := jwt.NewService(a.cfg.JWTSecret, a.cfg.TokenTTL)
	validator := validation.New()
	policy := usecase.Policy{EnforceOwnership: a.cfg.EnforceOwnership}

	// A nil *queue.Client must not end up inside the interface.
	var events usecase.EventPublisher
	if a.queueClient != nil {
		events = a.queueClient
	}

	var counter middleware.Counter = middleware.NewMemoryCounter()
	if a.redisClient != nil {
		counter = middleware.NewRedisCounter(a.redisClient)
	}

	// Initialize repositories
	userRepo := persistent.NewUserRepository(a.db)
	tokenRepo := persistent.NewTokenRepository(a.db)
	blogRepo := persistent.NewBlogRepository(a.db)
	likeRepo := persistent.NewLikeRepository(a.db)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, tokenRepo, jwtService, validator, a.log)
	blogUseCase := usecase.NewBlogUseCase(blogRepo, a.blobs, events, validator, policy, a.log)
	likeUseCase := usecase.NewLikeUseCase(likeRepo, map[entity.LikeableKind]usecase.Likeable{
		entity.KindBlog: usecase.NewBlogLikeable(blogRepo, likeRepo),
	}, events, policy, a.log)

	// Initialize HTTP handlers
	authHandler := blogHTTP.NewAuthHandler(authUseCase, a.log)
	blogHandler := blogHTTP.NewBlogHandler(blogUseCase, a.log)
	likeHandler := blogHTTP.NewLikeHandler(likeUseCase, a.log)

	r := gin.New()
	r.Use(middleware.Recovery(a.log), middleware.RequestLogger(a.log))
	r.Use(cors.New(a.corsConfig()))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  false,
			"message": "Route not found.",
			"errors":  []any{},
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if disk, ok := a.blobs.(*storage.LocalDisk); ok {
		r.Static(a.cfg.StorageURLPath, disk.Root())
	}

	rateLimit := middleware.RateLimitMiddleware(counter, a.cfg.RateLimitPerMinute, time.Minute)

	api := r.Group(a.cfg.APIPrefix)
	{
		api.POST("/register", rateLimit, authHandler.Register)
		api.POST("/login", rateLimit, authHandler.Login)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(authUseCase), rateLimit)
		{
			protected.POST("/logout", authHandler.Logout)
			protected.GET("/blogs", blogHandler.ListBlogs)
			protected.POST("/blogs", blogHandler.CreateBlog)
			protected.POST("/blogs/:id/update", blogHandler.UpdateBlog)
			protected.DELETE("/blogs/:id", blogHandler.DeleteBlog)
			protected.POST("/like-blog", likeHandler.ToggleLike)
		}
	}

	return r
}

func (a *App) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders: []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		MaxAge:        12 * time.Hour,
	}
	if len(a.cfg.CORSAllowedOrigins) == 0 || slices.Contains(a.cfg.CORSAllowedOrigins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = a.cfg.CORSAllowedOrigins
	cfg.AllowCredentials = true
	return cfg
}

// Handler exposes the router, e.g. for httptest.
func (a *App) Handler() http.Handler {
	return a.router
}

func (a *App) Run() error {
	a.httpServer = &http.Server{
		Addr:              ":" + a.cfg.ServerPort,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		a.log.Info("Blog service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down blog service...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			return err
		}
	}

	if err := database.Close(a.db); err != nil {
		a.log.Error("Error closing database: %v", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	a.log.Info("Blog service exited")
	return nil
}
