package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpController "blogpessoal/internal/controller/http"
	"blogpessoal/internal/model"
	"blogpessoal/internal/repo/persistent"
	"blogpessoal/internal/usecase"
	"blogpessoal/pkg/cache"
	"blogpessoal/pkg/config"
	"blogpessoal/pkg/database"
	"blogpessoal/pkg/jwt"
	"blogpessoal/pkg/logger"
	"blogpessoal/pkg/middleware"
	"blogpessoal/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "blogpessoal/docs" // Swagger docs
)

const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.Open(cfg, log)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	if err := model.AutoMigrate(db); err != nil {
		log.Error("Failed to migrate database: %v", err)
		database.Close(db)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		if errors.Is(err, cache.ErrDisabled) {
			log.Warn("Redis not configured, login rate limiting disabled")
		} else {
			log.Error("Failed to connect to redis: %v (continuing without rate limiting)", err)
		}
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		if errors.Is(err, s3.ErrDisabled) {
			log.Warn("S3 bucket not configured, photo uploads disabled")
		} else {
			log.Error("Failed to create S3 client: %v (continuing without photo uploads)", err)
		}
		s3Client = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwt.NewService(cfg.JWTSecret, jwt.WithExpiration(cfg.JWTExpiration)),
	}, nil
}

// Router wires repositories, use cases and handlers into a gin engine.
func (a *App) Router() *gin.Engine {
	userRepo := persistent.NewUserRepository(a.db)
	themeRepo := persistent.NewThemeRepository(a.db)
	postRepo := persistent.NewPostRepository(a.db)

	// A nil *s3.Client must not reach the use case as a non-nil interface.
	var images usecase.ImageStorage
	if a.s3Client != nil {
		images = a.s3Client
	}

	authUseCase := usecase.NewAuthUseCase(userRepo, a.jwtService, images, a.log)
	themeUseCase := usecase.NewThemeUseCase(themeRepo, a.log)
	postUseCase := usecase.NewPostUseCase(postRepo, a.log)

	authHandler := httpController.NewAuthHandler(authUseCase, a.log)
	themeHandler := httpController.NewThemeHandler(themeUseCase, a.log)
	postHandler := httpController.NewPostHandler(postUseCase, a.log)

	r := gin.Default()

	r.Use(cors.New(a.corsConfig()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if a.cfg.IsProduction() {
		r.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/swagger/index.html")
		})
	}

	api := r.Group("/api/v1")
	{
		api.POST("/users/register", authHandler.Register)
		api.POST("/users/login", middleware.RateLimitMiddleware(a.redisClient, loginRateLimit, loginRateWindow), authHandler.Login)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.jwtService))
		{
			protected.GET("/me", authHandler.Me)
			protected.GET("/users", authHandler.ListUsers)
			protected.GET("/users/:id", authHandler.GetUser)
			protected.PUT("/users/:id", authHandler.UpdateUser)
			protected.DELETE("/users/:id", authHandler.DeleteUser)
			protected.GET("/users/:id/posts", postHandler.ListUserPosts)
			protected.POST("/users/photo", authHandler.UploadPhoto)

			protected.GET("/themes", themeHandler.ListThemes)
			protected.POST("/themes", themeHandler.CreateTheme)
			protected.GET("/themes/:id", themeHandler.GetTheme)
			protected.PUT("/themes/:id", themeHandler.UpdateTheme)
			protected.DELETE("/themes/:id", themeHandler.DeleteTheme)
			protected.GET("/themes/:id/posts", postHandler.ListThemePosts)
			protected.GET("/themes/description/:description", themeHandler.SearchThemes)

			protected.GET("/posts", postHandler.ListPosts)
			protected.POST("/posts", postHandler.CreatePost)
			protected.GET("/posts/:id", postHandler.GetPost)
			protected.PUT("/posts/:id", postHandler.UpdatePost)
			protected.DELETE("/posts/:id", postHandler.DeletePost)
			protected.GET("/posts/title/:title", postHandler.SearchPosts)
		}
	}

	return r
}

// corsConfig allows any origin unless CORS_ALLOW_ORIGINS narrows it.
func (a *App) corsConfig() cors.Config {
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	origins := a.cfg.CORSAllowOrigins
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
		corsConfig.AllowCredentials = true
	}
	return corsConfig
}

func (a *App) Run() error {
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: a.Router(),
	}

	go func() {
		a.log.Info("Blog API starting on port %s (%s)", a.cfg.ServerPort, a.cfg.Environment)
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
	a.log.Info("Shutting down blog API...")
}

// Shutdown drains in-flight requests before closing the stores they use.
func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var serverErr error
	if a.httpServer != nil {
		if serverErr = a.httpServer.Shutdown(ctx); serverErr != nil {
			a.log.Error("Server forced to shutdown: %v", serverErr)
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

	if serverErr != nil {
		return serverErr
	}
	a.log.Info("Blog API exited")
	return nil
}
