package main

import (
	"fmt"
	"net/http"
	"time"

	"kinovzor/internal/api/handler"
	"kinovzor/internal/api/middleware"
	"kinovzor/internal/api/router"
	"kinovzor/internal/config"
	"kinovzor/internal/infra/database"
	infraES "kinovzor/internal/infra/elasticsearch"
	infraKafka "kinovzor/internal/infra/kafka"
	infraMinio "kinovzor/internal/infra/minio"
	infraRedis "kinovzor/internal/infra/redis"
	"kinovzor/internal/model"
	"kinovzor/internal/repository"
	"kinovzor/internal/service"
	"kinovzor/pkg/logger"

	_ "kinovzor/api/openapi"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title KinoVzor API
// @version 1.0
// @description Movie review platform API

// @contact.name API Support
// @contact.email support@kinovzor.ru

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host 127.0.0.1:8000
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Format: Bearer {token}

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	if err := database.AutoMigrate(
		&model.User{},
		&model.Movie{},
		&model.Review{},
		&model.Favorite{},
	); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	if err := infraRedis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to init redis", zap.Error(err))
	}
	defer infraRedis.Close()

	if err := infraMinio.Init(&cfg.MinIO); err != nil {
		logger.Fatal("Failed to init minio", zap.Error(err))
	}

	if err := infraKafka.InitProducer(&cfg.Kafka); err != nil {
		logger.Fatal("Failed to init kafka producer", zap.Error(err))
	}
	defer infraKafka.CloseProducer()

	// Elasticsearch is optional; search degrades to the database without it.
	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Warn("Elasticsearch init failed, search will fallback to DB", zap.Error(err))
	} else {
		defer infraES.Close()
		if err := infraES.InitIndexes(); err != nil {
			logger.Warn("Elasticsearch index init failed", zap.Error(err))
		}
	}

	gin.SetMode(cfg.App.Mode)

	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	// Repository -> Service -> Handler
	db := database.Get()
	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	blacklistRepo := repository.NewTokenBlacklistRepository(infraRedis.Get())

	reviewPublisher := &service.KafkaReviewPublisher{Topic: cfg.Kafka.Topics["review_events"]}

	authService := service.NewAuthService(userRepo, blacklistRepo)
	userService := service.NewUserService(userRepo)
	movieService := service.NewMovieService(movieRepo, reviewRepo)
	reviewService := service.NewReviewService(reviewRepo, movieRepo, reviewPublisher)
	favoriteService := service.NewFavoriteService(favoriteRepo, movieRepo)
	searchService := service.NewSearchService(movieRepo)

	flagsFetcher := func(userID int64) (*middleware.UserFlags, error) {
		user, err := userRepo.GetByID(userID)
		if err != nil {
			return nil, err
		}
		return &middleware.UserFlags{
			IsModerator: user.IsModerator,
			IsAdmin:     user.IsAdmin,
		}, nil
	}

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	movieHandler := handler.NewMovieHandler(movieService)
	reviewHandler := handler.NewReviewHandler(reviewService, flagsFetcher)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	searchHandler := handler.NewSearchHandler(searchService)

	authMiddleware := middleware.AuthRequired(blacklistRepo)
	authOptionalMiddleware := middleware.AuthOptional(blacklistRepo)
	moderatorMiddleware := middleware.ModeratorRequired(flagsFetcher)
	adminMiddleware := middleware.AdminRequired(flagsFetcher)

	r.GET("/healthz", healthCheckHandler)
	r.GET("/", rootHandler)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.Setup(r,
		authHandler, userHandler, movieHandler, reviewHandler, favoriteHandler, searchHandler,
		authMiddleware, authOptionalMiddleware, moderatorMiddleware, adminMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
	)
	logger.Info("Configuration loaded",
		zap.String("database", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)),
		zap.String("redis", cfg.Redis.Addr()),
		zap.String("minio", cfg.MinIO.Endpoint),
	)

	logger.Info("Server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func healthCheckHandler(c *gin.Context) {
	cfg := config.Get()

	logger.Debug("Health check requested", zap.String("ip", c.ClientIP()))

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   cfg.App.Name,
		"version":   cfg.App.Version,
		"mode":      cfg.App.Mode,
	})
}

func rootHandler(c *gin.Context) {
	cfg := config.Get()

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome to %s API", cfg.App.Name),
		"project": cfg.App.Name,
		"version": cfg.App.Version,
		"mode":    cfg.App.Mode,
		"docs":    fmt.Sprintf("http://localhost:%d/swagger/index.html", cfg.App.Port),
	})
}
