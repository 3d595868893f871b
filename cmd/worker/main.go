package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kinovzor/internal/config"
	"kinovzor/internal/infra/database"
	infraES "kinovzor/internal/infra/elasticsearch"
	infraKafka "kinovzor/internal/infra/kafka"
	"kinovzor/internal/model"
	"kinovzor/internal/repository"
	"kinovzor/pkg/logger"

	"go.uber.org/zap"
)

// The rating sync worker consumes review lifecycle events and refreshes the
// movie's rating fields in the search index. The database stays the source of
// truth; the index is derived data that this worker keeps current.
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Fatal("Failed to init elasticsearch", zap.Error(err))
	}
	defer infraES.Close()

	if err := infraES.InitIndexes(); err != nil {
		logger.Fatal("Failed to init elasticsearch indexes", zap.Error(err))
	}

	db := database.Get()
	movieRepo := repository.NewMovieRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	topic := cfg.Kafka.Topics["review_events"]
	groupID := "kinovzor-rating-sync"

	logger.Info("Rating sync worker started",
		zap.String("topic", topic),
		zap.String("group", groupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	eventHandler := func(event *infraKafka.ReviewEvent) error {
		return syncMovieRating(ctx, movieRepo, reviewRepo, event.MovieID)
	}

	infraKafka.StartReviewEventConsumer(ctx, cfg.Kafka.Brokers, topic, groupID, eventHandler)
}

// syncMovieRating recomputes a movie's rating stats from the database and
// writes them into the search index. A movie deleted since the event was
// published just gets its document dropped.
func syncMovieRating(ctx context.Context, movieRepo *repository.MovieRepository, reviewRepo *repository.ReviewRepository, movieID int64) error {
	syncCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	movie, err := movieRepo.GetByID(movieID)
	if err != nil {
		logger.Info("Movie gone, removing search document", zap.Int64("movie_id", movieID))
		return infraES.DeleteMovie(syncCtx, movieID)
	}

	count, avg, err := reviewRepo.RatingStats(movieID)
	if err != nil {
		return err
	}

	var average *float64
	if count > 0 && avg.Valid {
		rounded := math.Round(avg.Float64*10) / 10
		average = &rounded
	}

	if err := syncToIndex(syncCtx, movie, count, average); err != nil {
		return err
	}

	logger.Info("Movie rating synced",
		zap.Int64("movie_id", movieID),
		zap.Int64("rating_count", count),
	)
	return nil
}

func syncToIndex(ctx context.Context, movie *model.Movie, count int64, average *float64) error {
	return infraES.SyncMovie(ctx, movie, count, average)
}
