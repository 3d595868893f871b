package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"kinovzor/internal/config"
	"kinovzor/internal/model"
	"kinovzor/pkg/logger"

	"go.uber.org/zap"
)

// MoviesIndexMapping returns the mapping for the movies index. Rating fields
// are derived data maintained by the rating sync worker; the database stays
// the source of truth.
func MoviesIndexMapping() string {
	return `{
		"settings": {
			"number_of_shards": 1,
			"number_of_replicas": 0
		},
		"mappings": {
			"properties": {
				"id": {"type": "long"},
				"title": {
					"type": "text",
					"fields": {"keyword": {"type": "keyword", "ignore_above": 255}}
				},
				"description": {"type": "text"},
				"genre": {"type": "keyword"},
				"year": {"type": "integer"},
				"poster_url": {"type": "keyword", "index": false},
				"rating_count": {"type": "long"},
				"rating_average": {"type": "float"},
				"created_at": {"type": "date", "format": "strict_date_optional_time||epoch_millis"},
				"updated_at": {"type": "date", "format": "strict_date_optional_time||epoch_millis"}
			}
		}
	}`
}

// MoviesIndexName resolves the configured movies index name.
func MoviesIndexName() string {
	name := config.GetElasticsearch().Index["movies"]
	if name == "" {
		name = "movies"
	}
	return name
}

// EnsureMoviesIndex creates the movies index when it does not exist yet.
func EnsureMoviesIndex(ctx context.Context) error {
	indexName := MoviesIndexName()

	exists, err := IndicesExists(ctx, indexName)
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	if exists {
		logger.Info("Elasticsearch movies index already exists", zap.String("index", indexName))
		return nil
	}

	body := bytes.NewReader([]byte(MoviesIndexMapping()))
	resp, err := IndicesCreate(ctx, indexName, body)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("create index failed: %s", resp.String())
	}

	logger.Info("Elasticsearch movies index created", zap.String("index", indexName))
	return nil
}

// InitIndexes sets up all indexes, called once at startup.
func InitIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return EnsureMoviesIndex(ctx)
}

// ESMovieDoc is the movie document stored in Elasticsearch.
type ESMovieDoc struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Genre         string   `json:"genre"`
	Year          int      `json:"year"`
	PosterURL     string   `json:"poster_url"`
	RatingCount   int64    `json:"rating_count"`
	RatingAverage *float64 `json:"rating_average"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

func movieToESDoc(m *model.Movie, ratingCount int64, ratingAverage *float64) *ESMovieDoc {
	description := ""
	if m.Description != nil {
		description = *m.Description
	}
	posterURL := ""
	if m.PosterURL != nil {
		posterURL = *m.PosterURL
	}
	return &ESMovieDoc{
		ID:            m.ID,
		Title:         m.Title,
		Description:   description,
		Genre:         m.Genre,
		Year:          m.Year,
		PosterURL:     posterURL,
		RatingCount:   ratingCount,
		RatingAverage: ratingAverage,
		CreatedAt:     m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     m.UpdatedAt.Format(time.RFC3339),
	}
}

// SyncMovie indexes one movie document with its current rating stats.
func SyncMovie(ctx context.Context, m *model.Movie, ratingCount int64, ratingAverage *float64) error {
	doc := movieToESDoc(m, ratingCount, ratingAverage)
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	resp, err := Index(ctx, MoviesIndexName(), fmt.Sprintf("%d", m.ID), bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index document failed: %s", resp.String())
	}

	logger.Debug("Movie synced to ES", zap.Int64("movie_id", m.ID))
	return nil
}

// DeleteMovie removes a movie document. A missing document is not an error.
func DeleteMovie(ctx context.Context, movieID int64) error {
	resp, err := Delete(ctx, MoviesIndexName(), fmt.Sprintf("%d", movieID))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() && resp.StatusCode != 404 {
		return fmt.Errorf("delete document failed: %s", resp.String())
	}
	return nil
}
