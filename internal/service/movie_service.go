package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"path"
	"strings"
	"time"

	"kinovzor/internal/api/dto"
	"kinovzor/internal/config"
	"kinovzor/internal/infra/elasticsearch"
	"kinovzor/internal/infra/minio"
	"kinovzor/internal/model"
	"kinovzor/internal/repository"
	"kinovzor/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrMovieNotFound     = errors.New("movie not found")
	ErrUnsupportedPoster = errors.New("poster must be an image")
)

type MovieService struct {
	movieRepo  *repository.MovieRepository
	reviewRepo *repository.ReviewRepository
}

func NewMovieService(movieRepo *repository.MovieRepository, reviewRepo *repository.ReviewRepository) *MovieService {
	return &MovieService{movieRepo: movieRepo, reviewRepo: reviewRepo}
}

// ListMovies returns a catalog page. Sort modes: popular (default), title,
// year. A genre of "all" means no filter.
func (s *MovieService) ListMovies(page, pageSize int, genre *string, sort string) (*dto.MovieListData, error) {
	skip := (page - 1) * pageSize

	movies, total, err := s.movieRepo.List(skip, pageSize, genre, sort)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MovieInfo, 0, len(movies))
	for i := range movies {
		items = append(items, toMovieInfo(&movies[i]))
	}

	return &dto.MovieListData{
		Movies:     items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// GetMovie returns one movie.
func (s *MovieService) GetMovie(id int64) (*dto.MovieInfo, error) {
	movie, err := s.movieRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	info := toMovieInfo(movie)
	return &info, nil
}

// CreateMovie adds a catalog entry and mirrors it into the search index.
func (s *MovieService) CreateMovie(ctx context.Context, req *dto.MovieCreateRequest) (*dto.MovieInfo, error) {
	movie := &model.Movie{
		Title:       req.Title,
		Description: req.Description,
		Genre:       req.Genre,
		Year:        req.Year,
		PosterURL:   req.PosterURL,
	}
	if err := s.movieRepo.Create(movie); err != nil {
		return nil, err
	}

	s.syncToSearch(ctx, movie)

	logger.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	info := toMovieInfo(movie)
	return &info, nil
}

// UpdateMovie applies a partial update. Unassigned fields keep their values;
// an all-empty request returns the record unchanged.
func (s *MovieService) UpdateMovie(ctx context.Context, id int64, req *dto.MovieUpdateRequest) (*dto.MovieInfo, error) {
	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Genre != nil {
		updates["genre"] = *req.Genre
	}
	if req.Year != nil {
		updates["year"] = *req.Year
	}
	if req.PosterURL != nil {
		updates["poster_url"] = *req.PosterURL
	}

	movie, err := s.movieRepo.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	s.syncToSearch(ctx, movie)

	info := toMovieInfo(movie)
	return &info, nil
}

// DeleteMovie removes a movie together with its reviews and favorites, and
// drops its search document.
func (s *MovieService) DeleteMovie(ctx context.Context, id int64) error {
	err := s.movieRepo.Delete(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMovieNotFound
		}
		return err
	}

	if elasticsearch.Get() != nil {
		if err := elasticsearch.DeleteMovie(ctx, id); err != nil {
			logger.Warn("Failed to remove movie from search index",
				zap.Int64("movie_id", id),
				zap.Error(err),
			)
		}
	}

	logger.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}

// RatingStats aggregates a movie's approved, rated reviews. Average is rounded
// to one decimal and absent when no qualifying review exists.
func (s *MovieService) RatingStats(movieID int64) (*dto.RatingStatsData, error) {
	if _, err := s.movieRepo.GetByID(movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	count, avg, err := s.reviewRepo.RatingStats(movieID)
	if err != nil {
		return nil, err
	}

	stats := &dto.RatingStatsData{Count: count}
	if count > 0 && avg.Valid {
		rounded := math.Round(avg.Float64*10) / 10
		stats.Average = &rounded
	}
	return stats, nil
}

// SiteStats returns overall catalog counts.
func (s *MovieService) SiteStats() (*dto.SiteStatsData, error) {
	movies, err := s.movieRepo.Count()
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviewRepo.Count()
	if err != nil {
		return nil, err
	}
	return &dto.SiteStatsData{MoviesCount: movies, ReviewsCount: reviews}, nil
}

// UploadPoster stores a poster image in object storage and points the movie's
// poster URL at it.
func (s *MovieService) UploadPoster(ctx context.Context, movieID int64, reader io.Reader, size int64, contentType, filename string) (*dto.MovieInfo, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrUnsupportedPoster
	}

	if _, err := s.movieRepo.GetByID(movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	cfg := config.GetMinIO()
	objectName := fmt.Sprintf("movies/%d/%d%s", movieID, time.Now().UnixNano(), path.Ext(filename))

	if _, err := minio.UploadFile(ctx, cfg.PosterBucket, objectName, reader, size, contentType); err != nil {
		return nil, err
	}

	url := minio.PublicURL(cfg.Endpoint, cfg.UseSSL, cfg.PosterBucket, objectName)
	movie, err := s.movieRepo.Update(movieID, map[string]interface{}{"poster_url": url})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	s.syncToSearch(ctx, movie)

	logger.Info("Poster uploaded",
		zap.Int64("movie_id", movieID),
		zap.String("object", objectName),
	)

	info := toMovieInfo(movie)
	return &info, nil
}

// syncToSearch mirrors a movie into Elasticsearch. Search is an optional
// dependency, so failures are logged and swallowed; the worker catches the
// document up on the next review event.
func (s *MovieService) syncToSearch(ctx context.Context, movie *model.Movie) {
	if elasticsearch.Get() == nil {
		return
	}

	count, avg, err := s.reviewRepo.RatingStats(movie.ID)
	if err != nil {
		logger.Warn("Failed to load rating stats for search sync",
			zap.Int64("movie_id", movie.ID),
			zap.Error(err),
		)
		return
	}

	var average *float64
	if count > 0 && avg.Valid {
		rounded := math.Round(avg.Float64*10) / 10
		average = &rounded
	}

	if err := elasticsearch.SyncMovie(ctx, movie, count, average); err != nil {
		logger.Warn("Failed to sync movie to search index",
			zap.Int64("movie_id", movie.ID),
			zap.Error(err),
		)
	}
}

func toMovieInfo(movie *model.Movie) dto.MovieInfo {
	return dto.MovieInfo{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Genre:       movie.Genre,
		Year:        movie.Year,
		PosterURL:   movie.PosterURL,
		CreatedAt:   movie.CreatedAt,
		UpdatedAt:   movie.UpdatedAt,
	}
}
