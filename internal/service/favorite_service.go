package service

import (
	"errors"

	"kinovzor/internal/api/dto"
	"kinovzor/internal/repository"
	"kinovzor/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrAlreadyFavorited = errors.New("movie already in favorites")

type FavoriteService struct {
	favoriteRepo *repository.FavoriteRepository
	movieRepo    *repository.MovieRepository
}

func NewFavoriteService(favoriteRepo *repository.FavoriteRepository, movieRepo *repository.MovieRepository) *FavoriteService {
	return &FavoriteService{favoriteRepo: favoriteRepo, movieRepo: movieRepo}
}

// AddFavorite puts a movie on the user's favorites list. Adding it twice is
// an error the client can surface.
func (s *FavoriteService) AddFavorite(movieID, userID int64) (*dto.FavoriteStatusData, error) {
	if _, err := s.movieRepo.GetByID(movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	_, created, err := s.favoriteRepo.Add(movieID, userID)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrAlreadyFavorited
	}

	logger.Info("Favorite added",
		zap.Int64("movie_id", movieID),
		zap.Int64("user_id", userID),
	)

	return &dto.FavoriteStatusData{MovieID: movieID, IsFavorite: true}, nil
}

// RemoveFavorite takes a movie off the list. Removing something that was
// never favorited succeeds quietly; the end state is the same either way.
func (s *FavoriteService) RemoveFavorite(movieID, userID int64) (*dto.FavoriteStatusData, error) {
	removed, err := s.favoriteRepo.Remove(movieID, userID)
	if err != nil {
		return nil, err
	}

	if removed {
		logger.Info("Favorite removed",
			zap.Int64("movie_id", movieID),
			zap.Int64("user_id", userID),
		)
	}

	return &dto.FavoriteStatusData{MovieID: movieID, IsFavorite: false}, nil
}

// FavoriteStatus reports whether the movie is on the user's list.
func (s *FavoriteService) FavoriteStatus(movieID, userID int64) (*dto.FavoriteStatusData, error) {
	if _, err := s.movieRepo.GetByID(movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	exists, err := s.favoriteRepo.Exists(movieID, userID)
	if err != nil {
		return nil, err
	}
	return &dto.FavoriteStatusData{MovieID: movieID, IsFavorite: exists}, nil
}

// ListFavorites returns the user's favorite movies as full records, most
// recently favorited first.
func (s *FavoriteService) ListFavorites(userID int64) (*dto.FavoriteListData, error) {
	movies, err := s.favoriteRepo.ListMoviesByUser(userID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MovieInfo, 0, len(movies))
	for i := range movies {
		items = append(items, toMovieInfo(&movies[i]))
	}

	return &dto.FavoriteListData{Movies: items, Total: int64(len(items))}, nil
}
