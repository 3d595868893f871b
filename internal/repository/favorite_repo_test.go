package repository

import (
	"testing"
	"time"

	"kinovzor/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteRepository_Add(t *testing.T) {
	db := testutil.NewTestDB(t)
	userRepo := NewUserRepository(db)
	movieRepo := NewMovieRepository(db)
	favoriteRepo := NewFavoriteRepository(db)

	user := newUser(t, userRepo, "volkov@mail.ru", "volkov")
	movie := newMovie(t, movieRepo, "Матрица", "Фантастика", 1999)

	fav, created, err := favoriteRepo.Add(movie.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, fav)
	assert.Equal(t, movie.ID, fav.MovieID)

	// The pair is unique; a second add reports nothing created.
	_, created, err = favoriteRepo.Add(movie.ID, user.ID)
	require.NoError(t, err)
	assert.False(t, created)

	count, err := favoriteRepo.CountByMovie(movie.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestFavoriteRepository_Remove_Idempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	userRepo := NewUserRepository(db)
	movieRepo := NewMovieRepository(db)
	favoriteRepo := NewFavoriteRepository(db)

	user := newUser(t, userRepo, "volkov@mail.ru", "volkov")
	movie := newMovie(t, movieRepo, "Титаник", "Мелодрама", 1997)

	_, _, err := favoriteRepo.Add(movie.ID, user.ID)
	require.NoError(t, err)

	removed, err := favoriteRepo.Remove(movie.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	// Removing again succeeds and reports nothing removed.
	removed, err = favoriteRepo.Remove(movie.ID, user.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestFavoriteRepository_Exists(t *testing.T) {
	db := testutil.NewTestDB(t)
	userRepo := NewUserRepository(db)
	movieRepo := NewMovieRepository(db)
	favoriteRepo := NewFavoriteRepository(db)

	user := newUser(t, userRepo, "pavlov@mail.ru", "pavlov")
	movie := newMovie(t, movieRepo, "Один дома", "Комедия", 1990)

	exists, err := favoriteRepo.Exists(movie.ID, user.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	_, _, err = favoriteRepo.Add(movie.ID, user.ID)
	require.NoError(t, err)

	exists, err = favoriteRepo.Exists(movie.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFavoriteRepository_ListMoviesByUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	userRepo := NewUserRepository(db)
	movieRepo := NewMovieRepository(db)
	favoriteRepo := NewFavoriteRepository(db)

	user := newUser(t, userRepo, "antonov@mail.ru", "antonov")
	other := newUser(t, userRepo, "other@mail.ru", "other")
	first := newMovie(t, movieRepo, "Первый", "Драма", 1994)
	second := newMovie(t, movieRepo, "Второй", "Комедия", 1985)
	third := newMovie(t, movieRepo, "Третий", "Триллер", 1999)

	_, _, err := favoriteRepo.Add(first.ID, user.ID)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond) // distinct created_at for ordering
	_, _, err = favoriteRepo.Add(second.ID, user.ID)
	require.NoError(t, err)
	_, _, err = favoriteRepo.Add(third.ID, other.ID)
	require.NoError(t, err)

	movies, err := favoriteRepo.ListMoviesByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, movies, 2, "other users' favorites stay out")
	assert.Equal(t, second.ID, movies[0].ID, "most recently favorited first")
	assert.Equal(t, first.ID, movies[1].ID)
}
