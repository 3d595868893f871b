package service

import (
	"testing"

	"kinovzor/internal/model"
	"kinovzor/internal/repository"
	"kinovzor/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type favoriteServiceFixture struct {
	svc   *FavoriteService
	user  *model.User
	movie *model.Movie
}

func newFavoriteServiceFixture(t *testing.T) *favoriteServiceFixture {
	t.Helper()
	testutil.InitLogger(t)

	db := testutil.NewTestDB(t)
	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	f := &favoriteServiceFixture{
		svc: NewFavoriteService(favoriteRepo, movieRepo),
	}

	f.user = &model.User{Email: "volkov@mail.ru", Password: "hashed", Username: "volkov", IsUser: true}
	require.NoError(t, userRepo.Create(f.user))
	f.movie = &model.Movie{Title: "Пульп Фикшн", Genre: "Триллер", Year: 1994}
	require.NoError(t, movieRepo.Create(f.movie))

	return f
}

func TestFavoriteService_AddFavorite(t *testing.T) {
	f := newFavoriteServiceFixture(t)

	status, err := f.svc.AddFavorite(f.movie.ID, f.user.ID)
	require.NoError(t, err)
	assert.True(t, status.IsFavorite)

	// The same pair again is a conflict the client can show.
	_, err = f.svc.AddFavorite(f.movie.ID, f.user.ID)
	assert.ErrorIs(t, err, ErrAlreadyFavorited)

	_, err = f.svc.AddFavorite(9999, f.user.ID)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestFavoriteService_RemoveFavorite_Idempotent(t *testing.T) {
	f := newFavoriteServiceFixture(t)

	_, err := f.svc.AddFavorite(f.movie.ID, f.user.ID)
	require.NoError(t, err)

	status, err := f.svc.RemoveFavorite(f.movie.ID, f.user.ID)
	require.NoError(t, err)
	assert.False(t, status.IsFavorite)

	// Removing again, or removing something never favorited, still succeeds.
	_, err = f.svc.RemoveFavorite(f.movie.ID, f.user.ID)
	assert.NoError(t, err)
	_, err = f.svc.RemoveFavorite(9999, f.user.ID)
	assert.NoError(t, err)
}

func TestFavoriteService_FavoriteStatus(t *testing.T) {
	f := newFavoriteServiceFixture(t)

	status, err := f.svc.FavoriteStatus(f.movie.ID, f.user.ID)
	require.NoError(t, err)
	assert.False(t, status.IsFavorite)

	_, err = f.svc.AddFavorite(f.movie.ID, f.user.ID)
	require.NoError(t, err)

	status, err = f.svc.FavoriteStatus(f.movie.ID, f.user.ID)
	require.NoError(t, err)
	assert.True(t, status.IsFavorite)

	_, err = f.svc.FavoriteStatus(9999, f.user.ID)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestFavoriteService_ListFavorites(t *testing.T) {
	f := newFavoriteServiceFixture(t)

	data, err := f.svc.ListFavorites(f.user.ID)
	require.NoError(t, err)
	assert.Zero(t, data.Total)
	assert.Empty(t, data.Movies)

	_, err = f.svc.AddFavorite(f.movie.ID, f.user.ID)
	require.NoError(t, err)

	data, err = f.svc.ListFavorites(f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), data.Total)
	require.Len(t, data.Movies, 1)
	assert.Equal(t, "Пульп Фикшн", data.Movies[0].Title, "favorites come back as full movie records")
}
