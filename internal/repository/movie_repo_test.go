package repository

import (
	"testing"

	"kinovzor/internal/model"
	"kinovzor/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMovie(t *testing.T, repo *MovieRepository, title, genre string, year int) *model.Movie {
	t.Helper()
	movie := &model.Movie{Title: title, Genre: genre, Year: year}
	require.NoError(t, repo.Create(movie))
	return movie
}

func TestMovieRepository_CreateAndGet(t *testing.T) {
	repo := NewMovieRepository(testutil.NewTestDB(t))

	movie := newMovie(t, repo, "Матрица", "Фантастика", 1999)

	got, err := repo.GetByID(movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Матрица", got.Title)
	assert.Nil(t, got.Description)
	assert.Nil(t, got.PosterURL)

	_, err = repo.GetByID(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMovieRepository_List_SortModes(t *testing.T) {
	repo := NewMovieRepository(testutil.NewTestDB(t))
	newMovie(t, repo, "Вторая", "Драма", 1994)
	newMovie(t, repo, "Альфа", "Драма", 2014)
	newMovie(t, repo, "Ясная", "Комедия", 1985)

	// popular: newest id first
	movies, total, err := repo.List(0, 10, nil, SortPopular)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, movies, 3)
	assert.Equal(t, "Ясная", movies[0].Title)

	// title: alphabetical
	movies, _, err = repo.List(0, 10, nil, SortTitle)
	require.NoError(t, err)
	assert.Equal(t, "Альфа", movies[0].Title)
	assert.Equal(t, "Ясная", movies[2].Title)

	// year: newest year first
	movies, _, err = repo.List(0, 10, nil, SortYear)
	require.NoError(t, err)
	assert.Equal(t, 2014, movies[0].Year)
	assert.Equal(t, 1985, movies[2].Year)
}

func TestMovieRepository_List_GenreFilter(t *testing.T) {
	repo := NewMovieRepository(testutil.NewTestDB(t))
	newMovie(t, repo, "Первая", "Драма", 1994)
	newMovie(t, repo, "Вторая", "Комедия", 1985)

	genre := "Драма"
	movies, total, err := repo.List(0, 10, &genre, SortPopular)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, movies, 1)
	assert.Equal(t, "Первая", movies[0].Title)

	// "all" means no filter
	all := "all"
	_, total, err = repo.List(0, 10, &all, SortPopular)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestMovieRepository_Delete_CascadesChildren(t *testing.T) {
	db := testutil.NewTestDB(t)
	movieRepo := NewMovieRepository(db)
	userRepo := NewUserRepository(db)
	reviewRepo := NewReviewRepository(db)
	favoriteRepo := NewFavoriteRepository(db)

	movie := newMovie(t, movieRepo, "Титаник", "Мелодрама", 1997)
	user := newUser(t, userRepo, "viewer@mail.ru", "viewer")

	require.NoError(t, reviewRepo.Create(&model.Review{MovieID: movie.ID, UserID: user.ID, Text: "Трогательно"}))
	_, created, err := favoriteRepo.Add(movie.ID, user.ID)
	require.NoError(t, err)
	require.True(t, created)

	require.NoError(t, movieRepo.Delete(movie.ID))

	_, err = movieRepo.GetByID(movie.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var reviewCount, favoriteCount int64
	require.NoError(t, db.Model(&model.Review{}).Where("movie_id = ?", movie.ID).Count(&reviewCount).Error)
	require.NoError(t, db.Model(&model.Favorite{}).Where("movie_id = ?", movie.ID).Count(&favoriteCount).Error)
	assert.Zero(t, reviewCount)
	assert.Zero(t, favoriteCount)

	// The reviewer is untouched.
	_, err = userRepo.GetByID(user.ID)
	assert.NoError(t, err)
}

func TestMovieRepository_Update_EmptyMapIsNoop(t *testing.T) {
	repo := NewMovieRepository(testutil.NewTestDB(t))
	movie := newMovie(t, repo, "Интерстеллар", "Фантастика", 2014)

	updated, err := repo.Update(movie.ID, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "Интерстеллар", updated.Title)

	updated, err = repo.Update(movie.ID, map[string]interface{}{"year": 2015})
	require.NoError(t, err)
	assert.Equal(t, 2015, updated.Year)
	assert.Equal(t, "Интерстеллар", updated.Title)
}

func TestMovieRepository_Count(t *testing.T) {
	repo := NewMovieRepository(testutil.NewTestDB(t))
	newMovie(t, repo, "Один дома", "Комедия", 1990)
	newMovie(t, repo, "Матрица", "Фантастика", 1999)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
