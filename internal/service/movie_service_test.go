package service

import (
	"context"
	"testing"

	"kinovzor/internal/api/dto"
	"kinovzor/internal/model"
	"kinovzor/internal/repository"
	"kinovzor/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type movieServiceFixture struct {
	svc        *MovieService
	movieRepo  *repository.MovieRepository
	reviewRepo *repository.ReviewRepository
	userRepo   *repository.UserRepository
}

func newMovieServiceFixture(t *testing.T) *movieServiceFixture {
	t.Helper()
	testutil.InitLogger(t)

	db := testutil.NewTestDB(t)
	f := &movieServiceFixture{
		movieRepo:  repository.NewMovieRepository(db),
		reviewRepo: repository.NewReviewRepository(db),
		userRepo:   repository.NewUserRepository(db),
	}
	f.svc = NewMovieService(f.movieRepo, f.reviewRepo)
	return f
}

func (f *movieServiceFixture) createMovie(t *testing.T, title, genre string, year int) *dto.MovieInfo {
	t.Helper()
	info, err := f.svc.CreateMovie(context.Background(), &dto.MovieCreateRequest{
		Title: title,
		Genre: genre,
		Year:  year,
	})
	require.NoError(t, err)
	return info
}

func (f *movieServiceFixture) addApprovedReview(t *testing.T, movieID int64, rating *int) {
	t.Helper()
	user := &model.User{Email: randomEmail(t), Password: "hashed", Username: randomEmail(t), IsUser: true}
	require.NoError(t, f.userRepo.Create(user))

	review := &model.Review{MovieID: movieID, UserID: user.ID, Text: "отзыв", Rating: rating}
	require.NoError(t, f.reviewRepo.Create(review))
	require.NoError(t, f.reviewRepo.Approve(review.ID))
}

var emailCounter int

func randomEmail(t *testing.T) string {
	t.Helper()
	emailCounter++
	return string(rune('a'+emailCounter%26)) + string(rune('a'+(emailCounter/26)%26)) + "@mail.ru"
}

func TestMovieService_CreateAndGet(t *testing.T) {
	f := newMovieServiceFixture(t)

	created := f.createMovie(t, "Матрица", "Фантастика", 1999)
	got, err := f.svc.GetMovie(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Матрица", got.Title)

	_, err = f.svc.GetMovie(9999)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestMovieService_UpdateMovie_Partial(t *testing.T) {
	f := newMovieServiceFixture(t)
	created := f.createMovie(t, "Интерстеллар", "Фантастика", 2013)

	year := 2014
	updated, err := f.svc.UpdateMovie(context.Background(), created.ID, &dto.MovieUpdateRequest{Year: &year})
	require.NoError(t, err)
	assert.Equal(t, 2014, updated.Year)
	assert.Equal(t, "Интерстеллар", updated.Title)

	// Nothing assigned returns the record unchanged.
	same, err := f.svc.UpdateMovie(context.Background(), created.ID, &dto.MovieUpdateRequest{})
	require.NoError(t, err)
	assert.Equal(t, updated, same)

	_, err = f.svc.UpdateMovie(context.Background(), 9999, &dto.MovieUpdateRequest{Year: &year})
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestMovieService_DeleteMovie(t *testing.T) {
	f := newMovieServiceFixture(t)
	created := f.createMovie(t, "Титаник", "Мелодрама", 1997)

	require.NoError(t, f.svc.DeleteMovie(context.Background(), created.ID))
	assert.ErrorIs(t, f.svc.DeleteMovie(context.Background(), created.ID), ErrMovieNotFound)
}

func TestMovieService_RatingStats_RoundsToOneDecimal(t *testing.T) {
	f := newMovieServiceFixture(t)
	created := f.createMovie(t, "Зелёная миля", "Драма", 1999)

	for _, r := range []int{4, 5, 5} {
		rating := r
		f.addApprovedReview(t, created.ID, &rating)
	}

	stats, err := f.svc.RatingStats(created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Count)
	require.NotNil(t, stats.Average)
	assert.Equal(t, 4.7, *stats.Average, "14/3 rounds to one decimal")
}

func TestMovieService_RatingStats_NoRatedReviews(t *testing.T) {
	f := newMovieServiceFixture(t)
	created := f.createMovie(t, "Один дома", "Комедия", 1990)

	// An approved but unrated review contributes nothing.
	f.addApprovedReview(t, created.ID, nil)

	stats, err := f.svc.RatingStats(created.ID)
	require.NoError(t, err)
	assert.Zero(t, stats.Count)
	assert.Nil(t, stats.Average, "average is absent, not zero")

	_, err = f.svc.RatingStats(9999)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestMovieService_ListMovies(t *testing.T) {
	f := newMovieServiceFixture(t)
	f.createMovie(t, "Первая", "Драма", 1994)
	f.createMovie(t, "Вторая", "Комедия", 1985)
	f.createMovie(t, "Третья", "Драма", 1999)

	data, err := f.svc.ListMovies(1, 2, nil, repository.SortPopular)
	require.NoError(t, err)
	assert.Equal(t, int64(3), data.Total)
	assert.Len(t, data.Movies, 2)
	assert.Equal(t, int64(2), data.TotalPages)
	assert.Equal(t, "Третья", data.Movies[0].Title, "popular sorts newest first")

	genre := "Драма"
	data, err = f.svc.ListMovies(1, 10, &genre, repository.SortTitle)
	require.NoError(t, err)
	assert.Equal(t, int64(2), data.Total)
	assert.Equal(t, "Первая", data.Movies[0].Title)
}

func TestMovieService_SiteStats(t *testing.T) {
	f := newMovieServiceFixture(t)
	first := f.createMovie(t, "Первая", "Драма", 1994)
	f.createMovie(t, "Вторая", "Комедия", 1985)

	rating := 5
	f.addApprovedReview(t, first.ID, &rating)

	stats, err := f.svc.SiteStats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.MoviesCount)
	assert.Equal(t, int64(1), stats.ReviewsCount)
}
