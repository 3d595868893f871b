package service

import (
	"context"
	"testing"

	"kinovzor/internal/api/dto"
	"kinovzor/internal/infra/kafka"
	"kinovzor/internal/model"
	"kinovzor/internal/repository"
	"kinovzor/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturePublisher records published events instead of talking to a broker.
type capturePublisher struct {
	events []*kafka.ReviewEvent
}

func (p *capturePublisher) Publish(_ context.Context, event *kafka.ReviewEvent) error {
	p.events = append(p.events, event)
	return nil
}

type reviewServiceFixture struct {
	svc       *ReviewService
	publisher *capturePublisher
	userRepo  *repository.UserRepository
	movieRepo *repository.MovieRepository
	author    *model.User
	stranger  *model.User
	movie     *model.Movie
}

func newReviewServiceFixture(t *testing.T) *reviewServiceFixture {
	t.Helper()
	testutil.InitLogger(t)

	db := testutil.NewTestDB(t)
	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	publisher := &capturePublisher{}

	f := &reviewServiceFixture{
		svc:       NewReviewService(reviewRepo, movieRepo, publisher),
		publisher: publisher,
		userRepo:  userRepo,
		movieRepo: movieRepo,
	}

	f.author = &model.User{Email: "ivanov@mail.ru", Password: "hashed", Username: "ivanov", IsUser: true}
	require.NoError(t, userRepo.Create(f.author))
	f.stranger = &model.User{Email: "petrov@mail.ru", Password: "hashed", Username: "petrov", IsUser: true}
	require.NoError(t, userRepo.Create(f.stranger))

	f.movie = &model.Movie{Title: "Матрица", Genre: "Фантастика", Year: 1999}
	require.NoError(t, movieRepo.Create(f.movie))

	return f
}

func TestReviewService_CreateReview_StartsPending(t *testing.T) {
	f := newReviewServiceFixture(t)
	ctx := context.Background()

	rating := 5
	info, err := f.svc.CreateReview(ctx, f.movie.ID, f.author.ID, &dto.ReviewCreateRequest{
		Text:   "Поражающий воображение фильм!",
		Rating: &rating,
	})
	require.NoError(t, err)
	assert.False(t, info.Approved, "new reviews always await moderation")
	require.NotNil(t, info.Username)
	assert.Equal(t, "ivanov", *info.Username)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, kafka.ReviewSubmitted, f.publisher.events[0].Type)
	assert.Equal(t, f.movie.ID, f.publisher.events[0].MovieID)
}

func TestReviewService_CreateReview_MovieNotFound(t *testing.T) {
	f := newReviewServiceFixture(t)

	_, err := f.svc.CreateReview(context.Background(), 9999, f.author.ID, &dto.ReviewCreateRequest{Text: "x"})
	assert.ErrorIs(t, err, ErrMovieNotFound)
	assert.Empty(t, f.publisher.events)
}

func TestReviewService_ApproveReview_Idempotent(t *testing.T) {
	f := newReviewServiceFixture(t)
	ctx := context.Background()

	info, err := f.svc.CreateReview(ctx, f.movie.ID, f.author.ID, &dto.ReviewCreateRequest{Text: "Отлично"})
	require.NoError(t, err)

	approved, err := f.svc.ApproveReview(ctx, info.ID)
	require.NoError(t, err)
	assert.True(t, approved.Approved)

	// Approving again succeeds and changes nothing.
	again, err := f.svc.ApproveReview(ctx, info.ID)
	require.NoError(t, err)
	assert.True(t, again.Approved)

	_, err = f.svc.ApproveReview(ctx, 9999)
	assert.ErrorIs(t, err, ErrReviewNotFound)

	// submitted + two approved events
	require.Len(t, f.publisher.events, 3)
	assert.Equal(t, kafka.ReviewApproved, f.publisher.events[1].Type)
}

func TestReviewService_UpdateReview_AuthorOnly(t *testing.T) {
	f := newReviewServiceFixture(t)
	ctx := context.Background()

	info, err := f.svc.CreateReview(ctx, f.movie.ID, f.author.ID, &dto.ReviewCreateRequest{Text: "Первый вариант"})
	require.NoError(t, err)

	text := "Исправленный вариант"
	updated, err := f.svc.UpdateReview(info.ID, f.author.ID, &dto.ReviewUpdateRequest{Text: &text})
	require.NoError(t, err)
	assert.Equal(t, text, updated.Text)

	// Someone else, even a would-be moderator, cannot edit the words.
	_, err = f.svc.UpdateReview(info.ID, f.stranger.ID, &dto.ReviewUpdateRequest{Text: &text})
	assert.ErrorIs(t, err, ErrReviewForbidden)
}

func TestReviewService_DeleteReview_AuthorOrModerator(t *testing.T) {
	f := newReviewServiceFixture(t)
	ctx := context.Background()

	info, err := f.svc.CreateReview(ctx, f.movie.ID, f.author.ID, &dto.ReviewCreateRequest{Text: "Удалите меня"})
	require.NoError(t, err)

	// A stranger without the moderator flag is refused.
	err = f.svc.DeleteReview(ctx, info.ID, f.stranger.ID, false)
	assert.ErrorIs(t, err, ErrReviewForbidden)

	// A moderator may remove anyone's review.
	require.NoError(t, f.svc.DeleteReview(ctx, info.ID, f.stranger.ID, true))

	_, err = f.svc.GetReview(info.ID)
	assert.ErrorIs(t, err, ErrReviewNotFound)

	deleted := f.publisher.events[len(f.publisher.events)-1]
	assert.Equal(t, kafka.ReviewDeleted, deleted.Type)
}

func TestReviewService_DeleteReview_ByAuthor(t *testing.T) {
	f := newReviewServiceFixture(t)
	ctx := context.Background()

	info, err := f.svc.CreateReview(ctx, f.movie.ID, f.author.ID, &dto.ReviewCreateRequest{Text: "Моё"})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteReview(ctx, info.ID, f.author.ID, false))
}

func TestReviewService_ListMovieReviews(t *testing.T) {
	f := newReviewServiceFixture(t)
	ctx := context.Background()

	first, err := f.svc.CreateReview(ctx, f.movie.ID, f.author.ID, &dto.ReviewCreateRequest{Text: "Одобренный"})
	require.NoError(t, err)
	_, err = f.svc.ApproveReview(ctx, first.ID)
	require.NoError(t, err)

	_, err = f.svc.CreateReview(ctx, f.movie.ID, f.stranger.ID, &dto.ReviewCreateRequest{Text: "Ожидающий"})
	require.NoError(t, err)

	visible, err := f.svc.ListMovieReviews(f.movie.ID, false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Одобренный", visible[0].Text)

	all, err := f.svc.ListMovieReviews(f.movie.ID, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = f.svc.ListMovieReviews(9999, false)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestReviewService_ListPendingReviews(t *testing.T) {
	f := newReviewServiceFixture(t)
	ctx := context.Background()

	oldest, err := f.svc.CreateReview(ctx, f.movie.ID, f.author.ID, &dto.ReviewCreateRequest{Text: "Первый"})
	require.NoError(t, err)
	_, err = f.svc.CreateReview(ctx, f.movie.ID, f.stranger.ID, &dto.ReviewCreateRequest{Text: "Второй"})
	require.NoError(t, err)

	data, err := f.svc.ListPendingReviews(1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), data.Total)
	require.Len(t, data.Reviews, 2)
	assert.Equal(t, oldest.ID, data.Reviews[0].ID, "oldest first")
	require.NotNil(t, data.Reviews[0].MovieTitle)
	assert.Equal(t, "Матрица", *data.Reviews[0].MovieTitle)
}

func TestReviewService_NilPublisher(t *testing.T) {
	testutil.InitLogger(t)
	db := testutil.NewTestDB(t)
	movieRepo := repository.NewMovieRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	userRepo := repository.NewUserRepository(db)

	user := &model.User{Email: "a@mail.ru", Password: "hashed", Username: "a", IsUser: true}
	require.NoError(t, userRepo.Create(user))
	movie := &model.Movie{Title: "Тест", Genre: "Драма", Year: 2000}
	require.NoError(t, movieRepo.Create(movie))

	svc := NewReviewService(reviewRepo, movieRepo, nil)

	// Without a broker the service still works, it just emits nothing.
	info, err := svc.CreateReview(context.Background(), movie.ID, user.ID, &dto.ReviewCreateRequest{Text: "без брокера"})
	require.NoError(t, err)
	assert.False(t, info.Approved)
}
