package repository

import (
	"testing"

	"kinovzor/internal/model"
	"kinovzor/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUser(t *testing.T, repo *UserRepository, email, username string) *model.User {
	t.Helper()
	user := &model.User{
		Email:    email,
		Password: "hashed",
		Username: username,
		IsUser:   true,
	}
	require.NoError(t, repo.Create(user))
	return user
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := NewUserRepository(testutil.NewTestDB(t))

	user := newUser(t, repo, "ivanov@mail.ru", "ivanov")

	got, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ivanov@mail.ru", got.Email)

	byEmail, err := repo.GetByEmail("ivanov@mail.ru")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byUsername, err := repo.GetByUsername("ivanov")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byUsername.ID)

	_, err = repo.GetByID(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_Update_Partial(t *testing.T) {
	repo := NewUserRepository(testutil.NewTestDB(t))
	user := newUser(t, repo, "petrov@mail.ru", "petrov")

	updated, err := repo.Update(user.ID, map[string]interface{}{"username": "petrov2"})
	require.NoError(t, err)
	assert.Equal(t, "petrov2", updated.Username)
	assert.Equal(t, "petrov@mail.ru", updated.Email, "untouched field keeps its value")
}

func TestUserRepository_Update_EmptyMapIsNoop(t *testing.T) {
	repo := NewUserRepository(testutil.NewTestDB(t))
	user := newUser(t, repo, "petrov@mail.ru", "petrov")

	updated, err := repo.Update(user.ID, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "petrov", updated.Username)
	assert.Equal(t, user.ID, updated.ID)
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	repo := NewUserRepository(testutil.NewTestDB(t))

	_, err := repo.Update(12345, map[string]interface{}{"username": "ghost"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_Delete_CascadesReviewsAndFavorites(t *testing.T) {
	db := testutil.NewTestDB(t)
	userRepo := NewUserRepository(db)
	movieRepo := NewMovieRepository(db)
	reviewRepo := NewReviewRepository(db)
	favoriteRepo := NewFavoriteRepository(db)

	user := newUser(t, userRepo, "smirnov@mail.ru", "smirnov")
	movie := &model.Movie{Title: "Матрица", Genre: "Фантастика", Year: 1999}
	require.NoError(t, movieRepo.Create(movie))

	require.NoError(t, reviewRepo.Create(&model.Review{MovieID: movie.ID, UserID: user.ID, Text: "Отлично"}))
	_, created, err := favoriteRepo.Add(movie.ID, user.ID)
	require.NoError(t, err)
	require.True(t, created)

	require.NoError(t, userRepo.Delete(user.ID))

	_, err = userRepo.GetByID(user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var reviewCount, favoriteCount int64
	require.NoError(t, db.Model(&model.Review{}).Where("user_id = ?", user.ID).Count(&reviewCount).Error)
	require.NoError(t, db.Model(&model.Favorite{}).Where("user_id = ?", user.ID).Count(&favoriteCount).Error)
	assert.Zero(t, reviewCount)
	assert.Zero(t, favoriteCount)

	// The movie itself survives.
	_, err = movieRepo.GetByID(movie.ID)
	assert.NoError(t, err)
}

func TestUserRepository_Delete_NotFound(t *testing.T) {
	repo := NewUserRepository(testutil.NewTestDB(t))

	err := repo.Delete(404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_Exists(t *testing.T) {
	repo := NewUserRepository(testutil.NewTestDB(t))
	newUser(t, repo, "lebedev@mail.ru", "lebedev")

	exists, err := repo.ExistsByEmail("lebedev@mail.ru")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail("nobody@mail.ru")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsByUsername("lebedev")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByUsername("nobody")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_ListWithFilters(t *testing.T) {
	repo := NewUserRepository(testutil.NewTestDB(t))
	newUser(t, repo, "a@mail.ru", "alpha")
	newUser(t, repo, "b@mail.ru", "bravo")
	newUser(t, repo, "c@mail.ru", "charlie")

	users, total, err := repo.ListWithFilters(0, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, users, 2)

	users, total, err = repo.ListWithFilters(2, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, users, 1)
}

func TestUserRepository_ListWithFilters_UsernameFilter(t *testing.T) {
	repo := NewUserRepository(testutil.NewTestDB(t))
	newUser(t, repo, "a@mail.ru", "Alpha")
	newUser(t, repo, "b@mail.ru", "bravo")
	newUser(t, repo, "c@mail.ru", "alphonse")

	// Substring match, case-insensitive.
	filter := "alph"
	users, total, err := repo.ListWithFilters(0, 10, &filter)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Contains(t, []string{"Alpha", "alphonse"}, u.Username)
	}

	filter = "nobody"
	users, total, err = repo.ListWithFilters(0, 10, &filter)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, users)

	// An empty filter behaves like no filter.
	filter = ""
	_, total, err = repo.ListWithFilters(0, 10, &filter)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}
