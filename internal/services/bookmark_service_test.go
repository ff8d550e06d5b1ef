package services

import (
	"context"
	"sync"
	"testing"

	"geekku_backend/internal/models"
	"geekku_backend/internal/repositories"
	"geekku_backend/internal/testutil"
	"geekku_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBookmarkToggleAlternates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, env.db, &models.User{})
	company := testutil.CreateCompany(t, env.db, &models.Company{})
	estate := testutil.CreateEstate(t, env.db, &models.Estate{CompanyID: company.CompanyID})

	bookmarks := env.services.BookmarkService
	for i, want := range []bool{true, false, true} {
		got, err := bookmarks.Toggle(ctx, env.db, models.BookmarkEstate, user.UserID, estate.EstateNum)
		require.NoError(t, err)
		assert.Equal(t, want, got, "toggle #%d", i+1)
	}

	marked, err := bookmarks.IsBookmarked(ctx, env.db, models.BookmarkEstate, user.UserID, estate.EstateNum)
	require.NoError(t, err)
	assert.True(t, marked)
}

func TestBookmarkToggleMissingTarget(t *testing.T) {
	env := newTestEnv(t)
	user := testutil.CreateUser(t, env.db, &models.User{})

	_, err := env.services.BookmarkService.Toggle(context.Background(), env.db, models.BookmarkInterior, user.UserID, 12345)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}

func TestBookmarkToggleConcurrentKeepsSingleRow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, env.db, &models.User{})
	author := testutil.CreateUser(t, env.db, &models.User{})
	community := testutil.CreateCommunity(t, env.db, &models.Community{UserID: author.UserID})

	const workers = 9
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		added int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := env.services.BookmarkService.Toggle(ctx, env.db, models.BookmarkCommunity, user.UserID, community.CommunityNum)
			if !assert.NoError(t, err) {
				return
			}
			if ok {
				mu.Lock()
				added++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	count, err := repositories.NewBookmarkRepository().Count(env.db, models.BookmarkCommunity, user.UserID, community.CommunityNum)
	require.NoError(t, err)
	assert.LessOrEqual(t, count, int64(1))
	// нечетное число переключений оставляет закладку
	assert.EqualValues(t, 1, count)
	assert.Equal(t, workers/2+1, added)
}

func TestEstateDeleteRemovesBookmarks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, env.db, &models.User{})
	company := testutil.CreateCompany(t, env.db, &models.Company{})
	estate := testutil.CreateEstate(t, env.db, &models.Estate{CompanyID: company.CompanyID})

	_, err := env.services.EstateService.ToggleBookmark(ctx, env.db, user.UserID, estate.EstateNum)
	require.NoError(t, err)
	require.NoError(t, env.services.EstateService.Delete(ctx, env.db, estate.EstateNum))

	count, err := repositories.NewBookmarkRepository().Count(env.db, models.BookmarkEstate, user.UserID, estate.EstateNum)
	require.NoError(t, err)
	assert.Zero(t, count)
}

// racingBookmarkRepo отвечает нарушением уникальности на первые failures вставок,
// как если бы параллельная транзакция успела вставить ту же закладку
type racingBookmarkRepo struct {
	repositories.BookmarkRepository
	failures int
	creates  int
}

func (r *racingBookmarkRepo) Create(db *gorm.DB, kind models.BookmarkKind, userID string, target int) error {
	r.creates++
	if r.creates <= r.failures {
		return gorm.ErrDuplicatedKey
	}
	return r.BookmarkRepository.Create(db, kind, userID, target)
}

func TestBookmarkToggleRetriesAfterUniqueViolation(t *testing.T) {
	env := newTestEnv(t)
	user := testutil.CreateUser(t, env.db, &models.User{})
	company := testutil.CreateCompany(t, env.db, &models.Company{})
	estate := testutil.CreateEstate(t, env.db, &models.Estate{CompanyID: company.CompanyID})

	repo := &racingBookmarkRepo{BookmarkRepository: repositories.NewBookmarkRepository(), failures: 1}
	svc := NewBookmarkService(repo)

	added, err := svc.Toggle(context.Background(), env.db, models.BookmarkEstate, user.UserID, estate.EstateNum)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, 2, repo.creates)

	count, err := repositories.NewBookmarkRepository().Count(env.db, models.BookmarkEstate, user.UserID, estate.EstateNum)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestBookmarkToggleConflictAfterRepeatedRace(t *testing.T) {
	env := newTestEnv(t)
	user := testutil.CreateUser(t, env.db, &models.User{})
	company := testutil.CreateCompany(t, env.db, &models.Company{})
	estate := testutil.CreateEstate(t, env.db, &models.Estate{CompanyID: company.CompanyID})

	repo := &racingBookmarkRepo{BookmarkRepository: repositories.NewBookmarkRepository(), failures: 2}
	svc := NewBookmarkService(repo)

	_, err := svc.Toggle(context.Background(), env.db, models.BookmarkEstate, user.UserID, estate.EstateNum)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeConflict, apperrors.CodeOf(err))
	assert.Equal(t, 2, repo.creates)

	count, err := repositories.NewBookmarkRepository().Count(env.db, models.BookmarkEstate, user.UserID, estate.EstateNum)
	require.NoError(t, err)
	assert.Zero(t, count)
}
