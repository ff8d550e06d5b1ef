package repositories

import (
	"testing"
	"time"

	"geekku_backend/internal/models"
	"geekku_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstateListKeywordAndType(t *testing.T) {
	db := testutil.NewTestDB(t)
	company := testutil.CreateCompany(t, db, &models.Company{Password: "pw"})
	repo := NewEstateRepository()

	testutil.CreateEstate(t, db, &models.Estate{CompanyID: company.CompanyID, Type: "apartment", Title: "강남 아파트", Address1: "서울 강남구"})
	testutil.CreateEstate(t, db, &models.Estate{CompanyID: company.CompanyID, Type: "villa", Title: "빌라", JibunAddress: "서울 강남구 역삼동"})
	testutil.CreateEstate(t, db, &models.Estate{CompanyID: company.CompanyID, Type: "apartment", Title: "부산 아파트", Address1: "부산 해운대구"})

	all, total, err := repo.List(db, "", "강남", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, all, 2)

	apartments, total, err := repo.List(db, "apartment", "강남", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, apartments, 1)
	assert.Equal(t, "강남 아파트", apartments[0].Title)
}

func TestEstateFindByNumMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	_, err := NewEstateRepository().FindByNum(db, 404)
	assert.ErrorIs(t, err, ErrEstateNotFound)
}

func TestCompanyFindByIDsDeduplicates(t *testing.T) {
	db := testutil.NewTestDB(t)
	a := testutil.CreateCompany(t, db, &models.Company{CompanyName: "A"})
	b := testutil.CreateCompany(t, db, &models.Company{CompanyName: "B"})

	found, err := NewCompanyRepository().FindByIDs(db, []string{a.CompanyID, b.CompanyID, a.CompanyID, "missing"})
	require.NoError(t, err)
	assert.Len(t, found, 2)
	assert.Equal(t, "A", found[a.CompanyID].CompanyName)
}

func TestCompanyUpdateMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	err := NewCompanyRepository().Update(db, "missing", map[string]interface{}{"company_name": "x"})
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestCompanyDuplicateUsernameIsUniqueViolation(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.CreateCompany(t, db, &models.Company{Username: "dup"})

	err := NewCompanyRepository().Create(db, &models.Company{Username: "dup", Type: models.CompanyTypeEstate, Role: models.RoleCompany, Password: "x"})
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestBookmarkCreateTwiceViolatesUniqueIndex(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, &models.User{})
	company := testutil.CreateCompany(t, db, &models.Company{})
	estate := testutil.CreateEstate(t, db, &models.Estate{CompanyID: company.CompanyID})
	repo := NewBookmarkRepository()

	require.NoError(t, repo.Create(db, models.BookmarkEstate, user.UserID, estate.EstateNum))
	err := repo.Create(db, models.BookmarkEstate, user.UserID, estate.EstateNum)
	assert.True(t, IsUniqueViolation(err))

	deleted, err := repo.Delete(db, models.BookmarkEstate, user.UserID, estate.EstateNum)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	deleted, err = repo.Delete(db, models.BookmarkEstate, user.UserID, estate.EstateNum)
	require.NoError(t, err)
	assert.EqualValues(t, 0, deleted)
}

func TestBookmarkTargetExists(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, &models.User{})
	community := testutil.CreateCommunity(t, db, &models.Community{UserID: user.UserID})
	repo := NewBookmarkRepository()

	ok, err := repo.TargetExists(db, models.BookmarkCommunity, community.CommunityNum)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.TargetExists(db, models.BookmarkInterior, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCommunityIncrementViewCount(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, &models.User{})
	community := testutil.CreateCommunity(t, db, &models.Community{UserID: user.UserID})
	repo := NewCommunityRepository()

	require.NoError(t, repo.IncrementViewCount(db, community.CommunityNum))
	require.NoError(t, repo.IncrementViewCount(db, community.CommunityNum))

	found, err := repo.FindByNum(db, community.CommunityNum)
	require.NoError(t, err)
	assert.Equal(t, 2, found.ViewCount)
}

func TestAuthCodeFindLatestPrefersNewest(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewAuthCodeRepository()

	require.NoError(t, repo.Create(db, &models.Auth{Phone: "010-1234-5678", CertificationNum: 111111, CreatedAt: time.Now()}))
	require.NoError(t, repo.Create(db, &models.Auth{Phone: "010-1234-5678", CertificationNum: 222222, CreatedAt: time.Now()}))

	latest, err := repo.FindLatest(db, "010-1234-5678", "")
	require.NoError(t, err)
	assert.Equal(t, 222222, latest.CertificationNum)

	require.NoError(t, repo.DeleteFor(db, "010-1234-5678", ""))
	_, err = repo.FindLatest(db, "010-1234-5678", "")
	assert.ErrorIs(t, err, ErrAuthCodeNotFound)
}
