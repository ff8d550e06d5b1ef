package repositories

import (
	"testing"

	"geekku_backend/internal/models"
	"geekku_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type sampleRow struct {
	typ, style, location string
	size                 int
}

var sampleFixture = []sampleRow{
	{"apartment", "modern", "seoul", 20},
	{"apartment", "modern", "seoul", 30},
	{"apartment", "natural", "seoul", 20},
	{"villa", "modern", "seoul", 20},
	{"apartment", "modern", "busan", 20},
	{"officetel", "vintage", "incheon", 10},
	{"apartment", "modern", "seoul", 20},
	{"villa", "natural", "busan", 30},
	{"apartment", "vintage", "seoul", 0},
	{"apartment", "modern", "seoul", 20},
	{"house", "modern", "daegu", 40},
}

func seedSamples(t *testing.T, db *gorm.DB) string {
	company := testutil.CreateCompany(t, db, &models.Company{Type: models.CompanyTypeInterior, Password: "pw"})
	for i, r := range sampleFixture {
		testutil.CreateSample(t, db, &models.InteriorSample{
			CompanyID: company.CompanyID,
			Title:     r.typ,
			Type:      r.typ,
			Style:     r.style,
			Location:  r.location,
			Size:      r.size,
			CreatedAt: testutil.At(i),
		})
	}
	return company.CompanyID
}

func TestListSamplesFiltersAreConjunctive(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedSamples(t, db)
	repo := NewInteriorRepository()

	filter := ListingFilter{
		Type:     testutil.StrPtr("apartment"),
		Style:    testutil.StrPtr("modern"),
		Size:     testutil.IntPtr(20),
		Location: testutil.StrPtr("seoul"),
	}
	samples, total, err := repo.ListSamples(db, filter, 1, 10)
	require.NoError(t, err)

	assert.EqualValues(t, 3, total)
	require.Len(t, samples, 3)
	for _, s := range samples {
		assert.Equal(t, "apartment", s.Type)
		assert.Equal(t, "modern", s.Style)
		assert.Equal(t, 20, s.Size)
		assert.Equal(t, "seoul", s.Location)
	}
}

// matches - та же фильтрация, выполненная в памяти над фикстурой
func (f ListingFilter) matches(r sampleRow) bool {
	return (f.Type == nil || *f.Type == r.typ) &&
		(f.Style == nil || *f.Style == r.style) &&
		(f.Size == nil || *f.Size == r.size) &&
		(f.Location == nil || *f.Location == r.location)
}

func TestListSamplesEveryFilterSubset(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedSamples(t, db)
	repo := NewInteriorRepository()

	for mask := 0; mask < 16; mask++ {
		var filter ListingFilter
		if mask&1 != 0 {
			filter.Type = testutil.StrPtr("apartment")
		}
		if mask&2 != 0 {
			filter.Style = testutil.StrPtr("modern")
		}
		if mask&4 != 0 {
			filter.Size = testutil.IntPtr(20)
		}
		if mask&8 != 0 {
			filter.Location = testutil.StrPtr("seoul")
		}

		var want []sampleRow
		for _, r := range sampleFixture {
			if filter.matches(r) {
				want = append(want, r)
			}
		}

		samples, total, err := repo.ListSamples(db, filter, 1, len(sampleFixture))
		require.NoError(t, err, "mask %04b", mask)

		got := make([]sampleRow, 0, len(samples))
		for _, s := range samples {
			got = append(got, sampleRow{typ: s.Type, style: s.Style, location: s.Location, size: s.Size})
		}
		assert.EqualValues(t, len(want), total, "mask %04b", mask)
		assert.ElementsMatch(t, want, got, "mask %04b", mask)
	}
}

func TestListSamplesZeroSizeIsAFilter(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedSamples(t, db)

	samples, total, err := NewInteriorRepository().ListSamples(db, ListingFilter{Size: testutil.IntPtr(0)}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, samples, 1)
	assert.Equal(t, "vintage", samples[0].Style)
}

func TestListSamplesEmptyFilterReturnsEverything(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedSamples(t, db)

	_, total, err := NewInteriorRepository().ListSamples(db, ListingFilter{}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 11, total)
}

func TestListSamplesSortOrders(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedSamples(t, db)
	repo := NewInteriorRepository()

	latest, _, err := repo.ListSamples(db, ListingFilter{Sort: models.SortLatest}, 1, 10)
	require.NoError(t, err)
	for i := 1; i < len(latest); i++ {
		assert.False(t, latest[i].CreatedAt.After(latest[i-1].CreatedAt), "latest must be descending")
	}

	oldest, _, err := repo.ListSamples(db, ListingFilter{Sort: models.SortOldest}, 1, 10)
	require.NoError(t, err)
	for i := 1; i < len(oldest); i++ {
		assert.False(t, oldest[i].CreatedAt.Before(oldest[i-1].CreatedAt), "oldest must be ascending")
	}

	byKey, _, err := repo.ListSamples(db, ListingFilter{}, 1, 10)
	require.NoError(t, err)
	for i := 1; i < len(byKey); i++ {
		assert.Greater(t, byKey[i].SampleNum, byKey[i-1].SampleNum)
	}
}

func TestListSamplesPagination(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedSamples(t, db)
	repo := NewInteriorRepository()

	first, total, err := repo.ListSamples(db, ListingFilter{}, 1, 10)
	require.NoError(t, err)
	second, _, err := repo.ListSamples(db, ListingFilter{}, 2, 10)
	require.NoError(t, err)
	beyond, _, err := repo.ListSamples(db, ListingFilter{}, 5, 10)
	require.NoError(t, err)

	assert.EqualValues(t, 11, total)
	assert.Len(t, first, 10)
	assert.Len(t, second, 1)
	assert.Empty(t, beyond)
}

func TestParseSortOrderIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, models.SortLatest, models.ParseSortOrder("LATEST"))
	assert.Equal(t, models.SortOldest, models.ParseSortOrder(" Oldest "))
	assert.Equal(t, models.SortOrder(""), models.ParseSortOrder("popular"))
}

func TestCommunityListFilteredCombinesFilterAndSort(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, &models.User{Password: "pw"})
	for i := 0; i < 12; i++ {
		style := "modern"
		if i%3 == 0 {
			style = "natural"
		}
		testutil.CreateCommunity(t, db, &models.Community{
			UserID:    user.UserID,
			Type:      "apartment",
			Style:     style,
			CreatedAt: testutil.At(i),
		})
	}

	list, total, err := NewCommunityRepository().ListFiltered(db, ListingFilter{
		Style: testutil.StrPtr("natural"),
		Sort:  models.SortLatest,
	}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	require.Len(t, list, 4)
	assert.True(t, testutil.At(9).Equal(list[0].CreatedAt))
}
