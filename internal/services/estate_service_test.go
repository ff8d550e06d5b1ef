package services

import (
	"context"
	"fmt"
	"io"
	"testing"

	"geekku_backend/internal/events"
	"geekku_backend/internal/models"
	"geekku_backend/internal/services/dto"
	"geekku_backend/internal/testutil"
	"geekku_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstateWriteStoresImagesAndPublishes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	company := testutil.CreateCompany(t, env.db, &models.Company{CompanyName: "긱쿠", Phone: "02-123-4567"})

	num, err := env.services.EstateService.Write(ctx, env.db, &dto.EstateDto{
		CompanyID:     company.CompanyID,
		Type:          "apartment",
		Title:         "역삼 아파트",
		AvailableDate: "2024-05-01",
	}, []*dto.FileUpload{pngUpload("a.png", "aaa"), pngUpload("b.png", "bbb")})
	require.NoError(t, err)
	assert.Len(t, env.files(t), 2)
	assert.Equal(t, []string{events.EstateCreated}, env.publisher.Keys())

	detail, err := env.services.EstateService.Detail(ctx, env.db, num, "")
	require.NoError(t, err)
	assert.Equal(t, "긱쿠", detail.Estate.CompanyName)
	assert.Equal(t, "2024-05-01", detail.Estate.AvailableDate)
	assert.Nil(t, detail.Bookmark)

	names := dto.ImageNames(detail.Estate.ImageNums)
	require.Len(t, names, 2)
	rc, err := env.services.EstateService.OpenImage(ctx, names[0])
	require.NoError(t, err)
	require.NotNil(t, rc)
	data, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "aaa", string(data))
}

func TestEstateWriteUnknownCompanyStoresNothing(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.services.EstateService.Write(context.Background(), env.db, &dto.EstateDto{
		CompanyID: "missing",
		Type:      "villa",
		Title:     "x",
	}, []*dto.FileUpload{pngUpload("a.png", "aaa")})
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	assert.Empty(t, env.files(t))
}

func TestEstateWriteRejectsDisallowedType(t *testing.T) {
	env := newTestEnv(t)
	company := testutil.CreateCompany(t, env.db, &models.Company{})

	bad := pngUpload("a.exe", "MZ")
	bad.ContentType = "application/octet-stream"
	_, err := env.services.EstateService.Write(context.Background(), env.db, &dto.EstateDto{
		CompanyID: company.CompanyID,
		Type:      "villa",
		Title:     "x",
	}, []*dto.FileUpload{pngUpload("ok.png", "ok"), bad})
	assert.Equal(t, apperrors.CodeInvalidInput, apperrors.CodeOf(err))
	assert.Empty(t, env.files(t), "already stored images are removed")
}

func TestEstateDeleteRemovesFiles(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	company := testutil.CreateCompany(t, env.db, &models.Company{})

	num, err := env.services.EstateService.Write(ctx, env.db, &dto.EstateDto{CompanyID: company.CompanyID, Type: "villa", Title: "x"},
		[]*dto.FileUpload{pngUpload("a.png", "aaa")})
	require.NoError(t, err)
	require.Len(t, env.files(t), 1)

	require.NoError(t, env.services.EstateService.Delete(ctx, env.db, num))
	assert.Empty(t, env.files(t))

	_, err = env.services.EstateService.Detail(ctx, env.db, num, "")
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))

	err = env.services.EstateService.Delete(ctx, env.db, num)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}

func TestEstateListPagination(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	company := testutil.CreateCompany(t, env.db, &models.Company{})
	for i := 0; i < 25; i++ {
		testutil.CreateEstate(t, env.db, &models.Estate{
			CompanyID: company.CompanyID,
			Type:      "apartment",
			Title:     fmt.Sprintf("estate %d", i),
			CreatedAt: testutil.At(i),
		})
	}

	for page, want := range map[int]int{1: 10, 2: 10, 3: 5, 4: 0} {
		res, err := env.services.EstateService.List(ctx, env.db, page, "", "")
		require.NoError(t, err)
		assert.Len(t, res.EstateList, want, "page %d", page)
		assert.EqualValues(t, 25, res.PageInfo.TotalCount)
		assert.Equal(t, 3, res.PageInfo.AllPage)
	}

	first, err := env.services.EstateService.List(ctx, env.db, 1, "", "")
	require.NoError(t, err)
	assert.Equal(t, "estate 24", first.EstateList[0].Title)

	main, err := env.services.EstateService.ListForMain(ctx, env.db)
	require.NoError(t, err)
	assert.Len(t, main, 3)
}

func TestEstateOpenImageMissing(t *testing.T) {
	env := newTestEnv(t)

	rc, err := env.services.EstateService.OpenImage(context.Background(), "nope.png")
	assert.NoError(t, err)
	assert.Nil(t, rc)
}

func TestParseEstateNum(t *testing.T) {
	n, err := ParseEstateNum(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	for _, raw := range []string{"", "abc", "0", "-3"} {
		_, err := ParseEstateNum(raw)
		assert.Equal(t, apperrors.CodeInvalidInput, apperrors.CodeOf(err), raw)
	}
}
