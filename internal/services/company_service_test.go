package services

import (
	"context"
	"errors"
	"testing"

	"geekku_backend/internal/models"
	"geekku_backend/internal/services/dto"
	"geekku_backend/internal/testutil"
	"geekku_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joinRequest(username, companyType string) *dto.JoinCompanyRequest {
	return &dto.JoinCompanyRequest{
		Username:    username,
		Password:    "secret1",
		Type:        companyType,
		CompanyName: "긱쿠 부동산",
		Phone:       "010-1234-5678",
	}
}

func TestCompanyJoinAssignsCompanyRole(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, typ := range []string{"estate", "interior"} {
		company, err := env.services.CompanyService.Join(ctx, env.db, joinRequest("co_"+typ, typ), nil)
		require.NoError(t, err)
		assert.Equal(t, string(models.RoleCompany), company.Role)
		assert.Equal(t, typ, company.Type)
		assert.NotEmpty(t, company.CompanyID)
	}

	var stored models.Company
	require.NoError(t, env.db.Where("username = ?", "co_estate").First(&stored).Error)
	assert.NotEqual(t, "secret1", stored.Password)
}

func TestCompanyJoinRejectsUnknownType(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.services.CompanyService.Join(context.Background(), env.db, joinRequest("hotel_co", "hotel"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCompanyType))
	assert.Equal(t, apperrors.CodeInvalidInput, apperrors.CodeOf(err))

	var count int64
	require.NoError(t, env.db.Model(&models.Company{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCompanyJoinDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.services.CompanyService.Join(ctx, env.db, joinRequest("same", "estate"), nil)
	require.NoError(t, err)
	_, err = env.services.CompanyService.Join(ctx, env.db, joinRequest("same", "interior"), nil)
	assert.Equal(t, apperrors.CodeConflict, apperrors.CodeOf(err))
}

func TestCompanyJoinStoresProfileImage(t *testing.T) {
	env := newTestEnv(t)

	company, err := env.services.CompanyService.Join(context.Background(), env.db, joinRequest("with_img", "estate"), pngUpload("p.png", "png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, dto.EncodeImage([]byte("png-bytes")), company.ProfileImage)
}

func TestCompanyUpdateInfo(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	company := testutil.CreateCompany(t, env.db, &models.Company{CompanyName: "old"})

	name := "new"
	require.NoError(t, env.services.CompanyService.UpdateInfo(ctx, env.db, company.CompanyID, &dto.UpdateCompanyRequest{CompanyName: &name}))

	profile, err := env.services.CompanyService.GetProfile(ctx, env.db, company.CompanyID)
	require.NoError(t, err)
	assert.Equal(t, "new", profile.CompanyName)

	err = env.services.CompanyService.UpdateInfo(ctx, env.db, "missing", &dto.UpdateCompanyRequest{CompanyName: &name})
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}

func TestCompanyHouseAnswersPagination(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	company := testutil.CreateCompany(t, env.db, &models.Company{CompanyName: "답변 부동산"})
	user := testutil.CreateUser(t, env.db, &models.User{})
	house := &models.House{UserID: user.UserID, Title: "집 구해요"}
	require.NoError(t, env.db.Create(house).Error)

	for i := 0; i < 25; i++ {
		_, err := env.services.AnswerService.WriteHouseAnswer(ctx, env.db, company.CompanyID, &dto.AnswerWriteRequest{TargetNum: house.HouseNum, Content: "answer"})
		require.NoError(t, err)
	}

	sizes := []int{10, 10, 5, 0}
	for page, want := range sizes {
		result, err := env.services.CompanyService.HouseAnswers(ctx, env.db, company.CompanyID, page)
		require.NoError(t, err)
		assert.Len(t, result.Content, want, "page %d", page)
		assert.EqualValues(t, 25, result.TotalElements)
		assert.Equal(t, 3, result.TotalPages)
	}

	first, err := env.services.CompanyService.HouseAnswers(ctx, env.db, company.CompanyID, 0)
	require.NoError(t, err)
	assert.Equal(t, "답변 부동산", first.Content[0].CompanyName)
	assert.True(t, first.First)
}

func TestAnswerWriteMissingTarget(t *testing.T) {
	env := newTestEnv(t)
	company := testutil.CreateCompany(t, env.db, &models.Company{})

	_, err := env.services.AnswerService.WriteOnestopAnswer(context.Background(), env.db, company.CompanyID, &dto.AnswerWriteRequest{TargetNum: 77, Content: "x"})
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}
