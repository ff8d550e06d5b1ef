package services

import (
	"context"
	"testing"

	"geekku_backend/internal/events"
	"geekku_backend/internal/models"
	"geekku_backend/internal/services/dto"
	"geekku_backend/internal/testutil"
	"geekku_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommunityUpdateReplacesCover(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, env.db, &models.User{})

	num, err := env.services.CommunityService.CreateWithCover(ctx, env.db, &dto.CommunityDto{
		UserID: user.UserID,
		Title:  "우리집",
	}, pngUpload("old.png", "old"))
	require.NoError(t, err)
	assert.Contains(t, env.publisher.Keys(), events.CommunityCreated)

	before, err := env.services.CommunityService.Detail(ctx, env.db, num, "")
	require.NoError(t, err)
	oldCover := before.Community.CoverImage
	require.True(t, env.fileExists(oldCover))

	err = env.services.CommunityService.Update(ctx, env.db, num, &dto.UpdateCommunityRequest{Title: "우리집 2"}, pngUpload("new.png", "new"))
	require.NoError(t, err)

	after, err := env.services.CommunityService.Detail(ctx, env.db, num, "")
	require.NoError(t, err)
	assert.Equal(t, "우리집 2", after.Community.Title)
	assert.NotEqual(t, oldCover, after.Community.CoverImage)
	assert.True(t, env.fileExists(after.Community.CoverImage))
	assert.False(t, env.fileExists(oldCover), "old cover must be deleted")
	assert.Len(t, env.files(t), 1)
}

func TestCommunityCreateWithCoverRequiresFile(t *testing.T) {
	env := newTestEnv(t)
	user := testutil.CreateUser(t, env.db, &models.User{})

	_, err := env.services.CommunityService.CreateWithCover(context.Background(), env.db, &dto.CommunityDto{UserID: user.UserID, Title: "x"}, nil)
	assert.Equal(t, apperrors.CodeInvalidInput, apperrors.CodeOf(err))

	var count int64
	require.NoError(t, env.db.Model(&models.Community{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCommunityDetailCountsViewsAndComments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := testutil.CreateUser(t, env.db, &models.User{Nickname: "작성자"})
	reader := testutil.CreateUser(t, env.db, &models.User{})
	community := testutil.CreateCommunity(t, env.db, &models.Community{UserID: author.UserID})

	_, err := env.services.CommunityService.AddComment(ctx, env.db, community.CommunityNum, &dto.CommentRequest{UserID: reader.UserID, Content: "좋아요"})
	require.NoError(t, err)

	_, err = env.services.CommunityService.Detail(ctx, env.db, community.CommunityNum, "")
	require.NoError(t, err)
	detail, err := env.services.CommunityService.Detail(ctx, env.db, community.CommunityNum, reader.UserID)
	require.NoError(t, err)

	assert.Equal(t, 2, detail.Community.ViewCount)
	assert.Equal(t, "작성자", detail.Community.Nickname)
	assert.Len(t, detail.Comments, 1)
	require.NotNil(t, detail.Bookmark)
	assert.False(t, *detail.Bookmark)
}

func TestCommunityDetailMissing(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.services.CommunityService.Detail(context.Background(), env.db, 999, "")
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}

func TestCommunityListIsZeroBased(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, env.db, &models.User{})
	for i := 0; i < 12; i++ {
		testutil.CreateCommunity(t, env.db, &models.Community{UserID: user.UserID, CreatedAt: testutil.At(i)})
	}

	first, err := env.services.CommunityService.List(ctx, env.db, 0)
	require.NoError(t, err)
	assert.Len(t, first.Content, 10)
	assert.True(t, first.First)
	assert.False(t, first.Last)

	second, err := env.services.CommunityService.List(ctx, env.db, 1)
	require.NoError(t, err)
	assert.Len(t, second.Content, 2)
	assert.True(t, second.Last)
}
