package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jobtrackr/jobtrackr-api/internal/domain/model"
	apperrors "github.com/jobtrackr/jobtrackr-api/internal/errors"
	"github.com/jobtrackr/jobtrackr-api/internal/mocks"
)

func TestTagService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := mocks.NewMockTagRepository(ctrl)
	svc := NewTagService(TagServiceOptions{Repo: repo})

	req := &model.CreateTagRequest{Name: "remote"}
	created := &model.Tag{ID: "t-1", UserID: testUserID, Name: "remote"}
	repo.EXPECT().Create(ctx, testUserID, req).Return(created, nil)

	got, err := svc.Create(ctx, testUserID, req)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestTagService_Create_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewTagService(TagServiceOptions{Repo: mocks.NewMockTagRepository(ctrl)})

	_, err := svc.Create(context.Background(), testUserID, &model.CreateTagRequest{Name: "  "})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestTagService_Create_DuplicateNameConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := mocks.NewMockTagRepository(ctrl)
	svc := NewTagService(TagServiceOptions{Repo: repo})

	req := &model.CreateTagRequest{Name: "remote"}
	repo.EXPECT().Create(ctx, testUserID, req).Return(nil, apperrors.Conflict("tag already exists"))

	_, err := svc.Create(ctx, testUserID, req)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestTagService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := mocks.NewMockTagRepository(ctrl)
	svc := NewTagService(TagServiceOptions{Repo: repo})

	tags := []*model.Tag{{ID: "t-1", Name: "onsite"}, {ID: "t-2", Name: "remote"}}
	repo.EXPECT().ListByUser(ctx, testUserID).Return(tags, nil)

	got, err := svc.List(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, tags, got)
}
