package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jobtrackr/jobtrackr-api/internal/core"
	"github.com/jobtrackr/jobtrackr-api/internal/domain/model"
	apperrors "github.com/jobtrackr/jobtrackr-api/internal/errors"
	"github.com/jobtrackr/jobtrackr-api/internal/mocks"
)

const testUserID = "8a1e7c2e-0f3b-4f8a-b2d4-2f1a9c7e5d01"

func newJobApplicationService(t *testing.T) (*JobApplicationService, *mocks.MockJobApplicationRepository, *mocks.MockTagRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := mocks.NewMockJobApplicationRepository(ctrl)
	tags := mocks.NewMockTagRepository(ctrl)
	svc := NewJobApplicationService(JobApplicationServiceOptions{Repo: repo, Tags: tags})
	return svc, repo, tags
}

func TestJobApplicationService_Create_Success(t *testing.T) {
	svc, repo, _ := newJobApplicationService(t)
	ctx := context.Background()

	req := &model.CreateJobApplicationRequest{Title: "Backend Engineer", Company: "Acme"}
	created := &model.JobApplication{
		ID:      uuid.NewString(),
		UserID:  testUserID,
		Title:   req.Title,
		Company: req.Company,
		Status:  model.StatusWishlist,
		Order:   0,
	}
	repo.EXPECT().
		Create(ctx, core.CreateJobApplicationParams{UserID: testUserID, Request: req}).
		Return(created, nil)

	got, err := svc.Create(ctx, testUserID, req)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, model.StatusWishlist, req.Status, "empty status should default to WISHLIST during validation")
}

func TestJobApplicationService_Create_InvalidRequest_NoRepoCall(t *testing.T) {
	svc, _, _ := newJobApplicationService(t)

	_, err := svc.Create(context.Background(), testUserID, &model.CreateJobApplicationRequest{Company: "Acme"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "title", apperrors.GetField(err))
}

func TestJobApplicationService_Create_NilRequest(t *testing.T) {
	svc, _, _ := newJobApplicationService(t)

	_, err := svc.Create(context.Background(), testUserID, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestJobApplicationService_Create_ForeignTagRejected(t *testing.T) {
	svc, _, tags := newJobApplicationService(t)
	ctx := context.Background()

	tagID := uuid.NewString()
	req := &model.CreateJobApplicationRequest{Title: "SRE", Company: "Acme", TagIDs: []string{tagID}}
	tags.EXPECT().CountOwned(ctx, testUserID, []string{tagID}).Return(0, nil)

	_, err := svc.Create(ctx, testUserID, req)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "tag_ids", apperrors.GetField(err))
}

func TestJobApplicationService_Create_OwnedTagsPass(t *testing.T) {
	svc, repo, tags := newJobApplicationService(t)
	ctx := context.Background()

	tagIDs := []string{uuid.NewString(), uuid.NewString()}
	req := &model.CreateJobApplicationRequest{Title: "SRE", Company: "Acme", TagIDs: tagIDs}
	tags.EXPECT().CountOwned(ctx, testUserID, tagIDs).Return(2, nil)
	repo.EXPECT().
		Create(ctx, gomock.AssignableToTypeOf(core.CreateJobApplicationParams{})).
		Return(&model.JobApplication{ID: uuid.NewString()}, nil)

	_, err := svc.Create(ctx, testUserID, req)
	require.NoError(t, err)
}

func TestJobApplicationService_ListActive_PassesThrough(t *testing.T) {
	svc, repo, _ := newJobApplicationService(t)
	ctx := context.Background()

	apps := []*model.JobApplication{{ID: uuid.NewString()}, {ID: uuid.NewString()}}
	repo.EXPECT().ListActive(ctx, testUserID).Return(apps, nil)

	got, err := svc.ListActive(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, apps, got)
}

func TestJobApplicationService_ListByStatus_InvalidStatus(t *testing.T) {
	svc, _, _ := newJobApplicationService(t)

	_, err := svc.ListByStatus(context.Background(), testUserID, "OFFER")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "status", apperrors.GetField(err))
}

func TestJobApplicationService_ListByStatus_NormalizesCase(t *testing.T) {
	svc, repo, _ := newJobApplicationService(t)
	ctx := context.Background()

	repo.EXPECT().ListByStatus(ctx, testUserID, model.StatusApplied).Return([]*model.JobApplication{}, nil)

	got, err := svc.ListByStatus(ctx, testUserID, "applied")
	require.NoError(t, err)
	assert.Empty(t, got, "empty column is a valid empty list")
}

func TestJobApplicationService_GetByID_NotFoundPassesThrough(t *testing.T) {
	svc, repo, _ := newJobApplicationService(t)
	ctx := context.Background()

	id := uuid.NewString()
	repo.EXPECT().GetByID(ctx, testUserID, id).Return(nil, apperrors.NotFound("job application not found"))

	_, err := svc.GetByID(ctx, testUserID, id)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestJobApplicationService_Reorder_Success(t *testing.T) {
	svc, repo, _ := newJobApplicationService(t)
	ctx := context.Background()

	idA, idB := uuid.NewString(), uuid.NewString()
	req := &model.ReorderRequest{
		Status: model.StatusApplied,
		Orders: []model.OrderPair{{ID: idA, Order: 1}, {ID: idB, Order: 0}},
	}
	want := []*model.JobApplication{{ID: idA, Order: 1}, {ID: idB, Order: 0}}
	repo.EXPECT().
		Reorder(ctx, core.ReorderParams{UserID: testUserID, Status: model.StatusApplied, Orders: req.Orders}).
		Return(want, nil)

	got, err := svc.Reorder(ctx, testUserID, req)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestJobApplicationService_Reorder_DuplicateOrder_NoRepoCall(t *testing.T) {
	svc, _, _ := newJobApplicationService(t)

	req := &model.ReorderRequest{
		Status: model.StatusApplied,
		Orders: []model.OrderPair{
			{ID: uuid.NewString(), Order: 0},
			{ID: uuid.NewString(), Order: 0},
		},
	}
	_, err := svc.Reorder(context.Background(), testUserID, req)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "orders", apperrors.GetField(err))
}

func TestJobApplicationService_Reorder_ForeignRecordErrorPassesThrough(t *testing.T) {
	svc, repo, _ := newJobApplicationService(t)
	ctx := context.Background()

	req := &model.ReorderRequest{
		Status: model.StatusApplied,
		Orders: []model.OrderPair{{ID: uuid.NewString(), Order: 0}},
	}
	wantErr := apperrors.ValidationField("orders", "some job application ids do not exist, don't belong to you, or don't match the status")
	repo.EXPECT().Reorder(ctx, gomock.Any()).Return(nil, wantErr)

	_, err := svc.Reorder(ctx, testUserID, req)
	require.Error(t, err)
	assert.Equal(t, wantErr, err)
}

func TestJobApplicationService_ChangeStatus_Success(t *testing.T) {
	svc, repo, _ := newJobApplicationService(t)
	ctx := context.Background()

	id := uuid.NewString()
	moved := &model.JobApplication{ID: id, Status: model.StatusInterviewing, Order: 0}
	repo.EXPECT().
		ChangeStatus(ctx, core.ChangeStatusParams{UserID: testUserID, ID: id, NewStatus: model.StatusInterviewing}).
		Return(moved, nil)

	got, err := svc.ChangeStatus(ctx, testUserID, id, &model.ChangeStatusRequest{Status: "interviewing"})
	require.NoError(t, err)
	assert.Equal(t, moved, got)
}

func TestJobApplicationService_ChangeStatus_InvalidStatus(t *testing.T) {
	svc, _, _ := newJobApplicationService(t)

	_, err := svc.ChangeStatus(context.Background(), testUserID, uuid.NewString(), &model.ChangeStatusRequest{Status: "ARCHIVED"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestJobApplicationService_ListHistory_OwnershipFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := mocks.NewMockJobApplicationRepository(ctrl)
	history := mocks.NewMockStatusHistoryRepository(ctrl)
	svc := NewJobApplicationService(JobApplicationServiceOptions{Repo: repo, History: history})

	id := uuid.NewString()
	repo.EXPECT().GetByID(ctx, testUserID, id).Return(nil, apperrors.NotFound("job application not found"))

	_, err := svc.ListHistory(ctx, testUserID, id)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestJobApplicationService_ListHistory_ReturnsEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := mocks.NewMockJobApplicationRepository(ctrl)
	history := mocks.NewMockStatusHistoryRepository(ctrl)
	svc := NewJobApplicationService(JobApplicationServiceOptions{Repo: repo, History: history})

	id := uuid.NewString()
	repo.EXPECT().GetByID(ctx, testUserID, id).Return(&model.JobApplication{ID: id}, nil)
	entries := []model.StatusHistoryEntry{
		{JobApplicationID: id, OldStatus: model.StatusWishlist, NewStatus: model.StatusApplied},
		{JobApplicationID: id, OldStatus: model.StatusApplied, NewStatus: model.StatusInterviewing},
	}
	history.EXPECT().ListByJobApplication(ctx, id).Return(entries, nil)

	got, err := svc.ListHistory(ctx, testUserID, id)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestJobApplicationService_SoftDelete_AlreadyDeleted(t *testing.T) {
	svc, repo, _ := newJobApplicationService(t)
	ctx := context.Background()

	id := uuid.NewString()
	repo.EXPECT().SoftDelete(ctx, testUserID, id).Return(nil, apperrors.NotFound("job application not found"))

	_, err := svc.SoftDelete(ctx, testUserID, id)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestJobApplicationService_SoftDelete_Success(t *testing.T) {
	svc, repo, _ := newJobApplicationService(t)
	ctx := context.Background()

	id := uuid.NewString()
	deleted := &model.JobApplication{ID: id}
	repo.EXPECT().SoftDelete(ctx, testUserID, id).Return(deleted, nil)

	got, err := svc.SoftDelete(ctx, testUserID, id)
	require.NoError(t, err)
	assert.Equal(t, deleted, got)
}
