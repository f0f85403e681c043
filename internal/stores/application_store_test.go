package stores

import (
	"context"
	"testing"

	"leaseify/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) List(ctx context.Context) ([]models.Application, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Application), args.Error(1)
}

func (m *MockApplicationService) Submit(ctx context.Context, req *models.SubmitApplicationRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationService) SetStatus(ctx context.Context, id, status string) (*models.Application, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func TestApplicationStore_SubmitAppendsServerRecord(t *testing.T) {
	svc := &MockApplicationService{}
	svc.Test(t)
	store := NewApplicationStore(svc)

	ctx := context.Background()
	svc.On("List", ctx).Return([]models.Application{{ID: "a1", Status: models.ApplicationPending}}, nil).Once()
	require.NoError(t, store.Fetch(ctx))

	req := &models.SubmitApplicationRequest{ApplicantName: "Grace Hopper", Email: "grace@example.com"}
	svc.On("Submit", ctx, req).
		Return(&models.Application{ID: "a2", ApplicantName: "Grace Hopper", Status: models.ApplicationPending}, nil).
		Once()
	require.NoError(t, store.Submit(ctx, req))

	snap := store.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "a1", snap.Items[0].ID)
	assert.Equal(t, "a2", snap.Items[1].ID)
	svc.AssertExpectations(t)
}

func TestApplicationStore_SetStatusReplacesInPlace(t *testing.T) {
	svc := &MockApplicationService{}
	svc.Test(t)
	store := NewApplicationStore(svc)

	ctx := context.Background()
	svc.On("List", ctx).Return([]models.Application{
		{ID: "a1", Status: models.ApplicationPending},
		{ID: "a2", Status: models.ApplicationPending},
	}, nil).Once()
	require.NoError(t, store.Fetch(ctx))

	svc.On("SetStatus", ctx, "a2", models.ApplicationDenied).
		Return(&models.Application{ID: "a2", Status: models.ApplicationDenied}, nil).
		Once()
	require.NoError(t, store.SetStatus(ctx, "a2", models.ApplicationDenied))

	snap := store.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, models.ApplicationPending, snap.Items[0].Status)
	assert.Equal(t, models.ApplicationDenied, snap.Items[1].Status)
	svc.AssertExpectations(t)
}
