package stores

import (
	"context"
	"testing"

	"leaseify/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMaintenanceService struct {
	mock.Mock
}

func (m *MockMaintenanceService) List(ctx context.Context) ([]models.MaintenanceRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MaintenanceRequest), args.Error(1)
}

func (m *MockMaintenanceService) Mine(ctx context.Context) ([]models.MaintenanceRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MaintenanceRequest), args.Error(1)
}

func (m *MockMaintenanceService) Create(ctx context.Context, req *models.CreateMaintenanceRequest) (*models.MaintenanceRequest, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceRequest), args.Error(1)
}

func (m *MockMaintenanceService) UpdateStatus(ctx context.Context, id, status string) (*models.MaintenanceRequest, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceRequest), args.Error(1)
}

func (m *MockMaintenanceService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestMaintenanceStore_CreatePrependsNewRequest(t *testing.T) {
	svc := &MockMaintenanceService{}
	svc.Test(t)
	store := NewMaintenanceStore(svc)

	ctx := context.Background()
	svc.On("Mine", ctx).Return([]models.MaintenanceRequest{{ID: "m1", Status: models.MaintenanceCompleted}}, nil).Once()
	require.NoError(t, store.FetchMine(ctx))

	req := &models.CreateMaintenanceRequest{Description: "Kitchen faucet drips"}
	svc.On("Create", ctx, req).
		Return(&models.MaintenanceRequest{ID: "m2", Description: "Kitchen faucet drips", Status: models.MaintenancePending}, nil).
		Once()
	require.NoError(t, store.Create(ctx, req))

	snap := store.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "m2", snap.Items[0].ID)
	assert.Equal(t, models.MaintenancePending, snap.Items[0].Status)
	svc.AssertExpectations(t)
}

func TestMaintenanceStore_UpdateStatusReplacesInPlace(t *testing.T) {
	svc := &MockMaintenanceService{}
	svc.Test(t)
	store := NewMaintenanceStore(svc)

	ctx := context.Background()
	svc.On("List", ctx).Return([]models.MaintenanceRequest{
		{ID: "m1", Status: models.MaintenancePending},
		{ID: "m2", Status: models.MaintenancePending},
	}, nil).Once()
	require.NoError(t, store.Fetch(ctx))

	svc.On("UpdateStatus", ctx, "m1", models.MaintenanceInProgress).
		Return(&models.MaintenanceRequest{ID: "m1", Status: models.MaintenanceInProgress}, nil).
		Once()
	require.NoError(t, store.UpdateStatus(ctx, "m1", models.MaintenanceInProgress))

	snap := store.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, models.MaintenanceInProgress, snap.Items[0].Status)
	assert.Equal(t, models.MaintenancePending, snap.Items[1].Status)
	svc.AssertExpectations(t)
}

func TestMaintenanceStore_DeleteRemovesByID(t *testing.T) {
	svc := &MockMaintenanceService{}
	svc.Test(t)
	store := NewMaintenanceStore(svc)

	ctx := context.Background()
	svc.On("List", ctx).Return([]models.MaintenanceRequest{{ID: "m1"}, {ID: "m2"}}, nil).Once()
	require.NoError(t, store.Fetch(ctx))

	svc.On("Delete", ctx, "m2").Return(nil).Once()
	require.NoError(t, store.Delete(ctx, "m2"))

	snap := store.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "m1", snap.Items[0].ID)
	svc.AssertExpectations(t)
}
