package stores

import (
	"context"
	"testing"

	"leaseify/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) List(ctx context.Context) ([]models.Property, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockPropertyService) Get(ctx context.Context, id string) (*models.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyService) Create(ctx context.Context, req *models.CreatePropertyRequest) (*models.Property, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyService) Update(ctx context.Context, id string, req *models.UpdatePropertyRequest) (*models.Property, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestPropertyStore_UpdateReplacesInPlace(t *testing.T) {
	svc := &MockPropertyService{}
	svc.Test(t)
	store := NewPropertyStore(svc)

	ctx := context.Background()
	svc.On("List", ctx).Return([]models.Property{
		{ID: "p1", Street: "12 Elm St", RentAmount: 1200},
		{ID: "p2", Street: "9 Oak Ave", RentAmount: 950},
	}, nil).Once()
	require.NoError(t, store.Fetch(ctx))

	req := &models.UpdatePropertyRequest{Street: "12 Elm St", RentAmount: 1350, Status: models.PropertyOccupied}
	svc.On("Update", ctx, "p1", req).
		Return(&models.Property{ID: "p1", Street: "12 Elm St", RentAmount: 1350, Status: models.PropertyOccupied}, nil).
		Once()
	require.NoError(t, store.Update(ctx, "p1", req))

	snap := store.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, float64(1350), snap.Items[0].RentAmount)
	assert.Equal(t, models.PropertyOccupied, snap.Items[0].Status)
	assert.Equal(t, "p2", snap.Items[1].ID)
	svc.AssertExpectations(t)
}

func TestPropertyStore_CreatePrependsServerRecord(t *testing.T) {
	svc := &MockPropertyService{}
	svc.Test(t)
	store := NewPropertyStore(svc)

	ctx := context.Background()
	svc.On("List", ctx).Return([]models.Property{{ID: "p1"}}, nil).Once()
	require.NoError(t, store.Fetch(ctx))

	req := &models.CreatePropertyRequest{Street: "3 Birch Ln", City: "Springfield", State: "IL", RentAmount: 1100}
	svc.On("Create", ctx, req).
		Return(&models.Property{ID: "p2", Street: "3 Birch Ln", Status: models.PropertyVacant}, nil).
		Once()
	require.NoError(t, store.Create(ctx, req))

	snap := store.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "p2", snap.Items[0].ID)
	svc.AssertExpectations(t)
}
