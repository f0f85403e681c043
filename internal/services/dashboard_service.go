package services

import (
	"context"

	"leaseify/internal/models"
	"leaseify/internal/transport"
)

type DashboardService interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
}

type dashboardService struct {
	api *transport.Client
}

func NewDashboardService(api *transport.Client) DashboardService {
	return &dashboardService{api: api}
}

func (s *dashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	var out models.DashboardStats
	if err := s.api.Get(ctx, "landlord/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
