package services

import (
	"context"
	"fmt"

	"leaseify/internal/models"
	"leaseify/internal/transport"
)

type MaintenanceService interface {
	List(ctx context.Context) ([]models.MaintenanceRequest, error)
	Mine(ctx context.Context) ([]models.MaintenanceRequest, error)
	Create(ctx context.Context, req *models.CreateMaintenanceRequest) (*models.MaintenanceRequest, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.MaintenanceRequest, error)
	Delete(ctx context.Context, id string) error
}

type maintenanceService struct {
	api *transport.Client
}

func NewMaintenanceService(api *transport.Client) MaintenanceService {
	return &maintenanceService{api: api}
}

func (s *maintenanceService) List(ctx context.Context) ([]models.MaintenanceRequest, error) {
	var out []models.MaintenanceRequest
	if err := s.api.Get(ctx, "landlord/maintenance", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *maintenanceService) Mine(ctx context.Context) ([]models.MaintenanceRequest, error) {
	var out []models.MaintenanceRequest
	if err := s.api.Get(ctx, "tenant/maintenance", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *maintenanceService) Create(ctx context.Context, req *models.CreateMaintenanceRequest) (*models.MaintenanceRequest, error) {
	var out models.MaintenanceRequest
	if err := s.api.Post(ctx, "tenant/maintenance", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *maintenanceService) UpdateStatus(ctx context.Context, id, status string) (*models.MaintenanceRequest, error) {
	body := map[string]string{"status": status}
	var out models.MaintenanceRequest
	if err := s.api.Put(ctx, fmt.Sprintf("landlord/maintenance/%s", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *maintenanceService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, fmt.Sprintf("landlord/maintenance/%s", id))
}
