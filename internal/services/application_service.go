package services

import (
	"context"
	"fmt"

	"leaseify/internal/models"
	"leaseify/internal/transport"
)

type ApplicationService interface {
	List(ctx context.Context) ([]models.Application, error)
	Submit(ctx context.Context, req *models.SubmitApplicationRequest) (*models.Application, error)
	SetStatus(ctx context.Context, id, status string) (*models.Application, error)
}

type applicationService struct {
	api *transport.Client
}

func NewApplicationService(api *transport.Client) ApplicationService {
	return &applicationService{api: api}
}

func (s *applicationService) List(ctx context.Context) ([]models.Application, error) {
	var out []models.Application
	if err := s.api.Get(ctx, "landlord/applications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *applicationService) Submit(ctx context.Context, req *models.SubmitApplicationRequest) (*models.Application, error) {
	var out models.Application
	if err := s.api.Post(ctx, "tenant/applications", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *applicationService) SetStatus(ctx context.Context, id, status string) (*models.Application, error) {
	body := map[string]string{"status": status}
	var out models.Application
	if err := s.api.Put(ctx, fmt.Sprintf("landlord/applications/%s", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
