// Package services maps function calls 1:1 to backend REST endpoints.
// Each method performs exactly one request and returns the decoded body;
// errors propagate unchanged, and no business logic lives here.
package services

import (
	"context"
	"fmt"

	"leaseify/internal/models"
	"leaseify/internal/transport"
)

type PropertyService interface {
	List(ctx context.Context) ([]models.Property, error)
	Get(ctx context.Context, id string) (*models.Property, error)
	Create(ctx context.Context, req *models.CreatePropertyRequest) (*models.Property, error)
	Update(ctx context.Context, id string, req *models.UpdatePropertyRequest) (*models.Property, error)
	Delete(ctx context.Context, id string) error
}

type propertyService struct {
	api *transport.Client
}

func NewPropertyService(api *transport.Client) PropertyService {
	return &propertyService{api: api}
}

func (s *propertyService) List(ctx context.Context) ([]models.Property, error) {
	var out []models.Property
	if err := s.api.Get(ctx, "landlord/properties", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *propertyService) Get(ctx context.Context, id string) (*models.Property, error) {
	var out models.Property
	if err := s.api.Get(ctx, fmt.Sprintf("landlord/properties/%s", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *propertyService) Create(ctx context.Context, req *models.CreatePropertyRequest) (*models.Property, error) {
	var out models.Property
	if err := s.api.Post(ctx, "landlord/properties", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *propertyService) Update(ctx context.Context, id string, req *models.UpdatePropertyRequest) (*models.Property, error) {
	var out models.Property
	if err := s.api.Put(ctx, fmt.Sprintf("landlord/properties/%s", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *propertyService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, fmt.Sprintf("landlord/properties/%s", id))
}
