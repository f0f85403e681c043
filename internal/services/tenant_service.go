package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"leaseify/internal/models"
	"leaseify/internal/transport"
)

type TenantService interface {
	List(ctx context.Context, page, limit int) (*models.Page[models.Tenant], error)
	Get(ctx context.Context, id string) (*models.Tenant, error)
	// Overdue lists tenants carrying an outstanding balance.
	Overdue(ctx context.Context) ([]models.Tenant, error)
}

type tenantService struct {
	api *transport.Client
}

func NewTenantService(api *transport.Client) TenantService {
	return &tenantService{api: api}
}

func (s *tenantService) List(ctx context.Context, page, limit int) (*models.Page[models.Tenant], error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var out models.Page[models.Tenant]
	if err := s.api.Get(ctx, "landlord/tenants", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *tenantService) Get(ctx context.Context, id string) (*models.Tenant, error) {
	var out models.Tenant
	if err := s.api.Get(ctx, fmt.Sprintf("landlord/tenants/%s", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *tenantService) Overdue(ctx context.Context) ([]models.Tenant, error) {
	var out []models.Tenant
	if err := s.api.Get(ctx, "landlord/tenants/overdue", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
