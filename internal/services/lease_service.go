package services

import (
	"context"

	"leaseify/internal/models"
	"leaseify/internal/transport"
)

type LeaseService interface {
	List(ctx context.Context) ([]models.Lease, error)
	Assign(ctx context.Context, req *models.AssignLeaseRequest) (*models.Lease, error)
	// MyLease returns the tenant's active lease, or (nil, nil) when the
	// backend reports none via an empty 2xx body. A 404 answer
	// propagates as an error; callers decide how to render that.
	MyLease(ctx context.Context) (*models.Lease, error)
}

type leaseService struct {
	api *transport.Client
}

func NewLeaseService(api *transport.Client) LeaseService {
	return &leaseService{api: api}
}

func (s *leaseService) List(ctx context.Context) ([]models.Lease, error) {
	var out []models.Lease
	if err := s.api.Get(ctx, "landlord/leases", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *leaseService) Assign(ctx context.Context, req *models.AssignLeaseRequest) (*models.Lease, error) {
	var out models.Lease
	if err := s.api.Post(ctx, "landlord/leases", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *leaseService) MyLease(ctx context.Context) (*models.Lease, error) {
	var out models.Lease
	if err := s.api.Get(ctx, "tenant/lease", nil, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		// Empty body: the tenant has no active lease.
		return nil, nil
	}
	return &out, nil
}
