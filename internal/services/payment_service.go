package services

import (
	"context"
	"net/url"

	"leaseify/internal/models"
	"leaseify/internal/transport"
)

type PaymentService interface {
	List(ctx context.Context, leaseID string) ([]models.Payment, error)
	MyPayments(ctx context.Context) ([]models.Payment, error)
	Record(ctx context.Context, req *models.RecordPaymentRequest) (*models.Payment, error)
	// CreateIntent asks the backend for a processor payment intent; the
	// processor's hosted page takes over from there.
	CreateIntent(ctx context.Context, req *models.CreateIntentRequest) (*models.PaymentIntent, error)
}

type paymentService struct {
	api *transport.Client
}

func NewPaymentService(api *transport.Client) PaymentService {
	return &paymentService{api: api}
}

func (s *paymentService) List(ctx context.Context, leaseID string) ([]models.Payment, error) {
	query := url.Values{}
	if leaseID != "" {
		query.Set("lease_id", leaseID)
	}
	var out []models.Payment
	if err := s.api.Get(ctx, "landlord/payments", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *paymentService) MyPayments(ctx context.Context) ([]models.Payment, error) {
	var out []models.Payment
	if err := s.api.Get(ctx, "tenant/payments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *paymentService) Record(ctx context.Context, req *models.RecordPaymentRequest) (*models.Payment, error) {
	var out models.Payment
	if err := s.api.Post(ctx, "landlord/payments", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *paymentService) CreateIntent(ctx context.Context, req *models.CreateIntentRequest) (*models.PaymentIntent, error) {
	var out models.PaymentIntent
	if err := s.api.Post(ctx, "tenant/payments/intent", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
