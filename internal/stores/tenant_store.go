package stores

import (
	"context"

	"leaseify/internal/models"
	"leaseify/internal/services"
	"leaseify/internal/state"
	"leaseify/internal/transport"
)

// TenantStore mirrors the landlord's paginated tenant list.
type TenantStore struct {
	col *state.Collection[models.Tenant]
	svc services.TenantService
}

func NewTenantStore(svc services.TenantService) *TenantStore {
	return &TenantStore{
		col: state.NewCollection(func(t models.Tenant) string { return t.ID }),
		svc: svc,
	}
}

func (s *TenantStore) Fetch(ctx context.Context, page, limit int) error {
	seq := s.col.Begin()
	result, err := s.svc.List(ctx, page, limit)
	if err != nil {
		s.col.Reject(seq, transport.ErrorMessage(err))
		return err
	}
	s.col.ReplacePage(seq, result.Data, result.Meta.Page, result.Meta.TotalPages)
	return nil
}

func (s *TenantStore) Snapshot() state.Snapshot[models.Tenant] { return s.col.Snapshot() }

func (s *TenantStore) Subscribe(fn func(state.Snapshot[models.Tenant])) { s.col.Subscribe(fn) }

func (s *TenantStore) Reset() { s.col.Reset() }

// OverdueStore mirrors the tenants-with-outstanding-balance list shown
// on the payments page; the offline-payment workflow refetches it after
// every logged payment.
type OverdueStore struct {
	col *state.Collection[models.Tenant]
	svc services.TenantService
}

func NewOverdueStore(svc services.TenantService) *OverdueStore {
	return &OverdueStore{
		col: state.NewCollection(func(t models.Tenant) string { return t.ID }),
		svc: svc,
	}
}

func (s *OverdueStore) Fetch(ctx context.Context) error {
	seq := s.col.Begin()
	items, err := s.svc.Overdue(ctx)
	if err != nil {
		s.col.Reject(seq, transport.ErrorMessage(err))
		return err
	}
	s.col.Replace(seq, items)
	return nil
}

func (s *OverdueStore) Snapshot() state.Snapshot[models.Tenant] { return s.col.Snapshot() }

func (s *OverdueStore) Subscribe(fn func(state.Snapshot[models.Tenant])) { s.col.Subscribe(fn) }

func (s *OverdueStore) Reset() { s.col.Reset() }
