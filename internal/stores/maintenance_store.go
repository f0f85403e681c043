package stores

import (
	"context"

	"leaseify/internal/models"
	"leaseify/internal/services"
	"leaseify/internal/state"
	"leaseify/internal/transport"
)

// MaintenanceStore mirrors a maintenance-request collection for either
// role: tenants create, the landlord moves statuses and deletes.
type MaintenanceStore struct {
	col *state.Collection[models.MaintenanceRequest]
	svc services.MaintenanceService
}

func NewMaintenanceStore(svc services.MaintenanceService) *MaintenanceStore {
	return &MaintenanceStore{
		col: state.NewCollection(func(m models.MaintenanceRequest) string { return m.ID }),
		svc: svc,
	}
}

func (s *MaintenanceStore) Fetch(ctx context.Context) error {
	seq := s.col.Begin()
	items, err := s.svc.List(ctx)
	if err != nil {
		s.col.Reject(seq, transport.ErrorMessage(err))
		return err
	}
	s.col.Replace(seq, items)
	return nil
}

func (s *MaintenanceStore) FetchMine(ctx context.Context) error {
	seq := s.col.Begin()
	items, err := s.svc.Mine(ctx)
	if err != nil {
		s.col.Reject(seq, transport.ErrorMessage(err))
		return err
	}
	s.col.Replace(seq, items)
	return nil
}

func (s *MaintenanceStore) Create(ctx context.Context, req *models.CreateMaintenanceRequest) error {
	seq := s.col.Begin()
	created, err := s.svc.Create(ctx, req)
	if err != nil {
		s.col.Reject(seq, transport.ErrorMessage(err))
		return err
	}
	s.col.Prepend(seq, *created)
	return nil
}

func (s *MaintenanceStore) UpdateStatus(ctx context.Context, id, status string) error {
	seq := s.col.Begin()
	updated, err := s.svc.UpdateStatus(ctx, id, status)
	if err != nil {
		s.col.Reject(seq, transport.ErrorMessage(err))
		return err
	}
	s.col.Update(seq, *updated)
	return nil
}

func (s *MaintenanceStore) Delete(ctx context.Context, id string) error {
	seq := s.col.Begin()
	if err := s.svc.Delete(ctx, id); err != nil {
		s.col.Reject(seq, transport.ErrorMessage(err))
		return err
	}
	s.col.Remove(seq, id)
	return nil
}

func (s *MaintenanceStore) Snapshot() state.Snapshot[models.MaintenanceRequest] {
	return s.col.Snapshot()
}

func (s *MaintenanceStore) Subscribe(fn func(state.Snapshot[models.MaintenanceRequest])) {
	s.col.Subscribe(fn)
}

func (s *MaintenanceStore) Reset() { s.col.Reset() }
