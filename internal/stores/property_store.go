// Package stores binds each resource's service to a state container.
// Every operation follows the same shape: begin, call the service, then
// fulfill with the server-supplied record or reject with the extracted
// error message. Mutations splice the existing collection rather than
// refetching; the displayed result is always the server's response.
package stores

import (
	"context"

	"leaseify/internal/models"
	"leaseify/internal/services"
	"leaseify/internal/state"
	"leaseify/internal/transport"
)

// PropertyStore mirrors the landlord's property collection.
type PropertyStore struct {
	col *state.Collection[models.Property]
	svc services.PropertyService
}

func NewPropertyStore(svc services.PropertyService) *PropertyStore {
	return &PropertyStore{
		col: state.NewCollection(func(p models.Property) string { return p.ID }),
		svc: svc,
	}
}

func (s *PropertyStore) Fetch(ctx context.Context) error {
	seq := s.col.Begin()
	items, err := s.svc.List(ctx)
	if err != nil {
		s.col.Reject(seq, transport.ErrorMessage(err))
		return err
	}
	s.col.Replace(seq, items)
	return nil
}

func (s *PropertyStore) Create(ctx context.Context, req *models.CreatePropertyRequest) error {
	seq := s.col.Begin()
	created, err := s.svc.Create(ctx, req)
	if err != nil {
		s.col.Reject(seq, transport.ErrorMessage(err))
		return err
	}
	s.col.Prepend(seq, *created)
	return nil
}

func (s *PropertyStore) Update(ctx context.Context, id string, req *models.UpdatePropertyRequest) error {
	seq := s.col.Begin()
	updated, err := s.svc.Update(ctx, id, req)
	if err != nil {
		s.col.Reject(seq, transport.ErrorMessage(err))
		return err
	}
	s.col.Update(seq, *updated)
	return nil
}

func (s *PropertyStore) Delete(ctx context.Context, id string) error {
	seq := s.col.Begin()
	if err := s.svc.Delete(ctx, id); err != nil {
		s.col.Reject(seq, transport.ErrorMessage(err))
		return err
	}
	s.col.Remove(seq, id)
	return nil
}

func (s *PropertyStore) Snapshot() state.Snapshot[models.Property] { return s.col.Snapshot() }

func (s *PropertyStore) Subscribe(fn func(state.Snapshot[models.Property])) { s.col.Subscribe(fn) }

func (s *PropertyStore) Reset() { s.col.Reset() }
