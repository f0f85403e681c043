package stores

import (
	"context"

	"leaseify/internal/models"
	"leaseify/internal/services"
	"leaseify/internal/state"
	"leaseify/internal/transport"
)

// ApplicationStore mirrors the rental-application list.
type ApplicationStore struct {
	col *state.Collection[models.Application]
	svc services.ApplicationService
}

func NewApplicationStore(svc services.ApplicationService) *ApplicationStore {
	return &ApplicationStore{
		col: state.NewCollection(func(a models.Application) string { return a.ID }),
		svc: svc,
	}
}

func (s *ApplicationStore) Fetch(ctx context.Context) error {
	seq := s.col.Begin()
	items, err := s.svc.List(ctx)
	if err != nil {
		s.col.Reject(seq, transport.ErrorMessage(err))
		return err
	}
	s.col.Replace(seq, items)
	return nil
}

func (s *ApplicationStore) Submit(ctx context.Context, req *models.SubmitApplicationRequest) error {
	seq := s.col.Begin()
	created, err := s.svc.Submit(ctx, req)
	if err != nil {
		s.col.Reject(seq, transport.ErrorMessage(err))
		return err
	}
	s.col.Append(seq, *created)
	return nil
}

func (s *ApplicationStore) SetStatus(ctx context.Context, id, status string) error {
	seq := s.col.Begin()
	updated, err := s.svc.SetStatus(ctx, id, status)
	if err != nil {
		s.col.Reject(seq, transport.ErrorMessage(err))
		return err
	}
	s.col.Update(seq, *updated)
	return nil
}

func (s *ApplicationStore) Snapshot() state.Snapshot[models.Application] { return s.col.Snapshot() }

func (s *ApplicationStore) Subscribe(fn func(state.Snapshot[models.Application])) {
	s.col.Subscribe(fn)
}

func (s *ApplicationStore) Reset() { s.col.Reset() }
