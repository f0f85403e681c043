package stores

import (
	"context"
	"net/http"

	"leaseify/internal/models"
	"leaseify/internal/services"
	"leaseify/internal/state"
	"leaseify/internal/transport"
)

// LeaseStore mirrors the landlord's lease collection.
type LeaseStore struct {
	col *state.Collection[models.Lease]
	svc services.LeaseService
}

func NewLeaseStore(svc services.LeaseService) *LeaseStore {
	return &LeaseStore{
		col: state.NewCollection(func(l models.Lease) string { return l.ID }),
		svc: svc,
	}
}

func (s *LeaseStore) Fetch(ctx context.Context) error {
	seq := s.col.Begin()
	items, err := s.svc.List(ctx)
	if err != nil {
		s.col.Reject(seq, transport.ErrorMessage(err))
		return err
	}
	s.col.Replace(seq, items)
	return nil
}

// Assign creates a lease via the assign-lease action and appends the
// server's record to the collection.
func (s *LeaseStore) Assign(ctx context.Context, req *models.AssignLeaseRequest) error {
	seq := s.col.Begin()
	created, err := s.svc.Assign(ctx, req)
	if err != nil {
		s.col.Reject(seq, transport.ErrorMessage(err))
		return err
	}
	s.col.Append(seq, *created)
	return nil
}

func (s *LeaseStore) Snapshot() state.Snapshot[models.Lease] { return s.col.Snapshot() }

func (s *LeaseStore) Subscribe(fn func(state.Snapshot[models.Lease])) { s.col.Subscribe(fn) }

func (s *LeaseStore) Reset() { s.col.Reset() }

// MyLeaseStore mirrors the tenant's single active lease. A fulfilled nil
// item means "no active lease" and is not an error state.
type MyLeaseStore struct {
	rec *state.Record[models.Lease]
	svc services.LeaseService
}

func NewMyLeaseStore(svc services.LeaseService) *MyLeaseStore {
	return &MyLeaseStore{rec: state.NewRecord[models.Lease](), svc: svc}
}

func (s *MyLeaseStore) Fetch(ctx context.Context) error {
	seq := s.rec.Begin()
	lease, err := s.svc.MyLease(ctx)
	if err != nil {
		if transport.IsStatus(err, http.StatusNotFound) {
			s.rec.Set(seq, nil)
			return nil
		}
		s.rec.Reject(seq, transport.ErrorMessage(err))
		return err
	}
	s.rec.Set(seq, lease)
	return nil
}

func (s *MyLeaseStore) Snapshot() state.RecordSnapshot[models.Lease] { return s.rec.Snapshot() }

func (s *MyLeaseStore) Subscribe(fn func(state.RecordSnapshot[models.Lease])) { s.rec.Subscribe(fn) }

func (s *MyLeaseStore) Reset() { s.rec.Reset() }
