package stores

import (
	"context"

	"leaseify/internal/models"
	"leaseify/internal/services"
	"leaseify/internal/state"
	"leaseify/internal/transport"
)

// DashboardStore mirrors the server-computed KPI snapshot. The client
// never derives these numbers from raw records; pages refetch this store
// after any mutation that should move them.
type DashboardStore struct {
	rec *state.Record[models.DashboardStats]
	svc services.DashboardService
}

func NewDashboardStore(svc services.DashboardService) *DashboardStore {
	return &DashboardStore{rec: state.NewRecord[models.DashboardStats](), svc: svc}
}

func (s *DashboardStore) Fetch(ctx context.Context) error {
	seq := s.rec.Begin()
	stats, err := s.svc.Stats(ctx)
	if err != nil {
		s.rec.Reject(seq, transport.ErrorMessage(err))
		return err
	}
	s.rec.Set(seq, stats)
	return nil
}

func (s *DashboardStore) Snapshot() state.RecordSnapshot[models.DashboardStats] {
	return s.rec.Snapshot()
}

func (s *DashboardStore) Subscribe(fn func(state.RecordSnapshot[models.DashboardStats])) {
	s.rec.Subscribe(fn)
}

func (s *DashboardStore) Reset() { s.rec.Reset() }
