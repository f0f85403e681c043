package stores

import (
	"context"

	"leaseify/internal/models"
	"leaseify/internal/services"
	"leaseify/internal/state"
	"leaseify/internal/transport"
)

// PaymentStore mirrors a payment collection: the landlord's view of one
// lease's payments, or the tenant's own history, depending on which
// fetch the page dispatches.
type PaymentStore struct {
	col *state.Collection[models.Payment]
	svc services.PaymentService
}

func NewPaymentStore(svc services.PaymentService) *PaymentStore {
	return &PaymentStore{
		col: state.NewCollection(func(p models.Payment) string { return p.ID }),
		svc: svc,
	}
}

func (s *PaymentStore) Fetch(ctx context.Context, leaseID string) error {
	seq := s.col.Begin()
	items, err := s.svc.List(ctx, leaseID)
	if err != nil {
		s.col.Reject(seq, transport.ErrorMessage(err))
		return err
	}
	s.col.Replace(seq, items)
	return nil
}

func (s *PaymentStore) FetchMine(ctx context.Context) error {
	seq := s.col.Begin()
	items, err := s.svc.MyPayments(ctx)
	if err != nil {
		s.col.Reject(seq, transport.ErrorMessage(err))
		return err
	}
	s.col.Replace(seq, items)
	return nil
}

// Record logs an offline payment and prepends the server's record.
// Payments are immutable afterwards; there is no update or delete.
func (s *PaymentStore) Record(ctx context.Context, req *models.RecordPaymentRequest) error {
	seq := s.col.Begin()
	created, err := s.svc.Record(ctx, req)
	if err != nil {
		s.col.Reject(seq, transport.ErrorMessage(err))
		return err
	}
	s.col.Prepend(seq, *created)
	return nil
}

func (s *PaymentStore) Snapshot() state.Snapshot[models.Payment] { return s.col.Snapshot() }

func (s *PaymentStore) Subscribe(fn func(state.Snapshot[models.Payment])) { s.col.Subscribe(fn) }

func (s *PaymentStore) Reset() { s.col.Reset() }
