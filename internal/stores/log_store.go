package stores

import (
	"context"

	"leaseify/internal/models"
	"leaseify/internal/services"
	"leaseify/internal/state"
	"leaseify/internal/transport"
)

// LogStore mirrors the paginated communication log. Entries are
// append-only; the only mutation is Create.
type LogStore struct {
	col *state.Collection[models.Log]
	svc services.LogService
}

func NewLogStore(svc services.LogService) *LogStore {
	return &LogStore{
		col: state.NewCollection(func(l models.Log) string { return l.ID }),
		svc: svc,
	}
}

func (s *LogStore) Fetch(ctx context.Context, page, limit int, logType string) error {
	seq := s.col.Begin()
	result, err := s.svc.List(ctx, page, limit, logType)
	if err != nil {
		s.col.Reject(seq, transport.ErrorMessage(err))
		return err
	}
	s.col.ReplacePage(seq, result.Data, result.Meta.Page, result.Meta.TotalPages)
	return nil
}

func (s *LogStore) Create(ctx context.Context, req *models.CreateLogRequest) error {
	seq := s.col.Begin()
	created, err := s.svc.Create(ctx, req)
	if err != nil {
		s.col.Reject(seq, transport.ErrorMessage(err))
		return err
	}
	s.col.Prepend(seq, *created)
	return nil
}

func (s *LogStore) Snapshot() state.Snapshot[models.Log] { return s.col.Snapshot() }

func (s *LogStore) Subscribe(fn func(state.Snapshot[models.Log])) { s.col.Subscribe(fn) }

func (s *LogStore) Reset() { s.col.Reset() }

// FilterByType returns exactly the entries of the given type, preserving
// order. Used by log views that narrow an already-fetched mixed list.
func FilterByType(logs []models.Log, logType string) []models.Log {
	filtered := make([]models.Log, 0, len(logs))
	for _, entry := range logs {
		if entry.Type == logType {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}
