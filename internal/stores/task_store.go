package stores

import (
	"context"

	"leaseify/internal/models"
	"leaseify/internal/services"
	"leaseify/internal/state"
	"leaseify/internal/transport"
)

// TaskStore mirrors the landlord's task list; full CRUD.
type TaskStore struct {
	col *state.Collection[models.Task]
	svc services.TaskService
}

func NewTaskStore(svc services.TaskService) *TaskStore {
	return &TaskStore{
		col: state.NewCollection(func(t models.Task) string { return t.ID }),
		svc: svc,
	}
}

func (s *TaskStore) Fetch(ctx context.Context) error {
	seq := s.col.Begin()
	items, err := s.svc.List(ctx)
	if err != nil {
		s.col.Reject(seq, transport.ErrorMessage(err))
		return err
	}
	s.col.Replace(seq, items)
	return nil
}

func (s *TaskStore) Create(ctx context.Context, req *models.CreateTaskRequest) error {
	seq := s.col.Begin()
	created, err := s.svc.Create(ctx, req)
	if err != nil {
		s.col.Reject(seq, transport.ErrorMessage(err))
		return err
	}
	s.col.Append(seq, *created)
	return nil
}

func (s *TaskStore) Update(ctx context.Context, id string, req *models.UpdateTaskRequest) error {
	seq := s.col.Begin()
	updated, err := s.svc.Update(ctx, id, req)
	if err != nil {
		s.col.Reject(seq, transport.ErrorMessage(err))
		return err
	}
	s.col.Update(seq, *updated)
	return nil
}

// Toggle flips a task's completion flag, sending the full record the way
// the task form does.
func (s *TaskStore) Toggle(ctx context.Context, task models.Task) error {
	return s.Update(ctx, task.ID, &models.UpdateTaskRequest{
		Text:      task.Text,
		Completed: !task.Completed,
	})
}

func (s *TaskStore) Delete(ctx context.Context, id string) error {
	seq := s.col.Begin()
	if err := s.svc.Delete(ctx, id); err != nil {
		s.col.Reject(seq, transport.ErrorMessage(err))
		return err
	}
	s.col.Remove(seq, id)
	return nil
}

func (s *TaskStore) Snapshot() state.Snapshot[models.Task] { return s.col.Snapshot() }

func (s *TaskStore) Subscribe(fn func(state.Snapshot[models.Task])) { s.col.Subscribe(fn) }

func (s *TaskStore) Reset() { s.col.Reset() }
