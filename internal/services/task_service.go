package services

import (
	"context"
	"fmt"

	"leaseify/internal/models"
	"leaseify/internal/transport"
)

type TaskService interface {
	List(ctx context.Context) ([]models.Task, error)
	Create(ctx context.Context, req *models.CreateTaskRequest) (*models.Task, error)
	Update(ctx context.Context, id string, req *models.UpdateTaskRequest) (*models.Task, error)
	Delete(ctx context.Context, id string) error
}

type taskService struct {
	api *transport.Client
}

func NewTaskService(api *transport.Client) TaskService {
	return &taskService{api: api}
}

func (s *taskService) List(ctx context.Context) ([]models.Task, error) {
	var out []models.Task
	if err := s.api.Get(ctx, "landlord/tasks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *taskService) Create(ctx context.Context, req *models.CreateTaskRequest) (*models.Task, error) {
	var out models.Task
	if err := s.api.Post(ctx, "landlord/tasks", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *taskService) Update(ctx context.Context, id string, req *models.UpdateTaskRequest) (*models.Task, error) {
	var out models.Task
	if err := s.api.Put(ctx, fmt.Sprintf("landlord/tasks/%s", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, fmt.Sprintf("landlord/tasks/%s", id))
}
