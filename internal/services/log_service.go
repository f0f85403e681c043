package services

import (
	"context"
	"net/url"
	"strconv"

	"leaseify/internal/models"
	"leaseify/internal/transport"
)

type LogService interface {
	// List fetches a page of logs, optionally narrowed to one type via
	// the backend's type query parameter.
	List(ctx context.Context, page, limit int, logType string) (*models.Page[models.Log], error)
	Create(ctx context.Context, req *models.CreateLogRequest) (*models.Log, error)
}

type logService struct {
	api *transport.Client
}

func NewLogService(api *transport.Client) LogService {
	return &logService{api: api}
}

func (s *logService) List(ctx context.Context, page, limit int, logType string) (*models.Page[models.Log], error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if logType != "" {
		query.Set("type", logType)
	}
	var out models.Page[models.Log]
	if err := s.api.Get(ctx, "landlord/logs", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *logService) Create(ctx context.Context, req *models.CreateLogRequest) (*models.Log, error) {
	var out models.Log
	if err := s.api.Post(ctx, "landlord/logs", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
