package categoryservice

import (
	"context"

	"github.com/felend/felend/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=categoryservice.go -destination=categoryservice_mock.go -package=categoryservice

type Repo interface {
	FindActive(ctx context.Context) ([]domain.Category, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// List returns the active categories shown in survey filters, alphabetically.
func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.FindActive(ctx)
	if err != nil {
		zap.L().Error("failed to get categories", zap.Error(err))
		return nil, err
	}
	return categories, nil
}
