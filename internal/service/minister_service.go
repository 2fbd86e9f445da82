package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/errors"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/repository"
)

// MinisterService handles minister registry operations.
type MinisterService interface {
	List(ctx context.Context, churchID uint) ([]model.Minister, error)
	Get(ctx context.Context, id uint) (*model.Minister, error)
	Create(ctx context.Context, minister *model.Minister) (*model.Minister, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) (*model.Minister, error)
	Delete(ctx context.Context, id uint) error
}

type ministerService struct {
	repo repository.MinisterStore
}

// NewMinisterService creates a new minister service.
func NewMinisterService(repo repository.MinisterStore) MinisterService {
	return &ministerService{repo: repo}
}

// List returns all ministers, scoped to one church when churchID is non-zero.
func (s *ministerService) List(ctx context.Context, churchID uint) ([]model.Minister, error) {
	if churchID != 0 {
		return s.repo.ListByChurch(ctx, churchID)
	}
	return s.repo.List(ctx)
}

func (s *ministerService) Get(ctx context.Context, id uint) (*model.Minister, error) {
	minister, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMinisterNotFound
		}
		return nil, err
	}
	return minister, nil
}

func (s *ministerService) Create(ctx context.Context, minister *model.Minister) (*model.Minister, error) {
	if err := s.repo.Create(ctx, minister); err != nil {
		return nil, err
	}
	return minister, nil
}

func (s *ministerService) Update(ctx context.Context, id uint, changes map[string]interface{}) (*model.Minister, error) {
	minister, err := s.repo.Updates(ctx, id, changes)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMinisterNotFound
		}
		return nil, err
	}
	return minister, nil
}

func (s *ministerService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrMinisterNotFound
	}
	return nil
}
