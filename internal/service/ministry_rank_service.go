package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/errors"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/repository"
)

// MinistryRankService handles ministry rank operations.
type MinistryRankService interface {
	List(ctx context.Context) ([]model.MinistryRank, error)
	Get(ctx context.Context, id uint) (*model.MinistryRank, error)
	Create(ctx context.Context, rank *model.MinistryRank) (*model.MinistryRank, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) (*model.MinistryRank, error)
	Delete(ctx context.Context, id uint) error
}

type ministryRankService struct {
	repo repository.Store[model.MinistryRank]
}

// NewMinistryRankService creates a new ministry rank service.
func NewMinistryRankService(repo repository.Store[model.MinistryRank]) MinistryRankService {
	return &ministryRankService{repo: repo}
}

func (s *ministryRankService) List(ctx context.Context) ([]model.MinistryRank, error) {
	return s.repo.List(ctx)
}

func (s *ministryRankService) Get(ctx context.Context, id uint) (*model.MinistryRank, error) {
	rank, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMinistryRankNotFound
		}
		return nil, err
	}
	return rank, nil
}

func (s *ministryRankService) Create(ctx context.Context, rank *model.MinistryRank) (*model.MinistryRank, error) {
	if err := s.repo.Create(ctx, rank); err != nil {
		return nil, err
	}
	return rank, nil
}

func (s *ministryRankService) Update(ctx context.Context, id uint, changes map[string]interface{}) (*model.MinistryRank, error) {
	rank, err := s.repo.Updates(ctx, id, changes)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMinistryRankNotFound
		}
		return nil, err
	}
	return rank, nil
}

func (s *ministryRankService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrMinistryRankNotFound
	}
	return nil
}
