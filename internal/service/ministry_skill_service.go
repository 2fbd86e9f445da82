package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/errors"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/repository"
)

// MinistrySkillService handles ministry skill operations.
type MinistrySkillService interface {
	List(ctx context.Context) ([]model.MinistrySkill, error)
	Get(ctx context.Context, id uint) (*model.MinistrySkill, error)
	Create(ctx context.Context, skill *model.MinistrySkill) (*model.MinistrySkill, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) (*model.MinistrySkill, error)
	Delete(ctx context.Context, id uint) error
}

type ministrySkillService struct {
	repo repository.Store[model.MinistrySkill]
}

// NewMinistrySkillService creates a new ministry skill service.
func NewMinistrySkillService(repo repository.Store[model.MinistrySkill]) MinistrySkillService {
	return &ministrySkillService{repo: repo}
}

func (s *ministrySkillService) List(ctx context.Context) ([]model.MinistrySkill, error) {
	return s.repo.List(ctx)
}

func (s *ministrySkillService) Get(ctx context.Context, id uint) (*model.MinistrySkill, error) {
	skill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMinistrySkillNotFound
		}
		return nil, err
	}
	return skill, nil
}

func (s *ministrySkillService) Create(ctx context.Context, skill *model.MinistrySkill) (*model.MinistrySkill, error) {
	if err := s.repo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *ministrySkillService) Update(ctx context.Context, id uint, changes map[string]interface{}) (*model.MinistrySkill, error) {
	skill, err := s.repo.Updates(ctx, id, changes)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMinistrySkillNotFound
		}
		return nil, err
	}
	return skill, nil
}

func (s *ministrySkillService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrMinistrySkillNotFound
	}
	return nil
}
