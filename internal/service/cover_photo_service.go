package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/errors"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/repository"
)

// CoverPhotoService handles landing-page cover photo operations. Deleting a
// row does not delete the stored binary; that lifecycle belongs to the
// storage gateway.
type CoverPhotoService interface {
	List(ctx context.Context) ([]model.ChurchCoverPhoto, error)
	Get(ctx context.Context, id uint) (*model.ChurchCoverPhoto, error)
	Create(ctx context.Context, photo *model.ChurchCoverPhoto) (*model.ChurchCoverPhoto, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) (*model.ChurchCoverPhoto, error)
	Delete(ctx context.Context, id uint) error
}

type coverPhotoService struct {
	repo repository.Store[model.ChurchCoverPhoto]
}

// NewCoverPhotoService creates a new cover photo service.
func NewCoverPhotoService(repo repository.Store[model.ChurchCoverPhoto]) CoverPhotoService {
	return &coverPhotoService{repo: repo}
}

func (s *coverPhotoService) List(ctx context.Context) ([]model.ChurchCoverPhoto, error) {
	return s.repo.List(ctx)
}

func (s *coverPhotoService) Get(ctx context.Context, id uint) (*model.ChurchCoverPhoto, error) {
	photo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCoverPhotoNotFound
		}
		return nil, err
	}
	return photo, nil
}

func (s *coverPhotoService) Create(ctx context.Context, photo *model.ChurchCoverPhoto) (*model.ChurchCoverPhoto, error) {
	if err := s.repo.Create(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

func (s *coverPhotoService) Update(ctx context.Context, id uint, changes map[string]interface{}) (*model.ChurchCoverPhoto, error) {
	photo, err := s.repo.Updates(ctx, id, changes)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCoverPhotoNotFound
		}
		return nil, err
	}
	return photo, nil
}

func (s *coverPhotoService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrCoverPhotoNotFound
	}
	return nil
}
