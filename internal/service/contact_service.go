package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/errors"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/repository"
)

// ContactService handles contact-form submissions. Create is the only
// public write in the whole API.
type ContactService interface {
	List(ctx context.Context) ([]model.ContactSubmission, error)
	Get(ctx context.Context, id uint) (*model.ContactSubmission, error)
	Create(ctx context.Context, submission *model.ContactSubmission) (*model.ContactSubmission, error)
	Delete(ctx context.Context, id uint) error
}

type contactService struct {
	repo repository.Store[model.ContactSubmission]
}

// NewContactService creates a new contact service.
func NewContactService(repo repository.Store[model.ContactSubmission]) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) List(ctx context.Context) ([]model.ContactSubmission, error) {
	return s.repo.List(ctx)
}

func (s *contactService) Get(ctx context.Context, id uint) (*model.ContactSubmission, error) {
	submission, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, err
	}
	return submission, nil
}

func (s *contactService) Create(ctx context.Context, submission *model.ContactSubmission) (*model.ContactSubmission, error) {
	if err := s.repo.Create(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *contactService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrContactNotFound
	}
	return nil
}
