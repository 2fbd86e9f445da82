package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/errors"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/repository"
)

// MemberService handles member registry operations.
type MemberService interface {
	List(ctx context.Context, churchID uint) ([]model.Member, error)
	Get(ctx context.Context, id uint) (*model.Member, error)
	GetByQRIdentifier(ctx context.Context, identifier string) (*model.Member, error)
	Create(ctx context.Context, member *model.Member) (*model.Member, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) (*model.Member, error)
	Delete(ctx context.Context, id uint) error
}

type memberService struct {
	repo repository.MemberStore
}

// NewMemberService creates a new member service.
func NewMemberService(repo repository.MemberStore) MemberService {
	return &memberService{repo: repo}
}

// List returns all members, scoped to one church when churchID is non-zero.
func (s *memberService) List(ctx context.Context, churchID uint) ([]model.Member, error) {
	if churchID != 0 {
		return s.repo.ListByChurch(ctx, churchID)
	}
	return s.repo.List(ctx)
}

func (s *memberService) Get(ctx context.Context, id uint) (*model.Member, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// GetByQRIdentifier resolves a scanned member card.
func (s *memberService) GetByQRIdentifier(ctx context.Context, identifier string) (*model.Member, error) {
	member, err := s.repo.FindByQRIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// Create inserts a member and assigns the opaque QR identifier.
func (s *memberService) Create(ctx context.Context, member *model.Member) (*model.Member, error) {
	member.QRIdentifier = uuid.NewString()
	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *memberService) Update(ctx context.Context, id uint, changes map[string]interface{}) (*model.Member, error) {
	member, err := s.repo.Updates(ctx, id, changes)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

func (s *memberService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrMemberNotFound
	}
	return nil
}
