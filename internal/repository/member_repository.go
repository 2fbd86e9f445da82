package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
)

// MemberStore extends the generic contract with church scoping and QR
// lookup.
type MemberStore interface {
	Store[model.Member]
	ListByChurch(ctx context.Context, churchID uint) ([]model.Member, error)
	FindByQRIdentifier(ctx context.Context, identifier string) (*model.Member, error)
}

// MemberRepository is the GORM implementation of MemberStore.
type MemberRepository struct {
	*CRUD[model.Member]
	db *gorm.DB
}

// NewMemberRepository builds a GORM-backed member repository.
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{CRUD: NewCRUD[model.Member](db), db: db}
}

// ListByChurch returns all members of one church ordered by creation time.
func (r *MemberRepository) ListByChurch(ctx context.Context, churchID uint) ([]model.Member, error) {
	var members []model.Member
	err := r.db.WithContext(ctx).
		Where("church_id = ?", churchID).
		Order("created_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// FindByQRIdentifier resolves a scanned member card back to its row.
func (r *MemberRepository) FindByQRIdentifier(ctx context.Context, identifier string) (*model.Member, error) {
	var member model.Member
	if err := r.db.WithContext(ctx).Where("qr_identifier = ?", identifier).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}
