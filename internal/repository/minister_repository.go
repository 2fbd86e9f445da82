package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
)

// MinisterStore extends the generic contract with church scoping.
type MinisterStore interface {
	Store[model.Minister]
	ListByChurch(ctx context.Context, churchID uint) ([]model.Minister, error)
}

// MinisterRepository is the GORM implementation of MinisterStore.
type MinisterRepository struct {
	*CRUD[model.Minister]
	db *gorm.DB
}

// NewMinisterRepository builds a GORM-backed minister repository.
func NewMinisterRepository(db *gorm.DB) *MinisterRepository {
	return &MinisterRepository{CRUD: NewCRUD[model.Minister](db), db: db}
}

// ListByChurch returns all ministers of one church ordered by creation time.
func (r *MinisterRepository) ListByChurch(ctx context.Context, churchID uint) ([]model.Minister, error) {
	var ministers []model.Minister
	err := r.db.WithContext(ctx).
		Where("church_id = ?", churchID).
		Order("created_at ASC").
		Find(&ministers).Error
	if err != nil {
		return nil, err
	}
	return ministers, nil
}
