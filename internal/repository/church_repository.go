package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
)

// ChurchStore extends the generic contract with free-text search.
type ChurchStore interface {
	Store[model.Church]
	Search(ctx context.Context, query string) ([]model.Church, error)
}

// ChurchRepository is the GORM implementation of ChurchStore.
type ChurchRepository struct {
	*CRUD[model.Church]
	db *gorm.DB
}

// NewChurchRepository builds a GORM-backed church repository.
func NewChurchRepository(db *gorm.DB) *ChurchRepository {
	return &ChurchRepository{CRUD: NewCRUD[model.Church](db), db: db}
}

// Search matches the query against name, address, and email. MySQL LIKE is
// case-insensitive under the default collation.
func (r *ChurchRepository) Search(ctx context.Context, query string) ([]model.Church, error) {
	var churches []model.Church
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("name LIKE ? OR address LIKE ? OR email LIKE ?", pattern, pattern, pattern).
		Order("created_at ASC").
		Find(&churches).Error
	if err != nil {
		return nil, err
	}
	return churches, nil
}
