package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store is the generic persistence contract services depend on; CRUD is the
// GORM implementation. Tests substitute mocks.
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, entity *T) error
	Updates(ctx context.Context, id uint, changes map[string]interface{}) (*T, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

// CRUD is the generic GORM-backed repository shared by every entity. Entity
// tables all carry an autoincrement id plus created_at/updated_at columns
// stamped by GORM, so the five operations below cover the whole contract;
// entities with extra queries compose this type.
type CRUD[T any] struct {
	db *gorm.DB
}

var _ Store[struct{}] = (*CRUD[struct{}])(nil)

// NewCRUD builds a generic repository for one entity type.
func NewCRUD[T any](db *gorm.DB) *CRUD[T] {
	return &CRUD[T]{db: db}
}

// List returns all rows ordered by creation time. There is no pagination;
// tables here stay small enough for full scans.
func (r *CRUD[T]) List(ctx context.Context) ([]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// FindByID returns the row with the given primary key.
func (r *CRUD[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// Create inserts the row; GORM assigns the id and timestamps.
func (r *CRUD[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// Updates applies a partial column map to the row and returns the updated
// row. GORM re-stamps updated_at. Returns gorm.ErrRecordNotFound for an
// absent id.
func (r *CRUD[T]) Updates(ctx context.Context, id uint, changes map[string]interface{}) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		return nil, err
	}
	if len(changes) > 0 {
		if err := r.db.WithContext(ctx).Model(&entity).Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	return &entity, nil
}

// Delete removes the row by id and reports whether a row actually existed,
// so deletes stay idempotent-safe for callers needing a not-found signal.
func (r *CRUD[T]) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
