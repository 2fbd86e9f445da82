package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/cache"
	apperrors "github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/errors"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/repository"
)

const (
	churchListCacheKey = "churches:list"
	churchListCacheTTL = time.Minute
)

// ChurchService handles church directory operations.
type ChurchService interface {
	List(ctx context.Context, search string) ([]model.Church, error)
	Get(ctx context.Context, id uint) (*model.Church, error)
	Create(ctx context.Context, church *model.Church) (*model.Church, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) (*model.Church, error)
	Delete(ctx context.Context, id uint) error
}

type churchService struct {
	repo  repository.ChurchStore
	cache *cache.Client
}

// NewChurchService creates a new church service.
func NewChurchService(repo repository.ChurchStore, cache *cache.Client) ChurchService {
	return &churchService{repo: repo, cache: cache}
}

// List returns all churches, or search matches when a query is present. The
// unfiltered listing is what the public site hammers, so only that variant
// is cached.
func (s *churchService) List(ctx context.Context, search string) ([]model.Church, error) {
	if search != "" {
		return s.repo.Search(ctx, search)
	}

	if data, _ := s.cache.Get(ctx, churchListCacheKey); data != nil {
		var cached []model.Church
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	churches, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(churches); err == nil {
		_ = s.cache.Set(ctx, churchListCacheKey, payload, churchListCacheTTL)
	}

	return churches, nil
}

func (s *churchService) Get(ctx context.Context, id uint) (*model.Church, error) {
	church, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChurchNotFound
		}
		return nil, err
	}
	return church, nil
}

func (s *churchService) Create(ctx context.Context, church *model.Church) (*model.Church, error) {
	if err := s.repo.Create(ctx, church); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, churchListCacheKey)
	return church, nil
}

func (s *churchService) Update(ctx context.Context, id uint, changes map[string]interface{}) (*model.Church, error) {
	church, err := s.repo.Updates(ctx, id, changes)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChurchNotFound
		}
		return nil, err
	}
	_ = s.cache.Delete(ctx, churchListCacheKey)
	return church, nil
}

// Delete removes a church. Members and ministers referencing it are left in
// place.
func (s *churchService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrChurchNotFound
	}
	_ = s.cache.Delete(ctx, churchListCacheKey)
	return nil
}
