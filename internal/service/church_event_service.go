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
	eventListCacheKey = "church_events:list"
	eventListCacheTTL = time.Minute
)

// ChurchEventService handles event calendar operations.
type ChurchEventService interface {
	List(ctx context.Context) ([]model.ChurchEvent, error)
	Get(ctx context.Context, id uint) (*model.ChurchEvent, error)
	Create(ctx context.Context, event *model.ChurchEvent) (*model.ChurchEvent, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) (*model.ChurchEvent, error)
	Delete(ctx context.Context, id uint) error
}

type churchEventService struct {
	repo  repository.Store[model.ChurchEvent]
	cache *cache.Client
}

// NewChurchEventService creates a new church event service.
func NewChurchEventService(repo repository.Store[model.ChurchEvent], cache *cache.Client) ChurchEventService {
	return &churchEventService{repo: repo, cache: cache}
}

// List returns all events. The public site polls this, so results are
// cached briefly and invalidated on every write.
func (s *churchEventService) List(ctx context.Context) ([]model.ChurchEvent, error) {
	if data, _ := s.cache.Get(ctx, eventListCacheKey); data != nil {
		var cached []model.ChurchEvent
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(events); err == nil {
		_ = s.cache.Set(ctx, eventListCacheKey, payload, eventListCacheTTL)
	}

	return events, nil
}

func (s *churchEventService) Get(ctx context.Context, id uint) (*model.ChurchEvent, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChurchEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *churchEventService) Create(ctx context.Context, event *model.ChurchEvent) (*model.ChurchEvent, error) {
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, eventListCacheKey)
	return event, nil
}

func (s *churchEventService) Update(ctx context.Context, id uint, changes map[string]interface{}) (*model.ChurchEvent, error) {
	event, err := s.repo.Updates(ctx, id, changes)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChurchEventNotFound
		}
		return nil, err
	}
	_ = s.cache.Delete(ctx, eventListCacheKey)
	return event, nil
}

func (s *churchEventService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrChurchEventNotFound
	}
	_ = s.cache.Delete(ctx, eventListCacheKey)
	return nil
}
