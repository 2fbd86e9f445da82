package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/errors"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
)

// MockStore is a mock implementation of repository.Store[T].
type MockStore[T any] struct {
	mock.Mock
}

func (m *MockStore[T]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockStore[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockStore[T]) Create(ctx context.Context, entity *T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockStore[T]) Updates(ctx context.Context, id uint, changes map[string]interface{}) (*T, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockStore[T]) Delete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestMinistryRankService_Get(t *testing.T) {
	tests := []struct {
		name          string
		id            uint
		setupMock     func(*MockStore[model.MinistryRank])
		expectedError error
	}{
		{
			name: "found",
			id:   1,
			setupMock: func(m *MockStore[model.MinistryRank]) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.MinistryRank{ID: 1, Name: "Bishop"}, nil)
			},
			expectedError: nil,
		},
		{
			name: "not found",
			id:   99,
			setupMock: func(m *MockStore[model.MinistryRank]) {
				m.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrMinistryRankNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockStore[model.MinistryRank])
			tt.setupMock(mockRepo)

			svc := NewMinistryRankService(mockRepo)
			rank, err := svc.Get(context.Background(), tt.id)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, rank)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Bishop", rank.Name)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestMinistryRankService_Create(t *testing.T) {
	mockRepo := new(MockStore[model.MinistryRank])
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.MinistryRank")).Return(nil)

	svc := NewMinistryRankService(mockRepo)
	rank, err := svc.Create(context.Background(), &model.MinistryRank{Name: "Deacon"})

	assert.NoError(t, err)
	assert.Equal(t, "Deacon", rank.Name)
	mockRepo.AssertExpectations(t)
}

func TestMinistryRankService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockStore[model.MinistryRank])
	changes := map[string]interface{}{"name": "Elder"}
	mockRepo.On("Updates", mock.Anything, uint(5), changes).Return(nil, gorm.ErrRecordNotFound)

	svc := NewMinistryRankService(mockRepo)
	rank, err := svc.Update(context.Background(), 5, changes)

	assert.ErrorIs(t, err, apperrors.ErrMinistryRankNotFound)
	assert.Nil(t, rank)
	mockRepo.AssertExpectations(t)
}

func TestMinistryRankService_Delete(t *testing.T) {
	tests := []struct {
		name          string
		deleted       bool
		expectedError error
	}{
		{"deleted", true, nil},
		{"not found", false, apperrors.ErrMinistryRankNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockStore[model.MinistryRank])
			mockRepo.On("Delete", mock.Anything, uint(3)).Return(tt.deleted, nil)

			svc := NewMinistryRankService(mockRepo)
			err := svc.Delete(context.Background(), 3)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
