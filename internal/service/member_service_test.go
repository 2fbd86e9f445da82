package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/errors"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
)

// MockMemberStore is a mock implementation of repository.MemberStore.
type MockMemberStore struct {
	MockStore[model.Member]
}

func (m *MockMemberStore) ListByChurch(ctx context.Context, churchID uint) ([]model.Member, error) {
	args := m.Called(ctx, churchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Member), args.Error(1)
}

func (m *MockMemberStore) FindByQRIdentifier(ctx context.Context, identifier string) (*model.Member, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Member), args.Error(1)
}

func TestMemberService_Create_AssignsQRIdentifier(t *testing.T) {
	mockRepo := new(MockMemberStore)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Member")).Return(nil)

	svc := NewMemberService(mockRepo)
	member, err := svc.Create(context.Background(), &model.Member{
		ChurchID:  1,
		FirstName: "Juan",
		LastName:  "Dela Cruz",
		Gender:    "male",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, member.QRIdentifier)

	// Identifiers must be unique per member, not derived from the data.
	mockRepo2 := new(MockMemberStore)
	mockRepo2.On("Create", mock.Anything, mock.AnythingOfType("*model.Member")).Return(nil)
	second, err := NewMemberService(mockRepo2).Create(context.Background(), &model.Member{
		ChurchID:  1,
		FirstName: "Juan",
		LastName:  "Dela Cruz",
		Gender:    "male",
	})
	require.NoError(t, err)
	assert.NotEqual(t, member.QRIdentifier, second.QRIdentifier)

	mockRepo.AssertExpectations(t)
}

func TestMemberService_List(t *testing.T) {
	t.Run("all members", func(t *testing.T) {
		mockRepo := new(MockMemberStore)
		mockRepo.On("List", mock.Anything).Return([]model.Member{{ID: 1}, {ID: 2}}, nil)

		members, err := NewMemberService(mockRepo).List(context.Background(), 0)
		require.NoError(t, err)
		assert.Len(t, members, 2)
		mockRepo.AssertExpectations(t)
	})

	t.Run("scoped to church", func(t *testing.T) {
		mockRepo := new(MockMemberStore)
		mockRepo.On("ListByChurch", mock.Anything, uint(7)).Return([]model.Member{{ID: 3, ChurchID: 7}}, nil)

		members, err := NewMemberService(mockRepo).List(context.Background(), 7)
		require.NoError(t, err)
		assert.Len(t, members, 1)
		assert.Equal(t, uint(7), members[0].ChurchID)
		mockRepo.AssertExpectations(t)
	})
}

func TestMemberService_GetByQRIdentifier(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockMemberStore)
		mockRepo.On("FindByQRIdentifier", mock.Anything, "qr-abc").Return(&model.Member{ID: 1, QRIdentifier: "qr-abc"}, nil)

		member, err := NewMemberService(mockRepo).GetByQRIdentifier(context.Background(), "qr-abc")
		require.NoError(t, err)
		assert.Equal(t, uint(1), member.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockMemberStore)
		mockRepo.On("FindByQRIdentifier", mock.Anything, "qr-missing").Return(nil, gorm.ErrRecordNotFound)

		member, err := NewMemberService(mockRepo).GetByQRIdentifier(context.Background(), "qr-missing")
		assert.ErrorIs(t, err, apperrors.ErrMemberNotFound)
		assert.Nil(t, member)
	})
}

func TestMemberService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockMemberStore)
	mockRepo.On("Delete", mock.Anything, uint(9)).Return(false, nil)

	err := NewMemberService(mockRepo).Delete(context.Background(), 9)
	assert.ErrorIs(t, err, apperrors.ErrMemberNotFound)
	mockRepo.AssertExpectations(t)
}
