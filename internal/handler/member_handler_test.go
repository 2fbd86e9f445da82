package handler

import (
	"bytes"
	"context"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/errors"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
)

// MockMemberService is a mock implementation of service.MemberService.
type MockMemberService struct {
	mock.Mock
}

func (m *MockMemberService) List(ctx context.Context, churchID uint) ([]model.Member, error) {
	args := m.Called(ctx, churchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Member), args.Error(1)
}

func (m *MockMemberService) Get(ctx context.Context, id uint) (*model.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Member), args.Error(1)
}

func (m *MockMemberService) GetByQRIdentifier(ctx context.Context, identifier string) (*model.Member, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Member), args.Error(1)
}

func (m *MockMemberService) Create(ctx context.Context, member *model.Member) (*model.Member, error) {
	args := m.Called(ctx, member)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Member), args.Error(1)
}

func (m *MockMemberService) Update(ctx context.Context, id uint, changes map[string]interface{}) (*model.Member, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Member), args.Error(1)
}

func (m *MockMemberService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestMemberHandler_QRCard(t *testing.T) {
	e := newTestEcho()
	mockSvc := new(MockMemberService)
	mockSvc.On("Get", mock.Anything, uint(1)).Return(&model.Member{
		ID:           1,
		FirstName:    "Juan",
		LastName:     "Dela Cruz",
		QRIdentifier: "qr-abc-123",
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/members/1/qr", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, NewMemberHandler(mockSvc).QRCard(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))

	_, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	assert.NoError(t, err, "response body must be a decodable PNG")
	mockSvc.AssertExpectations(t)
}

func TestMemberHandler_QRCard_NotFound(t *testing.T) {
	e := newTestEcho()
	mockSvc := new(MockMemberService)
	mockSvc.On("Get", mock.Anything, uint(99)).Return(nil, apperrors.ErrMemberNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/members/99/qr", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	require.NoError(t, NewMemberHandler(mockSvc).QRCard(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	mockSvc.AssertExpectations(t)
}

func TestMemberHandler_Resolve(t *testing.T) {
	t.Run("full card payload", func(t *testing.T) {
		e := newTestEcho()
		mockSvc := new(MockMemberService)
		mockSvc.On("GetByQRIdentifier", mock.Anything, "qr-abc-123").Return(&model.Member{
			ID:           1,
			QRIdentifier: "qr-abc-123",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/members/resolve?payload=irm-member:qr-abc-123", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, NewMemberHandler(mockSvc).Resolve(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("bare identifier", func(t *testing.T) {
		e := newTestEcho()
		mockSvc := new(MockMemberService)
		mockSvc.On("GetByQRIdentifier", mock.Anything, "qr-abc-123").Return(&model.Member{ID: 1}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/members/resolve?payload=qr-abc-123", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, NewMemberHandler(mockSvc).Resolve(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing payload", func(t *testing.T) {
		e := newTestEcho()
		req := httptest.NewRequest(http.MethodGet, "/api/members/resolve", nil)
		rec := httptest.NewRecorder()

		err := NewMemberHandler(new(MockMemberService)).Resolve(e.NewContext(req, rec))
		require.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestMemberHandler_List_ChurchScope(t *testing.T) {
	e := newTestEcho()
	mockSvc := new(MockMemberService)
	mockSvc.On("List", mock.Anything, uint(7)).Return([]model.Member{{ID: 1, ChurchID: 7}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/members?churchId=7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, NewMemberHandler(mockSvc).List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	mockSvc.AssertExpectations(t)
}
