package service

import (
	"testing"
	"time"

	"creativehub/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockTokenService is a testify mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock that asserts its expectations when the test ends.
func NewMockTokenService(t testing.TB) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) GenerateAccessToken(userID string, role string) (string, time.Time, error) {
	ret := m.Called(userID, role)
	v1, _ := ret.Get(1).(time.Time)

	return ret.String(0), v1, ret.Error(2)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	ret := m.Called(tokenString)
	v0, _ := ret.Get(0).(*service.Claims)

	return v0, ret.Error(1)
}
