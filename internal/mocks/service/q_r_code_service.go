package service

import (
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockQRCodeService is a testify mock of service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

// NewMockQRCodeService creates a mock that asserts its expectations when the test ends.
func NewMockQRCodeService(t testing.TB) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockQRCodeService) GenerateCertificateQR(certificateID string) ([]byte, error) {
	ret := m.Called(certificateID)
	v0, _ := ret.Get(0).([]byte)

	return v0, ret.Error(1)
}

func (m *MockQRCodeService) ParseCertificateQR(qrData string) (string, error) {
	ret := m.Called(qrData)

	return ret.String(0), ret.Error(1)
}
