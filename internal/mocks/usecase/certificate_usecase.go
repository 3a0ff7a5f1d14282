package usecase

import (
	"context"
	"testing"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"
	"creativehub/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockCertificateUsecase is a testify mock of usecase.CertificateUsecase.
type MockCertificateUsecase struct {
	mock.Mock
}

// NewMockCertificateUsecase creates a mock that asserts its expectations when the test ends.
func NewMockCertificateUsecase(t testing.TB) *MockCertificateUsecase {
	m := &MockCertificateUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCertificateUsecase) List(ctx context.Context, filter repository.ListFilter) ([]*entity.Certificate, error) {
	ret := m.Called(ctx, filter)
	v0, _ := ret.Get(0).([]*entity.Certificate)

	return v0, ret.Error(1)
}

func (m *MockCertificateUsecase) Get(ctx context.Context, id string) (*entity.Certificate, error) {
	ret := m.Called(ctx, id)
	v0, _ := ret.Get(0).(*entity.Certificate)

	return v0, ret.Error(1)
}

func (m *MockCertificateUsecase) Create(ctx context.Context, input *usecase.CertificateInput) (*entity.Certificate, error) {
	ret := m.Called(ctx, input)
	v0, _ := ret.Get(0).(*entity.Certificate)

	return v0, ret.Error(1)
}

func (m *MockCertificateUsecase) Update(ctx context.Context, id string, patch *usecase.CertificatePatch) (*entity.Certificate, error) {
	ret := m.Called(ctx, id, patch)
	v0, _ := ret.Get(0).(*entity.Certificate)

	return v0, ret.Error(1)
}

func (m *MockCertificateUsecase) Delete(ctx context.Context, id string) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}

func (m *MockCertificateUsecase) Revoke(ctx context.Context, id string) (*entity.Certificate, error) {
	ret := m.Called(ctx, id)
	v0, _ := ret.Get(0).(*entity.Certificate)

	return v0, ret.Error(1)
}

func (m *MockCertificateUsecase) Verify(ctx context.Context, certificateID string) (*usecase.CertificateVerification, error) {
	ret := m.Called(ctx, certificateID)
	v0, _ := ret.Get(0).(*usecase.CertificateVerification)

	return v0, ret.Error(1)
}

func (m *MockCertificateUsecase) QRCode(ctx context.Context, id string) ([]byte, error) {
	ret := m.Called(ctx, id)
	v0, _ := ret.Get(0).([]byte)

	return v0, ret.Error(1)
}
