package repository

import (
	"context"
	"testing"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockCertificateRepository is a testify mock of repository.CertificateRepository.
type MockCertificateRepository struct {
	mock.Mock
}

// NewMockCertificateRepository creates a mock that asserts its expectations when the test ends.
func NewMockCertificateRepository(t testing.TB) *MockCertificateRepository {
	m := &MockCertificateRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCertificateRepository) List(ctx context.Context, filter repository.ListFilter) ([]*entity.Certificate, error) {
	ret := m.Called(ctx, filter)
	v0, _ := ret.Get(0).([]*entity.Certificate)

	return v0, ret.Error(1)
}

func (m *MockCertificateRepository) FindByID(ctx context.Context, id string) (*entity.Certificate, error) {
	ret := m.Called(ctx, id)
	v0, _ := ret.Get(0).(*entity.Certificate)

	return v0, ret.Error(1)
}

func (m *MockCertificateRepository) FindByCertificateID(ctx context.Context, certificateID string) (*entity.Certificate, error) {
	ret := m.Called(ctx, certificateID)
	v0, _ := ret.Get(0).(*entity.Certificate)

	return v0, ret.Error(1)
}

func (m *MockCertificateRepository) Create(ctx context.Context, certificate *entity.Certificate) error {
	ret := m.Called(ctx, certificate)

	return ret.Error(0)
}

func (m *MockCertificateRepository) Update(ctx context.Context, certificate *entity.Certificate) error {
	ret := m.Called(ctx, certificate)

	return ret.Error(0)
}

func (m *MockCertificateRepository) Delete(ctx context.Context, id string) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}
