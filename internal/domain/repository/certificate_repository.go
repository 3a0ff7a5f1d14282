package repository

import (
	"context"

	"creativehub/internal/domain/entity"
)

// CertificateRepository persists issued certificates.
type CertificateRepository interface {
	List(ctx context.Context, filter ListFilter) ([]*entity.Certificate, error)
	FindByID(ctx context.Context, id string) (*entity.Certificate, error)
	FindByCertificateID(ctx context.Context, certificateID string) (*entity.Certificate, error)
	Create(ctx context.Context, certificate *entity.Certificate) error
	Update(ctx context.Context, certificate *entity.Certificate) error
	Delete(ctx context.Context, id string) error
}
