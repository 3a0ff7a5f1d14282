package mongodb

import (
	"context"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"
	"creativehub/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type certificateRepository struct {
	store *store[model.CertificateModel]
}

// NewCertificateRepository is the constructor for certificateRepository.
func NewCertificateRepository(db *mongo.Database) repository.CertificateRepository {
	return &certificateRepository{
		store: newStore[model.CertificateModel](db, CollectionCertificates, "", "certificateId", "studentName", "courseName"),
	}
}

func (repo *certificateRepository) List(ctx context.Context, filter repository.ListFilter) ([]*entity.Certificate, error) {
	docs, err := repo.store.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	certificates := make([]*entity.Certificate, 0, len(docs))
	for _, doc := range docs {
		certificates = append(certificates, toCertificateDomain(doc))
	}

	return certificates, nil
}

func (repo *certificateRepository) FindByID(ctx context.Context, id string) (*entity.Certificate, error) {
	doc, err := repo.store.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toCertificateDomain(doc), nil
}

func (repo *certificateRepository) FindByCertificateID(ctx context.Context, certificateID string) (*entity.Certificate, error) {
	doc, err := repo.store.findOne(ctx, bson.M{"certificateId": certificateID})
	if err != nil {
		return nil, err
	}

	return toCertificateDomain(doc), nil
}

func (repo *certificateRepository) Create(ctx context.Context, certificate *entity.Certificate) error {
	certificate.CreatedAt = now()
	certificate.UpdatedAt = certificate.CreatedAt
	doc := fromCertificateDomain(certificate, assignID(certificate.ID))
	if err := repo.store.insert(ctx, doc); err != nil {
		return err
	}
	certificate.ID = doc.ID.Hex()

	return nil
}

func (repo *certificateRepository) Update(ctx context.Context, certificate *entity.Certificate) error {
	oid, err := objectID(certificate.ID)
	if err != nil {
		return err
	}

	certificate.UpdatedAt = now()

	return repo.store.replace(ctx, oid, fromCertificateDomain(certificate, oid))
}

func (repo *certificateRepository) Delete(ctx context.Context, id string) error {
	return repo.store.deleteByID(ctx, id)
}
