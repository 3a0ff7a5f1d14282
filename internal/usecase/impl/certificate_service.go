package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "creativehub/internal/delivery/context"
	"creativehub/internal/domain/entity"
	domainerrors "creativehub/internal/domain/errors"
	"creativehub/internal/domain/repository"
	"creativehub/internal/domain/service"
	"creativehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const resourceCertificates = "certificates"

type certificateService struct {
	certificateRepo repository.CertificateRepository
	qrService       service.QRCodeService
	events          events
	logger          *slog.Logger
	now             func() time.Time
}

// CertificateServiceParams holds dependencies for CertificateService, injected by Fx.
type CertificateServiceParams struct {
	fx.In

	CertificateRepo repository.CertificateRepository
	QRService       service.QRCodeService
	Publisher       service.EventPublisher
	Logger          *slog.Logger
}

// NewCertificateService is the constructor for certificateService.
func NewCertificateService(params CertificateServiceParams) usecase.CertificateUsecase {
	return &certificateService{
		certificateRepo: params.CertificateRepo,
		qrService:       params.QRService,
		events:          events{publisher: params.Publisher, logger: params.Logger},
		logger:          params.Logger,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func (srv *certificateService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

func (srv *certificateService) List(ctx context.Context, filter repository.ListFilter) ([]*entity.Certificate, error) {
	certificates, err := srv.certificateRepo.List(ctx, filter)
	if err != nil {
		return nil, repoError(err, domainerrors.ErrCertificateNotFound, "list certificates")
	}

	return certificates, nil
}

func (srv *certificateService) Get(ctx context.Context, id string) (*entity.Certificate, error) {
	certificate, err := srv.certificateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, repoError(err, domainerrors.ErrCertificateNotFound, "find certificate")
	}

	return certificate, nil
}

func (srv *certificateService) Create(ctx context.Context, input *usecase.CertificateInput) (*entity.Certificate, error) {
	if strings.TrimSpace(input.StudentName) == "" || strings.TrimSpace(input.CourseName) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("studentName and courseName are required")
	}

	completedAt := input.CompletedAt
	if completedAt.IsZero() {
		completedAt = srv.now()
	}
	certificateID := strings.TrimSpace(input.CertificateID)
	if certificateID == "" {
		certificateID = newCertificateID(completedAt)
	}

	certificate := &entity.Certificate{
		CertificateID: certificateID,
		StudentName:   strings.TrimSpace(input.StudentName),
		CourseName:    strings.TrimSpace(input.CourseName),
		CompletedAt:   completedAt,
		Status:        entity.CertificateActive,
	}
	if err := srv.certificateRepo.Create(ctx, certificate); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, domainerrors.ErrConflict.WithDetails("certificate id " + certificateID + " already issued")
		}

		return nil, repoError(err, domainerrors.ErrCertificateNotFound, "create certificate")
	}

	srv.log(ctx).Info("Certificate issued", slog.String("certificate_id", certificate.CertificateID))
	srv.events.emit(ctx, resourceCertificates, service.ActionCreated, certificate.ID)

	return certificate, nil
}

func (srv *certificateService) Update(ctx context.Context, id string, patch *usecase.CertificatePatch) (*entity.Certificate, error) {
	certificate, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	setIfPresent(&certificate.StudentName, patch.StudentName)
	setIfPresent(&certificate.CourseName, patch.CourseName)
	setIfPresent(&certificate.CompletedAt, patch.CompletedAt)

	if err := srv.certificateRepo.Update(ctx, certificate); err != nil {
		return nil, repoError(err, domainerrors.ErrCertificateNotFound, "update certificate")
	}

	srv.events.emit(ctx, resourceCertificates, service.ActionUpdated, certificate.ID)

	return certificate, nil
}

func (srv *certificateService) Delete(ctx context.Context, id string) error {
	if err := srv.certificateRepo.Delete(ctx, id); err != nil {
		return repoError(err, domainerrors.ErrCertificateNotFound, "delete certificate")
	}

	srv.events.emit(ctx, resourceCertificates, service.ActionDeleted, id)

	return nil
}

func (srv *certificateService) Revoke(ctx context.Context, id string) (*entity.Certificate, error) {
	certificate, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if certificate.IsRevoked() {
		return nil, domainerrors.ErrCertificateAlreadyRevoked
	}

	revokedAt := srv.now()
	certificate.Status = entity.CertificateRevoked
	certificate.RevokedAt = &revokedAt

	if err := srv.certificateRepo.Update(ctx, certificate); err != nil {
		return nil, repoError(err, domainerrors.ErrCertificateNotFound, "revoke certificate")
	}

	srv.log(ctx).Info("Certificate revoked", slog.String("certificate_id", certificate.CertificateID))
	srv.events.emit(ctx, resourceCertificates, service.ActionUpdated, certificate.ID)

	return certificate, nil
}

func (srv *certificateService) Verify(ctx context.Context, certificateID string) (*usecase.CertificateVerification, error) {
	certificate, err := srv.certificateRepo.FindByCertificateID(ctx, strings.TrimSpace(certificateID))
	if err != nil {
		return nil, repoError(err, domainerrors.ErrCertificateNotFound, "verify certificate")
	}

	return &usecase.CertificateVerification{
		Valid:       !certificate.IsRevoked(),
		Certificate: certificate,
		Status:      certificate.Status,
	}, nil
}

func (srv *certificateService) QRCode(ctx context.Context, id string) ([]byte, error) {
	certificate, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateCertificateQR(certificate.CertificateID)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return png, nil
}

// newCertificateID builds a human-readable id such as CH-2024-1A2B3C4D.
func newCertificateID(completedAt time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])

	return "CH-" + completedAt.Format("2006") + "-" + suffix
}
