package qrcode

import (
	"cmp"
	"encoding/json"
	"strings"

	"creativehub/config"
	"creativehub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	certificateQR  = "certificate"
	verifyPathStem = "/api/certificates/verify/"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	verifyBaseURL        string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	CertificateID string `json:"certificate_id"`
	Type          string `json:"type"`
	VerifyURL     string `json:"verify_url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance from the qrcode section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qc := config.QRCodeConfig{}
	if cfg != nil && cfg.QRCode != nil {
		qc = *cfg.QRCode
	}

	return newQRCodeService(qc.Size, qc.ErrorCorrectionLevel, qc.VerifyBaseURL)
}

var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

func newQRCodeService(size int, errorCorrectionLevel, verifyBaseURL string) *qrcodeService {
	level, ok := recoveryLevels[strings.ToUpper(errorCorrectionLevel)]
	if !ok {
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 cmp.Or(max(size, 0), defaultSize),
		errorCorrectionLevel: level,
		verifyBaseURL:        strings.TrimRight(verifyBaseURL, "/"),
	}
}

// GenerateCertificateQR generates a PNG QR code pointing at the public verification endpoint.
func (s *qrcodeService) GenerateCertificateQR(certificateID string) ([]byte, error) {
	if strings.TrimSpace(certificateID) == "" {
		return nil, errors.New("certificate id is required")
	}

	data := QRCodeData{
		CertificateID: certificateID,
		Type:          certificateQR,
	}
	if s.verifyBaseURL != "" {
		data.VerifyURL = s.verifyBaseURL + verifyPathStem + certificateID
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "encode certificate payload")
	}

	png, err := qrcode.Encode(string(payload), s.errorCorrectionLevel, s.size)

	return png, errors.Wrap(err, "render certificate QR")
}

// ParseCertificateQR parses scanned QR payload text and returns the certificate id.
func (s *qrcodeService) ParseCertificateQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != certificateQR {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if strings.TrimSpace(data.CertificateID) == "" {
		return "", errors.New("QR code carries no certificate id")
	}

	return data.CertificateID, nil
}
