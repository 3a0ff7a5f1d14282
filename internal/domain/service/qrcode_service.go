package service

// QRCodeService renders and reads certificate verification QR codes.
type QRCodeService interface {
	// GenerateCertificateQR returns a PNG encoding the public verification link.
	GenerateCertificateQR(certificateID string) ([]byte, error)

	// ParseCertificateQR extracts the certificate id from scanned QR payload text.
	ParseCertificateQR(qrData string) (string, error)
}
