package entity

import "time"

// CertificateStatus only ever moves from active to revoked.
type CertificateStatus string

const (
	CertificateActive  CertificateStatus = "active"
	CertificateRevoked CertificateStatus = "revoked"
)

// Certificate proves completion of a course by a student.
type Certificate struct {
	ID            string            `json:"_id"`
	CertificateID string            `json:"certificateId"`
	StudentName   string            `json:"studentName"`
	CourseName    string            `json:"courseName"`
	CompletedAt   time.Time         `json:"completedAt"`
	Status        CertificateStatus `json:"status"`
	RevokedAt     *time.Time        `json:"revokedAt"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// IsRevoked reports whether the certificate has been withdrawn.
func (c *Certificate) IsRevoked() bool {
	return c.Status == CertificateRevoked
}
