package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for course share QR codes
type QRCodeService interface {
	// GenerateCourseQR renders a PNG QR code pointing at the course page
	GenerateCourseQR(courseID uuid.UUID) ([]byte, error)

	// CourseURL returns the public URL encoded in the course QR code
	CourseURL(courseID uuid.UUID) string
}
