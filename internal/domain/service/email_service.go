package service

import "context"

// EmailService sends transactional emails to learners.
type EmailService interface {
	SendWelcome(ctx context.Context, toName, toEmail string) error
	SendEnrollmentConfirmation(ctx context.Context, toName, toEmail, courseName string) error
}
