package repository

import "booksy/internal/errors"

// Domain-specific persistence errors. Repositories return these instead of driver errors.
var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrAlreadyEnrolled    = errors.New("enrollment already exists")
)
