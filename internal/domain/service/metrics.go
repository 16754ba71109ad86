package service

// Metrics records business counters for the enrollment core and accounts.
type Metrics interface {
	EnrollmentCreated(category string)
	EnrollmentRemoved()
	CourseRated(rating int)
	UserRegistered()
}
