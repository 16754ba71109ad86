package handler

import (
	"net/http"
	"testing"
	"time"

	"booksy/internal/domain/entity"
	domainerrors "booksy/internal/domain/errors"
	mockUC "booksy/internal/mocks/usecase"
	"booksy/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type enrollmentFixture struct {
	handler      *EnrollmentHandler
	enrollmentUC *mockUC.MockEnrollmentUsecase
	userID       uuid.UUID
	courseID     uuid.UUID
}

func newEnrollmentFixture(t *testing.T) *enrollmentFixture {
	t.Helper()

	enrollmentUC := mockUC.NewMockEnrollmentUsecase(t)

	return &enrollmentFixture{
		handler:      NewEnrollmentHandler(EnrollmentHandlerParams{EnrollmentUC: enrollmentUC}),
		enrollmentUC: enrollmentUC,
		userID:       uuid.New(),
		courseID:     uuid.New(),
	}
}

func (f *enrollmentFixture) request(method, body string) testRequest {
	return testRequest{
		method: method,
		target: "/api/courses/" + f.courseID.String(),
		body:   body,
		id:     f.courseID.String(),
		userID: f.userID,
		roles:  []string{"user"},
	}
}

func TestEnrollmentHandler_Enroll(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.enrollmentUC.EXPECT().Enroll(mock.Anything, f.userID, f.courseID).Return(&usecase.EnrollOutput{
		CourseID:   f.courseID,
		CourseName: "Go Basics",
		EnrolledAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}, nil)

	rec, err := perform(t, f.handler.Enroll, f.request(http.MethodPost, ""))
	requireStatus(t, rec, err, http.StatusOK)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, `Successfully enrolled in "Go Basics"`, env.Message)

	var data struct {
		Enrollment struct {
			CourseID   uuid.UUID `json:"courseId"`
			CourseName string    `json:"courseName"`
			Progress   int       `json:"progress"`
		} `json:"enrollment"`
	}
	decodeData(t, env, &data)
	assert.Equal(t, f.courseID, data.Enrollment.CourseID)
	assert.Equal(t, 0, data.Enrollment.Progress)
}

func TestEnrollmentHandler_Enroll_AlreadyEnrolled(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.enrollmentUC.EXPECT().Enroll(mock.Anything, f.userID, f.courseID).Return(nil, domainerrors.ErrAlreadyEnrolled)

	rec, err := perform(t, f.handler.Enroll, f.request(http.MethodPost, ""))
	requireStatus(t, rec, err, http.StatusBadRequest)
	assert.Equal(t, "ALREADY_ENROLLED", decodeEnvelope(t, rec).Error.Code)
}

func TestEnrollmentHandler_Enroll_Unauthenticated(t *testing.T) {
	f := newEnrollmentFixture(t)
	req := f.request(http.MethodPost, "")
	req.userID = uuid.Nil

	rec, err := perform(t, f.handler.Enroll, req)
	requireStatus(t, rec, err, http.StatusUnauthorized)
	assert.Equal(t, "TOKEN_INVALID", decodeEnvelope(t, rec).Error.Code)
}

func TestEnrollmentHandler_Unenroll_DeletedCourse(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.enrollmentUC.EXPECT().Unenroll(mock.Anything, f.userID, f.courseID).Return("", nil)

	rec, err := perform(t, f.handler.Unenroll, f.request(http.MethodDelete, ""))
	requireStatus(t, rec, err, http.StatusOK)
	assert.Equal(t, `Successfully unenrolled from "the course"`, decodeEnvelope(t, rec).Message)
}

func TestEnrollmentHandler_UpdateProgress(t *testing.T) {
	t.Run("zero progress is accepted", func(t *testing.T) {
		f := newEnrollmentFixture(t)
		f.enrollmentUC.EXPECT().
			UpdateProgress(mock.Anything, f.userID, f.courseID, mock.MatchedBy(func(input usecase.UpdateProgressInput) bool {
				return input.Progress == 0 && input.Completed != nil && !*input.Completed
			})).
			Return(&entity.Enrollment{CourseID: f.courseID, Progress: 0}, nil)

		rec, err := perform(t, f.handler.UpdateProgress, f.request(http.MethodPut, `{"progress":0,"completed":false}`))
		requireStatus(t, rec, err, http.StatusOK)
		assert.Equal(t, "Progress updated successfully", decodeEnvelope(t, rec).Message)
	})

	t.Run("missing progress", func(t *testing.T) {
		f := newEnrollmentFixture(t)

		rec, err := perform(t, f.handler.UpdateProgress, f.request(http.MethodPut, `{"completed":true}`))
		requireStatus(t, rec, err, http.StatusBadRequest)

		env := decodeEnvelope(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "progress")
	})

	t.Run("out of range", func(t *testing.T) {
		f := newEnrollmentFixture(t)
		f.enrollmentUC.EXPECT().
			UpdateProgress(mock.Anything, f.userID, f.courseID, mock.Anything).
			Return(nil, domainerrors.ErrInvalidProgress)

		rec, err := perform(t, f.handler.UpdateProgress, f.request(http.MethodPut, `{"progress":150}`))
		requireStatus(t, rec, err, http.StatusBadRequest)
		assert.Equal(t, "INVALID_PROGRESS", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestEnrollmentHandler_MyCourses(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.enrollmentUC.EXPECT().ListEnrolled(mock.Anything, f.userID).Return(&usecase.EnrolledCoursesOutput{
		Courses: []*usecase.EnrolledCourse{
			{Enrollment: &entity.Enrollment{CourseID: f.courseID, Progress: 40}, Course: &entity.Course{ID: f.courseID, Name: "Go"}},
			{Enrollment: &entity.Enrollment{CourseID: uuid.New(), Progress: 100, Completed: true}},
		},
		Stats: entity.EnrollmentStats{TotalCourses: 2, CompletedCourses: 1, InProgressCourses: 1, AverageProgress: 70},
	}, nil)

	rec, err := perform(t, f.handler.MyCourses, f.request(http.MethodGet, ""))
	requireStatus(t, rec, err, http.StatusOK)

	var data struct {
		EnrolledCourses []EnrolledCourseResponse `json:"enrolledCourses"`
		Statistics      entity.EnrollmentStats   `json:"statistics"`
	}
	decodeData(t, decodeEnvelope(t, rec), &data)

	require.Len(t, data.EnrolledCourses, 2)
	assert.Equal(t, "Go", data.EnrolledCourses[0].Course.Name)
	assert.Nil(t, data.EnrolledCourses[1].Course)
	assert.Equal(t, 70, data.Statistics.AverageProgress)
}

func TestEnrollmentHandler_Rate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newEnrollmentFixture(t)
		f.enrollmentUC.EXPECT().
			Rate(mock.Anything, f.userID, f.courseID, usecase.RateInput{Rating: 5, Review: "great"}).
			Return(&usecase.RatingOutput{AverageRating: 4.3, TotalRatings: 3}, nil)

		rec, err := perform(t, f.handler.Rate, f.request(http.MethodPost, `{"rating":5,"review":"great"}`))
		requireStatus(t, rec, err, http.StatusOK)

		var data struct {
			Rating ratingResponse `json:"rating"`
		}
		decodeData(t, decodeEnvelope(t, rec), &data)
		assert.Equal(t, ratingResponse{Average: 4.3, Count: 3, UserRating: 5}, data.Rating)
	})

	t.Run("not enrolled", func(t *testing.T) {
		f := newEnrollmentFixture(t)
		f.enrollmentUC.EXPECT().
			Rate(mock.Anything, f.userID, f.courseID, mock.Anything).
			Return(nil, domainerrors.ErrNotEnrolledToRate)

		rec, err := perform(t, f.handler.Rate, f.request(http.MethodPost, `{"rating":4}`))
		requireStatus(t, rec, err, http.StatusForbidden)

		env := decodeEnvelope(t, rec)
		assert.Equal(t, "NOT_ENROLLED_TO_RATE", env.Error.Code)
		assert.Nil(t, env.Error.Details)
	})
}
