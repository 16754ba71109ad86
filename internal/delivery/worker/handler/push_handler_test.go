package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"booksy/config"
	"booksy/internal/domain/entity"
	"booksy/internal/domain/repository"
	"booksy/internal/domain/service"
	"booksy/internal/errors"
	"booksy/internal/infra/pubsub"
	mockRepo "booksy/internal/mocks/repository"
	mockSvc "booksy/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushFixture struct {
	handler    *PushHandler
	userRepo   *mockRepo.MockUserRepository
	courseRepo *mockRepo.MockCourseRepository
	email      *mockSvc.MockEmailService
	user       *entity.User
	course     *entity.Course
}

func newPushFixture(t *testing.T) *pushFixture {
	t.Helper()

	f := &pushFixture{
		userRepo:   mockRepo.NewMockUserRepository(t),
		courseRepo: mockRepo.NewMockCourseRepository(t),
		email:      mockSvc.NewMockEmailService(t),
		user:       &entity.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com"},
		course:     &entity.Course{ID: uuid.New(), Name: "Go Basics"},
	}

	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "local"}}
	f.handler = NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		UserRepo:   f.userRepo,
		CourseRepo: f.courseRepo,
		Email:      f.email,
	})

	return f
}

func (f *pushFixture) push(t *testing.T, event *service.EnrollmentEvent) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "1"
	msg.Subscription = pubsub.LocalSubscription
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return f.pushRaw(t, string(body))
}

func (f *pushFixture) pushRaw(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, f.handler.HandlePush(echo.New().NewContext(req, rec)))

	return rec
}

func (f *pushFixture) event() *service.EnrollmentEvent {
	return &service.EnrollmentEvent{
		EventID:    uuid.NewString(),
		UserID:     f.user.ID.String(),
		CourseID:   f.course.ID.String(),
		CourseName: "Old Name",
	}
}

func TestPushHandler_SendsConfirmation(t *testing.T) {
	f := newPushFixture(t)
	f.userRepo.EXPECT().FindByID(mock.Anything, f.user.ID).Return(f.user, nil)
	f.courseRepo.EXPECT().FindByID(mock.Anything, f.course.ID).Return(f.course, nil)
	f.email.EXPECT().SendEnrollmentConfirmation(mock.Anything, "Ada", "ada@example.com", "Go Basics").Return(nil)

	rec := f.push(t, f.event())

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_EmailFailureIsRetried(t *testing.T) {
	f := newPushFixture(t)
	f.userRepo.EXPECT().FindByID(mock.Anything, f.user.ID).Return(f.user, nil)
	f.courseRepo.EXPECT().FindByID(mock.Anything, f.course.ID).Return(f.course, nil)
	f.email.EXPECT().SendEnrollmentConfirmation(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("sendgrid: 500"))

	rec := f.push(t, f.event())

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_DatabaseFailureIsRetried(t *testing.T) {
	f := newPushFixture(t)
	f.userRepo.EXPECT().FindByID(mock.Anything, f.user.ID).Return(nil, errors.New("connection refused"))

	rec := f.push(t, f.event())

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_DeletedRecordsAreAcknowledged(t *testing.T) {
	t.Run("user", func(t *testing.T) {
		f := newPushFixture(t)
		f.userRepo.EXPECT().FindByID(mock.Anything, f.user.ID).Return(nil, repository.ErrUserNotFound)

		assert.Equal(t, http.StatusOK, f.push(t, f.event()).Code)
	})

	t.Run("course", func(t *testing.T) {
		f := newPushFixture(t)
		f.userRepo.EXPECT().FindByID(mock.Anything, f.user.ID).Return(f.user, nil)
		f.courseRepo.EXPECT().FindByID(mock.Anything, f.course.ID).Return(nil, repository.ErrCourseNotFound)

		assert.Equal(t, http.StatusOK, f.push(t, f.event()).Code)
	})
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	f := newPushFixture(t)

	t.Run("not base64", func(t *testing.T) {
		rec := f.pushRaw(t, `{"message":{"data":"%%%"}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid ids are acknowledged", func(t *testing.T) {
		event := f.event()
		event.UserID = "nope"

		assert.Equal(t, http.StatusOK, f.push(t, event).Code)
	})
}
