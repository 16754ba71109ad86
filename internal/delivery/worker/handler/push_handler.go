package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"booksy/config"
	deliverycontext "booksy/internal/delivery/context"
	"booksy/internal/domain/constants"
	"booksy/internal/domain/repository"
	"booksy/internal/domain/service"
	"booksy/internal/errors"
	"booksy/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PushHandler handles Pub/Sub push messages carrying enrollment events
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	userRepo       repository.UserRepository
	courseRepo     repository.CourseRepository
	email          service.EmailService
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	UserRepo   repository.UserRepository
	CourseRepo repository.CourseRepository
	Email      service.EmailService
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google signs push requests with an OIDC token; the local emulator does not.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		userRepo:       params.UserRepo,
		courseRepo:     params.CourseRepo,
		email:          params.Email,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pubsub.DecodeEnrollmentEvent(&pushMsg)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode enrollment event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing enrollment event",
		slog.String("event_id", event.EventID),
		slog.String("user_id", event.UserID),
		slog.String("course_id", event.CourseID),
	)

	if err := h.processEnrollment(ctx, event); err != nil {
		reqLogger.Error("[Worker] Failed to process enrollment event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", errors.IsTransient(err)),
		)
		// 503 asks Pub/Sub to redeliver; 200 drops a message that can never succeed.
		if errors.IsTransient(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Enrollment event processed successfully",
		slog.String("event_id", event.EventID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.EnrollmentEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	// Set by RequestIDMiddleware from the X-Request-Id header
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processEnrollment sends the enrollment confirmation email.
func (h *PushHandler) processEnrollment(ctx context.Context, event *service.EnrollmentEvent) error {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.Wrap(err, "invalid user id")
	}

	courseID, err := uuid.Parse(event.CourseID)
	if err != nil {
		return errors.Wrap(err, "invalid course id")
	}

	user, err := h.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "enrolled user no longer exists")
		}

		return errors.Transient(errors.WithStack(err))
	}

	courseName := event.CourseName
	course, err := h.courseRepo.FindByID(ctx, courseID)
	switch {
	case err == nil:
		courseName = course.Name
	case errors.Is(err, repository.ErrCourseNotFound):
		return errors.Wrap(err, "enrolled course no longer exists")
	default:
		return errors.Transient(errors.WithStack(err))
	}

	if err := h.email.SendEnrollmentConfirmation(ctx, user.Name, user.Email, courseName); err != nil {
		return errors.Transient(errors.Wrap(err, "failed to send enrollment confirmation"))
	}

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
