package middleware

import (
	"log/slog"
	"net/http"

	"booksy/internal/delivery/api/response"
	deliverycontext "booksy/internal/delivery/context"
	domainerrors "booksy/internal/domain/errors"
	"booksy/internal/domain/service"
	"booksy/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger   *slog.Logger
	reporter service.ErrorReporter
}

// ErrorMiddlewareParams holds dependencies for ErrorMiddleware, injected by Fx.
type ErrorMiddlewareParams struct {
	fx.In

	Logger   *slog.Logger
	Reporter service.ErrorReporter
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(params ErrorMiddlewareParams) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:   params.Logger,
		reporter: params.Reporter,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.report(c, err)
		}

		// Internal details are never exposed for 5xx errors
		var details any
		if appErr.Details() != "" {
			details = appErr.Details()
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		code, message := httpErrorCode(httpErr)
		if httpErr.Code >= http.StatusInternalServerError {
			m.report(c, err)
		}
		_ = response.Error(c, httpErr.Code, code, message, nil)

		return
	}

	m.report(c, err)

	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), "Internal server error, please try again later")
}

func (m *ErrorMiddleware) report(c echo.Context, err error) {
	req := c.Request()
	requestID := deliverycontext.GetRequestID(c)

	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", req.URL.Path),
		slog.String("method", req.Method),
	)

	fields := map[string]any{
		"request_id": requestID,
		"method":     req.Method,
		"path":       c.Path(),
	}
	if userID, ok := deliverycontext.GetUserIDFromContext(req.Context()); ok {
		fields["user_id"] = userID.String()
	}

	m.reporter.Report(req.Context(), err, fields)
}

func httpErrorCode(httpErr *echo.HTTPError) (code, message string) {
	message = http.StatusText(httpErr.Code)
	if msg, ok := httpErr.Message.(string); ok {
		message = msg
	}

	switch httpErr.Code {
	case http.StatusNotFound:
		return domainerrors.ErrNotFound.ErrorCode(), "Route not found"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE", message
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED", message
	default:
		return "HTTP_ERROR", message
	}
}
