package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"booksy/internal/delivery/api/response"
	"booksy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EnrollmentHandlerParams holds dependencies for EnrollmentHandler, injected by Fx.
type EnrollmentHandlerParams struct {
	fx.In

	EnrollmentUC usecase.EnrollmentUsecase
	Logger       *slog.Logger
}

// EnrollmentHandler serves enrollment, progress and rating endpoints for the signed-in learner.
type EnrollmentHandler struct {
	enrollmentUC usecase.EnrollmentUsecase
	logger       *slog.Logger
}

// NewEnrollmentHandler is the constructor for EnrollmentHandler
func NewEnrollmentHandler(params EnrollmentHandlerParams) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentUC: params.EnrollmentUC,
		logger:       params.Logger,
	}
}

// UpdateProgressRequest represents the request body for a progress report.
// Progress is a pointer so that 0 is distinguishable from a missing field.
type UpdateProgressRequest struct {
	Progress  *int  `json:"progress" validate:"required"`
	Completed *bool `json:"completed"`
}

// RateRequest represents the request body for rating a course.
type RateRequest struct {
	Rating *int   `json:"rating" validate:"required"`
	Review string `json:"review" validate:"max=1000"`
}

type enrollmentSummary struct {
	CourseID   uuid.UUID `json:"courseId"`
	CourseName string    `json:"courseName"`
	EnrolledAt time.Time `json:"enrolledAt"`
	Progress   int       `json:"progress"`
}

type ratingResponse struct {
	Average    float64 `json:"average"`
	Count      int     `json:"count"`
	UserRating int     `json:"userRating"`
}

// Enroll handles POST /api/courses/:id/enroll.
func (h *EnrollmentHandler) Enroll(c echo.Context) error {
	userID, ok, err := currentUserID(c)
	if !ok {
		return err
	}

	courseID, ok, err := courseIDParam(c)
	if !ok {
		return err
	}

	output, err := h.enrollmentUC.Enroll(c.Request().Context(), userID, courseID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"enrollment": enrollmentSummary{
			CourseID:   output.CourseID,
			CourseName: output.CourseName,
			EnrolledAt: output.EnrolledAt,
			Progress:   output.Progress,
		},
	}, "Successfully enrolled in "+strconv.Quote(output.CourseName))
}

// Unenroll handles DELETE /api/courses/:id/enroll.
func (h *EnrollmentHandler) Unenroll(c echo.Context) error {
	userID, ok, err := currentUserID(c)
	if !ok {
		return err
	}

	courseID, ok, err := courseIDParam(c)
	if !ok {
		return err
	}

	courseName, err := h.enrollmentUC.Unenroll(c.Request().Context(), userID, courseID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if courseName == "" {
		courseName = "the course"
	}

	return response.Success(c, http.StatusOK, nil, "Successfully unenrolled from "+strconv.Quote(courseName))
}

// UpdateProgress handles PUT /api/courses/:id/progress.
func (h *EnrollmentHandler) UpdateProgress(c echo.Context) error {
	userID, ok, err := currentUserID(c)
	if !ok {
		return err
	}

	courseID, ok, err := courseIDParam(c)
	if !ok {
		return err
	}

	var req UpdateProgressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid progress input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	enrollment, err := h.enrollmentUC.UpdateProgress(c.Request().Context(), userID, courseID, usecase.UpdateProgressInput{
		Progress:  *req.Progress,
		Completed: req.Completed,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"enrollment": toProgressResponse(enrollment),
	}, "Progress updated successfully")
}

// GetProgress handles GET /api/courses/:id/progress.
func (h *EnrollmentHandler) GetProgress(c echo.Context) error {
	userID, ok, err := currentUserID(c)
	if !ok {
		return err
	}

	courseID, ok, err := courseIDParam(c)
	if !ok {
		return err
	}

	enrollment, err := h.enrollmentUC.GetProgress(c.Request().Context(), userID, courseID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"enrollment": toProgressResponse(enrollment),
	}, "Progress retrieved successfully")
}

// MyCourses handles GET /api/courses/my-courses/enrolled.
func (h *EnrollmentHandler) MyCourses(c echo.Context) error {
	userID, ok, err := currentUserID(c)
	if !ok {
		return err
	}

	output, err := h.enrollmentUC.ListEnrolled(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"enrolledCourses": toEnrolledCourses(output.Courses),
		"statistics":      output.Stats,
	}, "Enrolled courses retrieved successfully")
}

// Rate handles POST /api/courses/:id/rate.
func (h *EnrollmentHandler) Rate(c echo.Context) error {
	userID, ok, err := currentUserID(c)
	if !ok {
		return err
	}

	courseID, ok, err := courseIDParam(c)
	if !ok {
		return err
	}

	var req RateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid rating input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	output, err := h.enrollmentUC.Rate(c.Request().Context(), userID, courseID, usecase.RateInput{
		Rating: *req.Rating,
		Review: req.Review,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"rating": ratingResponse{
			Average:    output.AverageRating,
			Count:      output.TotalRatings,
			UserRating: *req.Rating,
		},
	}, "Rating submitted successfully")
}
