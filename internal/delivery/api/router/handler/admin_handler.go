package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"booksy/internal/delivery/api/middleware"
	"booksy/internal/delivery/api/response"
	"booksy/internal/delivery/api/validator"
	"booksy/internal/domain/entity"
	"booksy/internal/errors"
	"booksy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the back-office API.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// FlexiblePrice accepts either a JSON number or a price string such as "$1,299".
// Unparseable strings decode to 0.
type FlexiblePrice struct {
	Value float64
	Set   bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *FlexiblePrice) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var number float64
	if err := json.Unmarshal(data, &number); err == nil {
		if number < 0 {
			return errors.New("originalPrice must not be negative")
		}
		p.Value, p.Set = number, true

		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "originalPrice must be a number or a string")
	}
	p.Value, p.Set = entity.ParsePrice(raw), true

	return nil
}

// AdminLoginRequest represents the request body for admin login
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CourseRequest is the admin course payload. Every field is optional on update.
type CourseRequest struct {
	Name             string          `json:"name" validate:"max=100"`
	Title            string          `json:"title" validate:"max=200"`
	Description      string          `json:"description" validate:"max=1000"`
	Price            string          `json:"price"`
	OriginalPrice    *FlexiblePrice  `json:"originalPrice"`
	Category         string          `json:"category" validate:"omitempty,oneof=Free Fiction Technology Science Business Development Design"`
	Level            string          `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Duration         string          `json:"duration"`
	Instructor       string          `json:"instructor"`
	Image            string          `json:"image"`
	Lessons          []entity.Lesson `json:"lessons"`
	Requirements     []string        `json:"requirements"`
	LearningOutcomes []string        `json:"learningOutcomes"`
	Tags             []string        `json:"tags"`
	IsActive         *bool           `json:"isActive"`
	IsFree           *bool           `json:"isFree"`
}

// missingForCreate lists the fields a new course cannot be created without.
func (r *CourseRequest) missingForCreate() *validator.FieldErrors {
	fields := map[string]string{}
	required := map[string]string{
		"name":        r.Name,
		"title":       r.Title,
		"description": r.Description,
		"category":    r.Category,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			fields[field] = field + " is a required field"
		}
	}

	if len(fields) == 0 {
		return nil
	}

	return &validator.FieldErrors{Fields: fields}
}

func (r *CourseRequest) toInput() usecase.CourseInput {
	input := usecase.CourseInput{
		Name:             strings.TrimSpace(r.Name),
		Title:            strings.TrimSpace(r.Title),
		Description:      strings.TrimSpace(r.Description),
		Price:            strings.TrimSpace(r.Price),
		Category:         r.Category,
		Level:            r.Level,
		Duration:         r.Duration,
		Instructor:       r.Instructor,
		Image:            r.Image,
		Lessons:          r.Lessons,
		Requirements:     r.Requirements,
		LearningOutcomes: r.LearningOutcomes,
		Tags:             r.Tags,
		IsActive:         r.IsActive,
		IsFree:           r.IsFree,
	}
	if r.OriginalPrice != nil && r.OriginalPrice.Set {
		price := r.OriginalPrice.Value
		input.OriginalPrice = &price
	}

	return input
}

type dashboardResponse struct {
	TotalCourses   int64             `json:"totalCourses"`
	TotalStudents  int64             `json:"totalStudents"`
	TotalUsers     int64             `json:"totalUsers"`
	PopularCourses []*CourseResponse `json:"popularCourses"`
	RecentCourses  []*CourseResponse `json:"recentCourses"`
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(c echo.Context) error {
	var req AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	output, err := h.adminUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"token": output.Token,
		"user":  output.Admin,
	}, "Admin login successful")
}

// Verify handles GET /api/admin/verify.
func (h *AdminHandler) Verify(c echo.Context) error {
	identity, err := h.adminUC.Verify(c.Request().Context(), middleware.GetEmail(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"user": identity}, "Token is valid")
}

// ListCourses handles GET /api/admin/courses.
func (h *AdminHandler) ListCourses(c echo.Context) error {
	courses, err := h.adminUC.ListCourses(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"courses": toCourseResponses(courses)}, "Courses retrieved successfully")
}

// CreateCourse handles POST /api/admin/courses.
func (h *AdminHandler) CreateCourse(c echo.Context) error {
	var req CourseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid course input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	if missing := req.missingForCreate(); missing != nil {
		return response.ValidationFailed(c, missing)
	}

	course, err := h.adminUC.CreateCourse(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"course": toCourseResponse(course)}, "Course created successfully")
}

// UpdateCourse handles PUT /api/admin/courses/:id.
func (h *AdminHandler) UpdateCourse(c echo.Context) error {
	courseID, ok, err := courseIDParam(c)
	if !ok {
		return err
	}

	var req CourseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid course input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	course, err := h.adminUC.UpdateCourse(c.Request().Context(), courseID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"course": toCourseResponse(course)}, "Course updated successfully")
}

// DeleteCourse handles DELETE /api/admin/courses/:id.
func (h *AdminHandler) DeleteCourse(c echo.Context) error {
	courseID, ok, err := courseIDParam(c)
	if !ok {
		return err
	}

	if err := h.adminUC.DeleteCourse(c.Request().Context(), courseID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Course deleted successfully")
}

// Dashboard handles GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	output, err := h.adminUC.Dashboard(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"dashboard": dashboardResponse{
			TotalCourses:   output.Stats.TotalCourses,
			TotalStudents:  output.Stats.TotalStudents,
			TotalUsers:     output.Stats.TotalUsers,
			PopularCourses: toCourseResponses(output.PopularCourses),
			RecentCourses:  toCourseResponses(output.RecentCourses),
		},
	}, "Dashboard retrieved successfully")
}
