package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"booksy/internal/delivery/api/response"
	domainerrors "booksy/internal/domain/errors"
	"booksy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CourseHandlerParams holds dependencies for CourseHandler, injected by Fx.
type CourseHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CourseHandler serves the public catalog.
type CourseHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCourseHandler is the constructor for CourseHandler
func NewCourseHandler(params CourseHandlerParams) *CourseHandler {
	return &CourseHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

type courseListResponse struct {
	Courses     []*CourseResponse      `json:"courses"`
	TotalPages  int                    `json:"totalPages"`
	CurrentPage int                    `json:"currentPage"`
	Total       int64                  `json:"total"`
	Filters     usecase.CatalogFilters `json:"filters"`
}

// ListCourses handles GET /api/courses.
func (h *CourseHandler) ListCourses(c echo.Context) error {
	input, err := parseListQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.catalogUC.ListCourses(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, courseListResponse{
		Courses:     toCourseResponses(output.Courses),
		TotalPages:  output.TotalPages,
		CurrentPage: output.CurrentPage,
		Total:       output.Total,
		Filters:     output.Filters,
	}, "Courses retrieved successfully")
}

// FeaturedCourses handles GET /api/courses/featured.
func (h *CourseHandler) FeaturedCourses(c echo.Context) error {
	courses, err := h.catalogUC.FeaturedCourses(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"courses": toCourseResponses(courses)}, "Featured courses retrieved successfully")
}

// FreeCourses handles GET /api/courses/free.
func (h *CourseHandler) FreeCourses(c echo.Context) error {
	courses, err := h.catalogUC.FreeCourses(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"courses": toCourseResponses(courses)}, "Free courses retrieved successfully")
}

// SearchSuggestions handles GET /api/courses/search/suggestions?q=.
func (h *CourseHandler) SearchSuggestions(c echo.Context) error {
	courses, err := h.catalogUC.SearchSuggestions(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"suggestions": toSuggestions(courses)}, "Suggestions retrieved successfully")
}

// Categories handles GET /api/courses/categories/all.
func (h *CourseHandler) Categories(c echo.Context) error {
	categories, err := h.catalogUC.Categories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"categories": categories}, "Categories retrieved successfully")
}

// GetCourse handles GET /api/courses/:id.
func (h *CourseHandler) GetCourse(c echo.Context) error {
	courseID, ok, err := courseIDParam(c)
	if !ok {
		return err
	}

	output, err := h.catalogUC.GetCourse(c.Request().Context(), courseID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"course":         toCourseResponse(output.Course),
		"relatedCourses": toCourseResponses(output.Related),
	}, "Course retrieved successfully")
}

// CourseQRCode handles GET /api/courses/:id/qrcode and returns a PNG.
func (h *CourseHandler) CourseQRCode(c echo.Context) error {
	courseID, ok, err := courseIDParam(c)
	if !ok {
		return err
	}

	png, err := h.catalogUC.CourseQRCode(c.Request().Context(), courseID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}

func parseListQuery(c echo.Context) (usecase.ListCoursesInput, error) {
	input := usecase.ListCoursesInput{
		Category:  c.QueryParam("category"),
		Search:    c.QueryParam("search"),
		Level:     c.QueryParam("level"),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: strings.ToLower(c.QueryParam("sortOrder")),
	}

	var err error
	if input.Page, err = intQuery(c, "page"); err != nil {
		return input, err
	}
	if input.Limit, err = intQuery(c, "limit"); err != nil {
		return input, err
	}
	if input.MinPrice, err = floatQuery(c, "minPrice"); err != nil {
		return input, err
	}
	if input.MaxPrice, err = floatQuery(c, "maxPrice"); err != nil {
		return input, err
	}

	if raw := c.QueryParam("isFree"); raw != "" {
		free, parseErr := strconv.ParseBool(raw)
		if parseErr != nil {
			return input, domainerrors.ErrValidationFailed.WithDetails("isFree must be a boolean")
		}
		input.FreeOnly = free
	}

	return input, nil
}

func intQuery(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be an integer")
	}

	return value, nil
}

func floatQuery(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a non-negative number")
	}

	return &value, nil
}
