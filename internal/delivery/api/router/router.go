// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"booksy/internal/delivery/api/middleware"
	"booksy/internal/delivery/api/router/handler"
	"booksy/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler     *handler.HealthHandler
	AuthHandler       *handler.AuthHandler
	CourseHandler     *handler.CourseHandler
	EnrollmentHandler *handler.EnrollmentHandler
	AdminHandler      *handler.AdminHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler     *handler.HealthHandler
	authHandler       *handler.AuthHandler
	courseHandler     *handler.CourseHandler
	enrollmentHandler *handler.EnrollmentHandler
	adminHandler      *handler.AdminHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:     params.HealthHandler,
		authHandler:       params.AuthHandler,
		courseHandler:     params.CourseHandler,
		enrollmentHandler: params.EnrollmentHandler,
		adminHandler:      params.AdminHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoints
	e.GET("/health", r.healthHandler.HealthCheck)
	e.GET("/api/health", r.healthHandler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
		authGroup.PUT("/profile", r.authHandler.UpdateProfile, r.authMiddleware.Authenticate)
	}

	// Public catalog routes. Echo matches static segments before :id.
	coursesGroup := api.Group("/courses")
	{
		coursesGroup.GET("", r.courseHandler.ListCourses)
		coursesGroup.GET("/featured", r.courseHandler.FeaturedCourses)
		coursesGroup.GET("/free", r.courseHandler.FreeCourses)
		coursesGroup.GET("/search/suggestions", r.courseHandler.SearchSuggestions)
		coursesGroup.GET("/categories/all", r.courseHandler.Categories)
		coursesGroup.GET("/:id", r.courseHandler.GetCourse)
		coursesGroup.GET("/:id/qrcode", r.courseHandler.CourseQRCode)
	}

	// Learner routes that require authentication
	learnerGroup := api.Group("/courses")
	learnerGroup.Use(r.authMiddleware.Authenticate)
	{
		learnerGroup.GET("/my-courses/enrolled", r.enrollmentHandler.MyCourses)
		learnerGroup.POST("/:id/enroll", r.enrollmentHandler.Enroll)
		learnerGroup.DELETE("/:id/enroll", r.enrollmentHandler.Unenroll)
		learnerGroup.PUT("/:id/progress", r.enrollmentHandler.UpdateProgress)
		learnerGroup.GET("/:id/progress", r.enrollmentHandler.GetProgress)
		learnerGroup.POST("/:id/rate", r.enrollmentHandler.Rate)
	}

	api.POST("/admin/login", r.adminHandler.Login)

	// Admin routes that require authentication and the "admin" role
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)                  // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin)) // Then, check for the role
	{
		adminGroup.GET("/verify", r.adminHandler.Verify)
		adminGroup.GET("/courses", r.adminHandler.ListCourses)
		adminGroup.POST("/courses", r.adminHandler.CreateCourse)
		adminGroup.PUT("/courses/:id", r.adminHandler.UpdateCourse)
		adminGroup.DELETE("/courses/:id", r.adminHandler.DeleteCourse)
		adminGroup.GET("/dashboard", r.adminHandler.Dashboard)
	}
}
