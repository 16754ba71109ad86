package handler

import (
	"log/slog"
	"net/http"

	"booksy/internal/delivery/api/response"
	"booksy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// AuthHandler serves learner registration, login and profile endpoints.
type AuthHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"notblank,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest represents the request body for a profile update. Omitted fields are unchanged.
type UpdateProfileRequest struct {
	Name   *string `json:"name" validate:"omitempty,notblank,max=50"`
	Avatar *string `json:"avatar" validate:"omitempty,max=2048"`
	Bio    *string `json:"bio" validate:"omitempty,max=500"`
	Phone  *string `json:"phone" validate:"omitempty,max=32"`
}

type authResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	output, err := h.userUC.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, authResponse{
		User:  toUserResponse(output.User),
		Token: output.AccessToken,
	}, "User registered successfully")
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	output, err := h.userUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, authResponse{
		User:  toUserResponse(output.User),
		Token: output.AccessToken,
	}, "Login successful")
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok, err := currentUserID(c)
	if !ok {
		return err
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"user": toUserResponse(user)}, "Profile retrieved successfully")
}

// UpdateProfile handles PUT /api/auth/profile.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	userID, ok, err := currentUserID(c)
	if !ok {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, usecase.UpdateProfileInput{
		Name:   req.Name,
		Avatar: req.Avatar,
		Bio:    req.Bio,
		Phone:  req.Phone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"user": toUserResponse(user)}, "Profile updated successfully")
}
