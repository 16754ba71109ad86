package handler

import (
	"booksy/internal/delivery/api/middleware"
	"booksy/internal/delivery/api/response"
	domainerrors "booksy/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// courseIDParam parses the :id path parameter. On failure the 400 response has already been written.
func courseIDParam(c echo.Context) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false, response.InvalidID(c, "Invalid course ID")
	}

	return id, true, nil
}

// currentUserID returns the authenticated user. On failure the 401 response has already been written.
func currentUserID(c echo.Context) (uuid.UUID, bool, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, false, response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), domainerrors.ErrTokenInvalid.Message())
	}

	return userID, true, nil
}
