package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"budgetbuddy/internal/errors"
	"budgetbuddy/internal/model"
	"budgetbuddy/internal/service"
)

// UserHandler handles user management endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateProfileRequest represents a partial profile update.
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

// ListUsers godoc
// @Summary List all users (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /users/update [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), claims.UserID, service.UpdateProfileInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "profile updated successfully",
		"user":    user,
	})
}

// DeleteUser godoc
// @Summary Delete own account, or another user's when admin
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int false "User ID (admin only)"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/delete/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	targetID := claims.UserID
	message := "account deleted successfully"

	// Admins may delete another user by id; everyone else deletes themselves.
	if idParam := c.Param("id"); idParam != "" {
		if claims.Role != model.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
				Error: "insufficient permissions",
				Code:  "FORBIDDEN",
			})
		}
		id, err := strconv.Atoi(idParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid user id",
				Code:  "INVALID_ID",
			})
		}
		targetID = uint(id)
		message = "user deleted by admin"
	}

	if err := h.userService.Delete(c.Request().Context(), targetID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{"message": message})
}

func (h *UserHandler) setStatus(c echo.Context, status, message string) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid user id",
			Code:  "INVALID_ID",
		})
	}

	user, err := h.userService.SetStatus(c.Request().Context(), uint(id), status)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": message,
		"user":    user,
	})
}

// MuteUser godoc
// @Summary Mute a user (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/mute [post]
func (h *UserHandler) MuteUser(c echo.Context) error {
	return h.setStatus(c, model.StatusMuted, "user muted successfully")
}

// BanUser godoc
// @Summary Ban a user (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/ban [post]
func (h *UserHandler) BanUser(c echo.Context) error {
	return h.setStatus(c, model.StatusBanned, "user banned successfully")
}

// ActivateUser godoc
// @Summary Activate a user (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/activate [post]
func (h *UserHandler) ActivateUser(c echo.Context) error {
	return h.setStatus(c, model.StatusActive, "user activated successfully")
}
