package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"budgetbuddy/internal/errors"
	"budgetbuddy/internal/model"
	"budgetbuddy/internal/service"
)

// CategoryHandler handles category CRUD endpoints.
type CategoryHandler struct {
	categoryService service.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategoryRequest represents a new category.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Type string `json:"type" validate:"required,oneof=income expense"`
}

// UpdateCategoryRequest represents a partial category update.
type UpdateCategoryRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Type *string `json:"type,omitempty" validate:"omitempty,oneof=income expense"`
}

func categoryID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid category id",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}

// ListCategories godoc
// @Summary List all categories
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Category
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, categories)
}

// CreateCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCategoryRequest true "Category data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	category, err := h.categoryService.Create(c.Request().Context(), req.Name, model.CategoryType(req.Type))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":  "category created",
		"category": category,
	})
}

// GetCategory godoc
// @Summary Get a category by id
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} model.Category
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, err := categoryID(c)
	if err != nil {
		return err
	}

	category, err := h.categoryService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, category)
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body UpdateCategoryRequest true "Category fields"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := categoryID(c)
	if err != nil {
		return err
	}

	var req UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	var categoryType *model.CategoryType
	if req.Type != nil {
		t := model.CategoryType(*req.Type)
		categoryType = &t
	}

	category, err := h.categoryService.Update(c.Request().Context(), id, req.Name, categoryType)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "category updated",
		"category": category,
	})
}

// DeleteCategory godoc
// @Summary Delete a category
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := categoryID(c)
	if err != nil {
		return err
	}

	if err := h.categoryService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "category deleted"})
}
