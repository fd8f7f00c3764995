package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/amribrahim/goshop/internal/service"
)

type CategoryHandler struct {
	Svc *service.CategoryService
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var req service.CategoryInput
	if err := c.Bind(&req); err != nil {
		return respondError(c, service.E(service.ErrValidation, "invalid body"))
	}

	category, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusCreated, "Category created successfully", category)
}

func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Categories fetched successfully", categories)
}

func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	category, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Category fetched successfully", category)
}

func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req service.CategoryInput
	if err := c.Bind(&req); err != nil {
		return respondError(c, service.E(service.ErrValidation, "invalid body"))
	}

	category, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Category updated successfully", category)
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Category deleted successfully", nil)
}
