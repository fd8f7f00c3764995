package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/amribrahim/goshop/internal/middleware/auth"
	"github.com/amribrahim/goshop/internal/service"
)

type ReviewHandler struct {
	Svc *service.ReviewService
}

type reviewRequest struct {
	Text string `json:"text"`
}

func (h *ReviewHandler) Create(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	productID, err := parseID(c, "productId")
	if err != nil {
		return respondError(c, err)
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, service.E(service.ErrValidation, "invalid body"))
	}

	review, err := h.Svc.Create(c.Request().Context(), productID, userID, req.Text)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusCreated, "review created successfully", review)
}

func (h *ReviewHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	review, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Review fetched successfully", review)
}

func (h *ReviewHandler) Update(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, service.E(service.ErrValidation, "invalid body"))
	}

	review, err := h.Svc.Update(c.Request().Context(), id, userID, req.Text)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Review updated successfully", review)
}

func (h *ReviewHandler) Delete(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.Svc.Delete(c.Request().Context(), id, userID, auth.Role(c)); err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Review deleted successfully", nil)
}
