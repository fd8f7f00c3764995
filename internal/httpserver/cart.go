package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/amribrahim/goshop/internal/middleware/auth"
	"github.com/amribrahim/goshop/internal/service"
)

type CartHandler struct {
	Svc *service.CartService
}

func (h *CartHandler) List(c echo.Context) error {
	carts, err := h.Svc.ListCarts(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Carts fetched successfully", carts)
}

func (h *CartHandler) GetOwn(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	cart, err := h.Svc.GetUserCart(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Cart fetched successfully", cart)
}

// GetByUser lets staff inspect any user's cart.
func (h *CartHandler) GetByUser(c echo.Context) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return respondError(c, err)
	}

	cart, err := h.Svc.GetUserCart(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Cart fetched successfully", cart)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	var req struct {
		ProductID uuid.UUID `json:"product_id"`
		Quantity  int       `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return respondError(c, service.E(service.ErrValidation, "invalid body"))
	}
	if req.ProductID == uuid.Nil {
		return respondError(c, service.E(service.ErrValidation, "Product id is not valid"))
	}

	cart, err := h.Svc.AddItem(c.Request().Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Item Added to Cart successfully", cart)
}

func (h *CartHandler) Update(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	itemID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req service.UpdateCartInput
	if err := c.Bind(&req); err != nil {
		return respondError(c, service.E(service.ErrValidation, "invalid body"))
	}

	cart, err := h.Svc.Update(c.Request().Context(), itemID, userID, req)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Cart updated successfully", cart)
}
