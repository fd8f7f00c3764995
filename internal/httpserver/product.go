package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/amribrahim/goshop/internal/models"
	"github.com/amribrahim/goshop/internal/service"
	"github.com/amribrahim/goshop/internal/transport"
)

type ProductHandler struct {
	Svc *service.ProductService
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func parseFloatParam(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func productList(c echo.Context, message string, products []models.Product) error {
	return c.JSON(http.StatusOK, transport.ProductList{
		Status:  http.StatusOK,
		Message: message,
		IsEmpty: len(products) == 0,
		Length:  len(products),
		Data:    products,
	})
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req service.CreateProductInput
	if err := c.Bind(&req); err != nil {
		return respondError(c, service.E(service.ErrValidation, "invalid body"))
	}

	product, created, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	if !created {
		return respond(c, http.StatusOK, "Product quantity updated successfully", product)
	}
	return respond(c, http.StatusCreated, "Product created successfully", product)
}

func (h *ProductHandler) List(c echo.Context) error {
	in := service.ListProductsInput{
		Category: c.QueryParam("category"),
		MinPrice: parseFloatParam(c.QueryParam("minPrice")),
		MaxPrice: parseFloatParam(c.QueryParam("maxPrice")),
		Order:    c.QueryParam("order"),
		Page:     parseIntDefault(c.QueryParam("page"), 1),
		Limit:    parseIntDefault(c.QueryParam("limit"), 10),
	}

	products, err := h.Svc.List(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return productList(c, "Products fetched successfully", products)
}

func (h *ProductHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	product, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Product fetched successfully", product)
}

func (h *ProductHandler) BestSellers(c echo.Context) error {
	products, err := h.Svc.BestSellers(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return productList(c, "Best products fetched successfully", products)
}

func (h *ProductHandler) Count(c echo.Context) error {
	total, err := h.Svc.Count(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Product count fetched successfully", total)
}

func (h *ProductHandler) Search(c echo.Context) error {
	products, err := h.Svc.Search(c.Request().Context(), c.QueryParam("keyword"))
	if err != nil {
		return respondError(c, err)
	}
	return productList(c, "Products fetched successfully", products)
}

func (h *ProductHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req service.UpdateProductInput
	if err := c.Bind(&req); err != nil {
		return respondError(c, service.E(service.ErrValidation, "invalid body"))
	}

	product, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Product updated successfully", product)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "Product deleted successfully", nil)
}
