package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/amribrahim/goshop/internal/middleware/auth"
	"github.com/amribrahim/goshop/internal/models"
)

type Deps struct {
	JWTSecret []byte

	AuthHandler     *AuthHandler
	UserHandler     *UserHandler
	CategoryHandler *CategoryHandler
	ProductHandler  *ProductHandler
	ReviewHandler   *ReviewHandler
	CartHandler     *CartHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	requireAuth := auth.RequireAuth(d.JWTSecret)
	adminOnly := auth.RequireRoles(models.RoleAdmin)
	anyRole := auth.RequireRoles(models.RoleAdmin, models.RoleUser, models.RoleSupplier, models.RoleEmployee)

	v1 := e.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.POST("/register", d.AuthHandler.Register)
	authGroup.POST("/login", d.AuthHandler.Login)

	users := v1.Group("/user")
	users.POST("", d.UserHandler.Create, requireAuth, adminOnly)
	users.GET("", d.UserHandler.List, requireAuth, adminOnly)
	users.GET("/:id", d.UserHandler.Get)
	users.PATCH("/:id", d.UserHandler.Update, requireAuth, adminOnly)
	users.DELETE("/:id", d.UserHandler.Delete, requireAuth)

	profile := v1.Group("/profile", requireAuth, anyRole)
	profile.GET("", d.UserHandler.GetProfile)
	profile.PATCH("", d.UserHandler.UpdateProfile)
	profile.DELETE("", d.UserHandler.DeleteProfile)

	categories := v1.Group("/category")
	categories.POST("", d.CategoryHandler.Create, requireAuth, adminOnly)
	categories.GET("", d.CategoryHandler.List)
	categories.GET("/:id", d.CategoryHandler.Get)
	categories.PATCH("/:id", d.CategoryHandler.Update, requireAuth, adminOnly)
	categories.DELETE("/:id", d.CategoryHandler.Delete, requireAuth)

	products := v1.Group("/product")
	products.POST("", d.ProductHandler.Create, requireAuth, adminOnly)
	products.GET("", d.ProductHandler.List)
	products.GET("/count", d.ProductHandler.Count)
	products.GET("/search", d.ProductHandler.Search)
	products.GET("/best-sellers", d.ProductHandler.BestSellers)
	products.GET("/:id", d.ProductHandler.Get)
	products.PATCH("/:id", d.ProductHandler.Update, requireAuth, adminOnly)
	products.DELETE("/:id", d.ProductHandler.Delete, requireAuth, adminOnly)

	reviews := v1.Group("/review")
	reviews.POST("/:productId", d.ReviewHandler.Create, requireAuth, auth.RequireRoles(models.RoleUser))
	reviews.GET("/:id", d.ReviewHandler.Get)
	reviews.PATCH("/:id", d.ReviewHandler.Update, requireAuth, auth.RequireRoles(models.RoleUser))
	reviews.DELETE("/:id", d.ReviewHandler.Delete, requireAuth, auth.RequireRoles(models.RoleUser, models.RoleAdmin))

	carts := v1.Group("/cart", requireAuth)
	carts.GET("", d.CartHandler.List, adminOnly)
	carts.GET("/user-cart", d.CartHandler.GetOwn, auth.RequireRoles(models.RoleUser))
	carts.GET("/:userId", d.CartHandler.GetByUser, auth.RequireRoles(models.RoleAdmin, models.RoleEmployee))
	carts.POST("", d.CartHandler.AddItem, auth.RequireRoles(models.RoleUser))
	carts.PATCH("/:id", d.CartHandler.Update, auth.RequireRoles(models.RoleUser))
}
