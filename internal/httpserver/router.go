package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marianaviana/atelie-catalog/internal/handlers"
	authmw "github.com/marianaviana/atelie-catalog/internal/middleware/auth"
)

type Deps struct {
	AuthHandler     *handlers.AuthHandler
	CategoryHandler *handlers.CategoryHandler
	ProductHandler  *handlers.ProductHandler
	OrderHandler    *handlers.OrderHandler
	ContentHandler  *handlers.ContentHandler
	FaqHandler      *handlers.FaqHandler
	SearchHandler   *handlers.SearchHandler
	JWTSecret       []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	api.POST("/auth/register", d.AuthHandler.Register)
	api.POST("/auth/login", d.AuthHandler.Login)

	api.GET("/categories", d.CategoryHandler.GetCategories)
	api.GET("/categories/:slug", d.CategoryHandler.GetCategoryBySlug)
	api.GET("/categories/:slug/products", d.CategoryHandler.GetCategoryProducts)

	api.GET("/products", d.ProductHandler.GetProducts)
	api.GET("/products/featured", d.ProductHandler.GetFeaturedProducts)
	if d.SearchHandler != nil {
		api.GET("/products/search", d.SearchHandler.SearchProducts)
	}
	api.GET("/products/:slug", d.ProductHandler.GetProductBySlug)

	api.GET("/content/:pageKey", d.ContentHandler.GetPageContent)
	api.GET("/faq", d.FaqHandler.GetFaqItems)

	api.POST("/orders", d.OrderHandler.CreateOrder)

	admin := api.Group("/admin", authmw.RequireAuth(d.JWTSecret))

	admin.POST("/categories", d.CategoryHandler.CreateCategory)
	admin.PATCH("/categories/:id", d.CategoryHandler.PatchCategory)
	admin.DELETE("/categories/:id", d.CategoryHandler.DeleteCategory)

	admin.POST("/products", d.ProductHandler.CreateProduct)
	admin.PATCH("/products/:id", d.ProductHandler.PatchProduct)
	admin.DELETE("/products/:id", d.ProductHandler.DeleteProduct)

	admin.GET("/orders", d.OrderHandler.GetOrders)
	admin.PATCH("/orders/:id", d.OrderHandler.PatchOrder)
	admin.DELETE("/orders/:id", d.OrderHandler.DeleteOrder)

	admin.PUT("/content", d.ContentHandler.UpsertPageContent)

	admin.POST("/faq", d.FaqHandler.CreateFaqItem)
	admin.PATCH("/faq/:id", d.FaqHandler.PatchFaqItem)
	admin.DELETE("/faq/:id", d.FaqHandler.DeleteFaqItem)
}
