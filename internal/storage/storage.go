package storage

import (
	"context"

	"github.com/marianaviana/atelie-catalog/internal/models"
	"github.com/marianaviana/atelie-catalog/internal/transport"
)

// Storage is the single seam between the HTTP layer and persistence.
// Lookups return (nil, nil) when no row matches; absence is not an error.
// Constraint violations from the store are propagated unchanged.
type Storage interface {
	// Users
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error)

	// Categories
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	CreateCategory(ctx context.Context, req transport.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uint, req transport.PatchCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uint) error

	// Products
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetProductsByCategory(ctx context.Context, categoryID uint) ([]models.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetFeaturedProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uint, req transport.PatchProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uint) error

	// Orders
	GetOrders(ctx context.Context) ([]models.Order, error)
	GetOrdersByStatus(ctx context.Context, status string) ([]models.Order, error)
	CreateOrder(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, error)
	UpdateOrder(ctx context.Context, id uint, req transport.PatchOrderRequest) (*models.Order, error)
	DeleteOrder(ctx context.Context, id uint) error

	// Page content
	GetPageContent(ctx context.Context, pageKey string) (*models.PageContent, error)
	UpsertPageContent(ctx context.Context, req transport.UpsertPageContentRequest) (*models.PageContent, error)

	// FAQ
	GetFaqItems(ctx context.Context) ([]models.FaqItem, error)
	CreateFaqItem(ctx context.Context, req transport.CreateFaqItemRequest) (*models.FaqItem, error)
	UpdateFaqItem(ctx context.Context, id uint, req transport.PatchFaqItemRequest) (*models.FaqItem, error)
	DeleteFaqItem(ctx context.Context, id uint) error
}
