package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marianaviana/atelie-catalog/internal/events"
	"github.com/marianaviana/atelie-catalog/internal/logging"
	"github.com/marianaviana/atelie-catalog/internal/models"
	"github.com/marianaviana/atelie-catalog/internal/search"
	"github.com/marianaviana/atelie-catalog/internal/storage"
	"github.com/marianaviana/atelie-catalog/internal/transport"
)

type ProductHandler struct {
	Store   storage.Storage
	Events  events.Publisher
	Indexer *search.Indexer
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.Store.GetProducts(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("list products failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list products")
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetFeaturedProducts(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.Store.GetFeaturedProducts(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("list featured products failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list products")
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProductBySlug(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := h.Store.GetProductBySlug(ctx, c.Param("slug"))
	if err != nil {
		logging.FromContext(ctx).Error("get product failed", "slug", c.Param("slug"), "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get product")
	}
	if product == nil {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Name == "" || req.Slug == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and slug are required")
	}

	product, err := h.Store.CreateProduct(ctx, req)
	if err != nil {
		if isConflict(err) {
			l.Warn("create product conflict", "slug", req.Slug, "error", err)
			return echo.NewHTTPError(http.StatusConflict, "slug already in use")
		}
		l.Error("create product failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create product")
	}

	h.indexProduct(c, l, product)
	publish(c, h.Events, events.TopicCatalog, fmt.Sprint(product.ID), map[string]any{
		"type":       "product_created",
		"product_id": product.ID,
		"slug":       product.Slug,
	})

	l.Info("product created", "id", product.ID, "slug", product.Slug)
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) PatchProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.patch")

	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req transport.PatchProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Store.UpdateProduct(ctx, id, req)
	if err != nil {
		if isConflict(err) {
			return echo.NewHTTPError(http.StatusConflict, "slug already in use")
		}
		l.Error("patch product failed", "id", id, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update product")
	}
	if product == nil {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}

	h.indexProduct(c, l, product)
	publish(c, h.Events, events.TopicCatalog, fmt.Sprint(product.ID), map[string]any{
		"type":       "product_updated",
		"product_id": product.ID,
		"slug":       product.Slug,
	})

	l.Info("product updated", "id", product.ID)
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.Store.DeleteProduct(ctx, id); err != nil {
		l.Error("delete product failed", "id", id, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete product")
	}

	if err := h.Indexer.DeleteProduct(ctx, id); err != nil {
		l.Error("search deindex failed", "id", id, "error", err)
	}
	publish(c, h.Events, events.TopicCatalog, fmt.Sprint(id), map[string]any{
		"type":       "product_deleted",
		"product_id": id,
	})

	l.Info("product deleted", "id", id)
	return c.NoContent(http.StatusNoContent)
}

// indexProduct keeps the search index in sync; indexing failures are logged
// and never fail the request.
func (h *ProductHandler) indexProduct(c echo.Context, l *slog.Logger, p *models.Product) {
	if err := h.Indexer.IndexProduct(c.Request().Context(), p); err != nil {
		l.Error("search index failed", "id", p.ID, "error", err)
	}
}
