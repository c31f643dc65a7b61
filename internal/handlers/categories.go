package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marianaviana/atelie-catalog/internal/events"
	"github.com/marianaviana/atelie-catalog/internal/logging"
	"github.com/marianaviana/atelie-catalog/internal/storage"
	"github.com/marianaviana/atelie-catalog/internal/transport"
)

type CategoryHandler struct {
	Store  storage.Storage
	Events events.Publisher
}

func (h *CategoryHandler) GetCategories(c echo.Context) error {
	ctx := c.Request().Context()

	categories, err := h.Store.GetCategories(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("list categories failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list categories")
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategoryBySlug(c echo.Context) error {
	ctx := c.Request().Context()

	category, err := h.Store.GetCategoryBySlug(ctx, c.Param("slug"))
	if err != nil {
		logging.FromContext(ctx).Error("get category failed", "slug", c.Param("slug"), "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get category")
	}
	if category == nil {
		return echo.NewHTTPError(http.StatusNotFound, "category not found")
	}
	return c.JSON(http.StatusOK, category)
}

// GetCategoryProducts lists every product of the category addressed by slug,
// hidden ones included, newest first.
func (h *CategoryHandler) GetCategoryProducts(c echo.Context) error {
	ctx := c.Request().Context()

	category, err := h.Store.GetCategoryBySlug(ctx, c.Param("slug"))
	if err != nil {
		logging.FromContext(ctx).Error("get category failed", "slug", c.Param("slug"), "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get category")
	}
	if category == nil {
		return echo.NewHTTPError(http.StatusNotFound, "category not found")
	}

	products, err := h.Store.GetProductsByCategory(ctx, category.ID)
	if err != nil {
		logging.FromContext(ctx).Error("list category products failed", "category_id", category.ID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list products")
	}
	return c.JSON(http.StatusOK, products)
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.create")

	var req transport.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Name == "" || req.Slug == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and slug are required")
	}

	category, err := h.Store.CreateCategory(ctx, req)
	if err != nil {
		if isConflict(err) {
			l.Warn("create category conflict", "slug", req.Slug, "error", err)
			return echo.NewHTTPError(http.StatusConflict, "slug already in use")
		}
		l.Error("create category failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create category")
	}

	publish(c, h.Events, events.TopicCatalog, fmt.Sprint(category.ID), map[string]any{
		"type":        "category_created",
		"category_id": category.ID,
		"slug":        category.Slug,
	})

	l.Info("category created", "id", category.ID, "slug", category.Slug)
	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) PatchCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.patch")

	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req transport.PatchCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	category, err := h.Store.UpdateCategory(ctx, id, req)
	if err != nil {
		if isConflict(err) {
			return echo.NewHTTPError(http.StatusConflict, "slug already in use")
		}
		l.Error("patch category failed", "id", id, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update category")
	}
	if category == nil {
		return echo.NewHTTPError(http.StatusNotFound, "category not found")
	}

	l.Info("category updated", "id", category.ID)
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.delete")

	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.Store.DeleteCategory(ctx, id); err != nil {
		if isConflict(err) {
			l.Warn("delete category blocked by products", "id", id)
			return echo.NewHTTPError(http.StatusConflict, "category still has products")
		}
		l.Error("delete category failed", "id", id, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete category")
	}

	publish(c, h.Events, events.TopicCatalog, fmt.Sprint(id), map[string]any{
		"type":        "category_deleted",
		"category_id": id,
	})

	l.Info("category deleted", "id", id)
	return c.NoContent(http.StatusNoContent)
}
