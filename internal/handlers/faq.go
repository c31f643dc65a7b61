package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marianaviana/atelie-catalog/internal/logging"
	"github.com/marianaviana/atelie-catalog/internal/storage"
	"github.com/marianaviana/atelie-catalog/internal/transport"
)

type FaqHandler struct {
	Store storage.Storage
}

func (h *FaqHandler) GetFaqItems(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.Store.GetFaqItems(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("list faq failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list faq")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *FaqHandler) CreateFaqItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "faq.create")

	var req transport.CreateFaqItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Question == "" || req.Answer == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "question and answer are required")
	}

	item, err := h.Store.CreateFaqItem(ctx, req)
	if err != nil {
		l.Error("create faq item failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create faq item")
	}

	l.Info("faq item created", "id", item.ID)
	return c.JSON(http.StatusCreated, item)
}

func (h *FaqHandler) PatchFaqItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "faq.patch")

	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req transport.PatchFaqItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Store.UpdateFaqItem(ctx, id, req)
	if err != nil {
		l.Error("patch faq item failed", "id", id, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update faq item")
	}
	if item == nil {
		return echo.NewHTTPError(http.StatusNotFound, "faq item not found")
	}

	l.Info("faq item updated", "id", item.ID)
	return c.JSON(http.StatusOK, item)
}

func (h *FaqHandler) DeleteFaqItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "faq.delete")

	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.Store.DeleteFaqItem(ctx, id); err != nil {
		l.Error("delete faq item failed", "id", id, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete faq item")
	}

	l.Info("faq item deleted", "id", id)
	return c.NoContent(http.StatusNoContent)
}
