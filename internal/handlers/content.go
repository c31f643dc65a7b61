package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marianaviana/atelie-catalog/internal/logging"
	"github.com/marianaviana/atelie-catalog/internal/storage"
	"github.com/marianaviana/atelie-catalog/internal/transport"
)

type ContentHandler struct {
	Store storage.Storage
}

func (h *ContentHandler) GetPageContent(c echo.Context) error {
	ctx := c.Request().Context()

	content, err := h.Store.GetPageContent(ctx, c.Param("pageKey"))
	if err != nil {
		logging.FromContext(ctx).Error("get page content failed", "page_key", c.Param("pageKey"), "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get page content")
	}
	if content == nil {
		return echo.NewHTTPError(http.StatusNotFound, "page content not found")
	}
	return c.JSON(http.StatusOK, content)
}

func (h *ContentHandler) UpsertPageContent(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "content.upsert")

	var req transport.UpsertPageContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.PageKey == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "page_key is required")
	}

	content, err := h.Store.UpsertPageContent(ctx, req)
	if err != nil {
		l.Error("upsert page content failed", "page_key", req.PageKey, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot save page content")
	}

	l.Info("page content saved", "page_key", content.PageKey)
	return c.JSON(http.StatusOK, content)
}
