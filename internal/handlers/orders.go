package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marianaviana/atelie-catalog/internal/events"
	"github.com/marianaviana/atelie-catalog/internal/logging"
	"github.com/marianaviana/atelie-catalog/internal/models"
	"github.com/marianaviana/atelie-catalog/internal/storage"
	"github.com/marianaviana/atelie-catalog/internal/transport"
)

type OrderHandler struct {
	Store  storage.Storage
	Events events.Publisher
}

// CreateOrder is the public order/contact endpoint; everything else on this
// handler sits behind the admin group.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.CustomerName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "customer_name is required")
	}

	order, err := h.Store.CreateOrder(ctx, req)
	if err != nil {
		if isConflict(err) {
			return echo.NewHTTPError(http.StatusConflict, "order references a missing product")
		}
		l.Error("create order failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create order")
	}

	publish(c, h.Events, events.TopicOrders, fmt.Sprint(order.ID), map[string]any{
		"type":     "order_created",
		"order_id": order.ID,
		"status":   order.Status,
	})

	l.Info("order created", "id", order.ID)
	return c.JSON(http.StatusCreated, order)
}

// GetOrders lists every order newest first; ?status= narrows to one status.
func (h *OrderHandler) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()

	var err error
	var orders []models.Order
	if status := c.QueryParam("status"); status != "" {
		orders, err = h.Store.GetOrdersByStatus(ctx, status)
	} else {
		orders, err = h.Store.GetOrders(ctx)
	}
	if err != nil {
		logging.FromContext(ctx).Error("list orders failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list orders")
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) PatchOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.patch")

	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req transport.PatchOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Store.UpdateOrder(ctx, id, req)
	if err != nil {
		if isConflict(err) {
			return echo.NewHTTPError(http.StatusConflict, "order references a missing product")
		}
		l.Error("patch order failed", "id", id, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update order")
	}
	if order == nil {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}

	if req.Status != nil {
		publish(c, h.Events, events.TopicOrders, fmt.Sprint(order.ID), map[string]any{
			"type":     "order_status_changed",
			"order_id": order.ID,
			"status":   order.Status,
		})
	}

	l.Info("order updated", "id", order.ID, "status", order.Status)
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.delete")

	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.Store.DeleteOrder(ctx, id); err != nil {
		l.Error("delete order failed", "id", id, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete order")
	}

	l.Info("order deleted", "id", id)
	return c.NoContent(http.StatusNoContent)
}
