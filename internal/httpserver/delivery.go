package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/kmdeleon/ordering_service/internal/events"
	"github.com/kmdeleon/ordering_service/internal/logging"
	"github.com/kmdeleon/ordering_service/internal/service"
	"github.com/kmdeleon/ordering_service/internal/transport"
	"github.com/labstack/echo/v4"
)

type DeliveryHTTP struct {
	Svc      *service.DeliveryService
	Producer events.Publisher
}

func (h *DeliveryHTTP) username(c echo.Context) (string, error) {
	v := c.Get("username")
	s, ok := v.(string)
	if !ok || s == "" {
		return "", errors.New("unauthorized")
	}
	return s, nil
}

func (h *DeliveryHTTP) publish(c echo.Context, key string, event map[string]any) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "delivery_events", key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka_publish_error", "error", err)
	}
}

func (h *DeliveryHTTP) GetDeliveryInfo(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "delivery.get_delivery_info")

	orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 64)
	if err != nil {
		l.Warn("get_delivery_info_error", "status", 400, "reason", "order id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "order id must be an integer")
	}

	info, err := h.Svc.GetDeliveryInfo(ctx, uint(orderID))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_delivery_info_error", "status", 404, "reason", "no delivery info for order", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "delivery info not found for this order")
		}
		l.Error("get_delivery_info_error", "status", 500, "reason", "internal error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to retrieve delivery info")
	}

	l.Info("get_delivery_info_success")
	return c.JSON(http.StatusOK, info)
}

func (h *DeliveryHTTP) AddDeliveryInfo(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "delivery.add_delivery_info")

	username, err := h.username(c)
	if err != nil {
		l.Warn("add_delivery_info_error", "status", 401, "reason", "no username in context", "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var req transport.DeliveryInfoRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_delivery_info_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	orderID, err := h.Svc.AddDeliveryInfo(ctx, username, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("add_delivery_info_error", "status", 400, "reason", "missing required fields", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "missing required fields")
		case errors.Is(err, service.ErrNotFound):
			l.Warn("add_delivery_info_error", "status", 404, "reason", "no pending order", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "no active pending order found for user")
		case errors.Is(err, service.ErrNotPaid):
			l.Warn("add_delivery_info_error", "status", 400, "reason", "order not paid", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "order not paid yet")
		default:
			l.Error("add_delivery_info_error", "status", 500, "reason", "internal error", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to add delivery info")
		}
	}

	h.publish(c, username, map[string]any{
		"type":     "delivery_info_added",
		"order_id": orderID,
		"username": username,
	})

	l.Info("add_delivery_info_success", "order_id", orderID)
	return c.JSON(http.StatusCreated, transport.AddDeliveryInfoResponse{
		Message: "delivery info added successfully",
		OrderID: orderID,
	})
}

func (h *DeliveryHTTP) ListDeliveryOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "delivery.list_delivery_orders")

	views, err := h.Svc.ListDeliveryOrders(ctx)
	if err != nil {
		l.Error("list_delivery_orders_error", "status", 500, "reason", "internal error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch delivery orders")
	}

	l.Info("list_delivery_orders_success", "count", len(views))
	return c.JSON(http.StatusOK, views)
}
