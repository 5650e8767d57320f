package httpserver

import (
	"net/http"

	"github.com/kmdeleon/ordering_service/internal/authgate"
	"github.com/labstack/echo/v4"
)

type Deps struct {
	DeliveryHandler *DeliveryHTTP
	Gate            *authgate.Gate
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	info := e.Group("/info", d.Gate.Require("user", "admin", "staff"))
	info.GET("/:order_id", d.DeliveryHandler.GetDeliveryInfo)
	info.POST("", d.DeliveryHandler.AddDeliveryInfo)

	admin := e.Group("/admin/delivery", d.Gate.Require("admin", "staff"))
	admin.GET("/orders", d.DeliveryHandler.ListDeliveryOrders)
}
