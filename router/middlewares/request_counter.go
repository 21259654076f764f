package middlewares

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "atelier",
	Name:      "http_requests_total",
}, []string{"code", "method", "route"})

// RequestCounter prometheus metrics用リクエストカウンター
//
// ルートにマッチしなかったリクエストはroute="unmatched"として数えます。
func RequestCounter() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			err = next(c)
			route := c.Path()
			if len(route) == 0 {
				route = "unmatched"
			}
			status := c.Response().Status
			var he *echo.HTTPError
			if errors.As(err, &he) && !c.Response().Committed {
				status = he.Code
			}
			requestCounter.WithLabelValues(strconv.Itoa(status), c.Request().Method, route).Inc()
			return err
		}
	}
}
