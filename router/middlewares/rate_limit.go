package middlewares

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/traPtitech/atelier/router/consts"
	"github.com/traPtitech/atelier/router/extension/herror"
)

// RateLimit ユーザーごとにリクエストレートを制限するミドルウェア
//
// 未認証のリクエストはIPアドレスごとに制限されます。
func RateLimit(limit rate.Limit, burst int, logger *zap.Logger) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      limit,
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.RealIP()
			if uid, ok := c.Get(consts.KeyUserID).(int); ok {
				id = "user:" + strconv.Itoa(uid)
			}

			ok, err := store.Allow(id)
			if err != nil {
				return herror.InternalServerError(err)
			}
			if !ok {
				logger.Warn("exceeded rate limit",
					zap.String("path", c.Path()),
					zap.String("identifier", id),
				)
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
