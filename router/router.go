package router

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/traPtitech/atelier/repository"
	"github.com/traPtitech/atelier/router/consts"
	"github.com/traPtitech/atelier/router/extension"
	"github.com/traPtitech/atelier/router/middlewares"
	v1 "github.com/traPtitech/atelier/router/v1"
	"github.com/traPtitech/atelier/service"
)

type Router struct {
	e  *echo.Echo
	v1 *v1.Handlers
}

// Setup APIサーバーのルーターを構築します
func Setup(repo repository.Repository, ss *service.Services, logger *zap.Logger, config *Config) *echo.Echo {
	r := newRouter(repo, ss, logger.Named("router"), config)

	api := r.e.Group("/api")
	api.GET("/metrics", echoprometheus.NewHandler())
	api.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, http.StatusText(http.StatusOK)) })
	r.v1.Setup(api)

	return r.e
}

func newEcho(logger *zap.Logger, config *Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = extension.ErrorHandler(logger)
	e.Binder = &extension.Binder{}

	// ミドルウェア設定
	e.Use(middlewares.ServerVersion(config.Version, config.Revision))
	e.Use(middlewares.RequestID())
	if config.AccessLogging {
		e.Use(middlewares.AccessLogging(logger.Named("access_log"), config.Development))
	}
	e.Use(middlewares.Recovery(logger))
	if config.Gzipped {
		e.Use(middlewares.Gzip())
	}
	e.Use(extension.Wrap())
	e.Use(middlewares.RequestCounter())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		ExposeHeaders: []string{consts.HeaderVersion, consts.HeaderRevision, echo.HeaderXRequestID},
		AllowHeaders:  []string{echo.HeaderContentType},
		MaxAge:        3600,
	}))
	e.Use(echoprometheus.NewMiddleware("atelier"))

	return e
}

func provideV1Config(c *Config) v1.Config {
	return v1.Config{
		PickerMaxUploadKB: c.PickerMaxUploadKB,
		ChatRateLimit:     c.ChatRateLimit,
		ChatRateBurst:     c.ChatRateBurst,
	}
}
