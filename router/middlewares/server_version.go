package middlewares

import (
	"github.com/labstack/echo/v4"

	"github.com/traPtitech/atelier/router/consts"
)

// ServerVersion バージョンとリビジョンをレスポンスヘッダーに付与するミドルウェア
//
// revisionが空の場合はX-ATELIER-REVISIONを付与しません。
func ServerVersion(version, revision string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(consts.HeaderVersion, version)
			if len(revision) > 0 {
				h.Set(consts.HeaderRevision, revision)
			}
			return next(c)
		}
	}
}
