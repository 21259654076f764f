package middlewares

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/traPtitech/atelier/model"
	"github.com/traPtitech/atelier/router/consts"
	"github.com/traPtitech/atelier/service/rbac"
	"github.com/traPtitech/atelier/service/rbac/permission"
)

// AccessControlMiddlewareGenerator アクセスコントロールミドルウェアのジェネレーターを返します
//
// 生成されるミドルウェアはUserAuthenticateの後に使用する必要があります。
func AccessControlMiddlewareGenerator(r rbac.RBAC) func(p ...permission.Permission) echo.MiddlewareFunc {
	return func(p ...permission.Permission) echo.MiddlewareFunc {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				user, ok := c.Get(consts.KeyUser).(*model.User)
				if !ok || user == nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "You are not logged in")
				}
				for _, v := range p {
					if !r.IsGranted(user.Role, v) {
						// NG
						return echo.NewHTTPError(http.StatusForbidden, fmt.Sprintf("you are not permitted to request to '%s'", c.Request().URL.Path))
					}
				}

				return next(c) // OK
			}
		}
	}
}
