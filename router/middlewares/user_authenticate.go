package middlewares

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/traPtitech/atelier/repository"
	"github.com/traPtitech/atelier/router/consts"
	"github.com/traPtitech/atelier/router/extension/herror"
	"github.com/traPtitech/atelier/service/user"
)

// UserAuthenticate リクエスト認証ミドルウェア
//
// 認証プロキシが付与するX-Forwarded-*ヘッダーを信頼し、対応するユーザーを取得・作成します。
func UserAuthenticate(um user.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Request().Header
			openID := h.Get(consts.HeaderForwardedUser)
			if len(openID) == 0 {
				return herror.Unauthorized("You are not logged in")
			}

			u, err := um.SignIn(c.Request().Context(), user.Identity{
				OpenID:      openID,
				Name:        h.Get(consts.HeaderForwardedName),
				Email:       h.Get(consts.HeaderForwardedEmail),
				LoginMethod: h.Get(consts.HeaderForwardedLoginMethod),
			})
			if err != nil {
				if repository.IsArgError(err) {
					return herror.Unauthorized("invalid identity")
				}
				if errors.Is(err, repository.ErrUnavailable) {
					return herror.ServiceUnavailable("the database is temporarily unavailable")
				}
				return herror.InternalServerError(err)
			}

			c.Set(consts.KeyUser, u)
			c.Set(consts.KeyUserID, u.ID)
			return next(c)
		}
	}
}
