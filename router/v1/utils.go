package v1

import (
	"errors"
	"strconv"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"

	"github.com/traPtitech/atelier/model"
	"github.com/traPtitech/atelier/router/consts"
	"github.com/traPtitech/atelier/router/extension/herror"
)

// bindAndValidate 構造体iにFormDataまたはJsonをデシリアライズします
func bindAndValidate(c echo.Context, i interface{}) error {
	if err := c.Bind(i); err != nil {
		return err
	}
	if err := vd.Validate(i); err != nil {
		var ie vd.InternalError
		if errors.As(err, &ie) {
			return herror.InternalServerError(ie.InternalError())
		}
		return herror.BadRequest(err)
	}
	return nil
}

// getRequestUser リクエストしてきたユーザーの情報を取得
func getRequestUser(c echo.Context) *model.User {
	return c.Get(consts.KeyUser).(*model.User)
}

// getRequestUserID リクエストしてきたユーザーIDを取得
func getRequestUserID(c echo.Context) int {
	return c.Get(consts.KeyUserID).(int)
}

// getParamUser URLの:userIDに対応するユーザー構造体を取得
func getParamUser(c echo.Context) *model.User {
	return c.Get(consts.KeyParamUser).(*model.User)
}

// getParamArtistTag URLの:tagIDに対応するアーティストタグを取得
func getParamArtistTag(c echo.Context) *model.ArtistTag {
	return c.Get(consts.KeyParamArtistTag).(*model.ArtistTag)
}

// getParamAsInt URLのnameパラメータの文字列を正の整数として取得
//
// 解釈できない場合は404エラーを返します。
func getParamAsInt(c echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v <= 0 {
		return 0, herror.NotFound()
	}
	return v, nil
}
