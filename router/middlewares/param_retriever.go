package middlewares

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/traPtitech/atelier/repository"
	"github.com/traPtitech/atelier/router/consts"
	"github.com/traPtitech/atelier/router/extension/herror"
)

// ParamRetriever リクエストパスパラメータで指定された各種エンティティをrepositoryから取得するミドルウェア
type ParamRetriever struct {
	repo repository.Repository
}

// NewParamRetriever ParamRetrieverを生成
func NewParamRetriever(repo repository.Repository) *ParamRetriever {
	return &ParamRetriever{repo: repo}
}

func (pr *ParamRetriever) byInt(param string, key string, f func(c echo.Context, v int) (interface{}, error)) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := strconv.Atoi(c.Param(param))
			if err != nil || id <= 0 {
				return herror.NotFound()
			}

			r, err := f(c, id)
			if err != nil {
				return pr.error(err)
			}

			c.Set(key, r)
			return next(c)
		}
	}
}

func (pr *ParamRetriever) error(err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return err
	}
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return herror.NotFound()
	case errors.Is(err, repository.ErrUnavailable):
		return herror.ServiceUnavailable("the database is temporarily unavailable")
	default:
		return herror.InternalServerError(err)
	}
}

// UserID リクエストURLの`userID`パラメータからUserを取り出す
func (pr *ParamRetriever) UserID() echo.MiddlewareFunc {
	return pr.byInt(consts.ParamUserID, consts.KeyParamUser, func(_ echo.Context, v int) (interface{}, error) {
		return pr.repo.GetUser(v)
	})
}

// ArtistTagID リクエストURLの`tagID`パラメータからArtistTagを取り出す
func (pr *ParamRetriever) ArtistTagID() echo.MiddlewareFunc {
	return pr.byInt(consts.ParamTagID, consts.KeyParamArtistTag, func(_ echo.Context, v int) (interface{}, error) {
		return pr.repo.GetArtistTag(v)
	})
}
