package herror

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/traPtitech/atelier/repository"
)

func NotFound(err ...interface{}) error {
	return HTTPError(http.StatusNotFound, err)
}

func BadRequest(err ...interface{}) error {
	return HTTPError(http.StatusBadRequest, err)
}

func Forbidden(err ...interface{}) error {
	return HTTPError(http.StatusForbidden, err)
}

func Conflict(err ...interface{}) error {
	return HTTPError(http.StatusConflict, err)
}

func Unauthorized(err ...interface{}) error {
	return HTTPError(http.StatusUnauthorized, err)
}

func ServiceUnavailable(err ...interface{}) error {
	return HTTPError(http.StatusServiceUnavailable, err)
}

func HTTPError(code int, err interface{}) error {
	switch v := err.(type) {
	case []interface{}:
		if len(v) > 0 {
			return HTTPError(code, v[0])
		}
		return HTTPError(code, nil)
	case string:
		return echo.NewHTTPError(code, v)
	case *repository.ArgumentError:
		return echo.NewHTTPError(code, v.Error())
	case nil:
		return echo.NewHTTPError(code)
	default:
		return echo.NewHTTPError(code, v)
	}
}

// FromError repositoryのエラーを対応するHTTPエラーに変換します
//
// 対応するものがない場合は500エラーです。
func FromError(err error) error {
	var ae *repository.ArgumentError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &ae):
		return BadRequest(ae)
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, repository.ErrNilID):
		return NotFound()
	case errors.Is(err, repository.ErrForbidden):
		return Forbidden()
	case errors.Is(err, repository.ErrAlreadyExists):
		return Conflict()
	case errors.Is(err, repository.ErrUnavailable):
		return ServiceUnavailable("the database is temporarily unavailable")
	default:
		return internalError(err, 2)
	}
}
