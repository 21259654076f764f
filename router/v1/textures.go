package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/traPtitech/atelier/router/consts"
	"github.com/traPtitech/atelier/router/extension/herror"
	"github.com/traPtitech/atelier/service/texture"
)

// GetTextures GET /textures
func (h *Handlers) GetTextures(c echo.Context) error {
	lang := texture.ParseLang(c.QueryParam("lang"))
	return c.JSON(http.StatusOK, formatTextures(h.Textures.List(c.QueryParam("category")), lang))
}

// GetTextureCategories GET /textures/categories
func (h *Handlers) GetTextureCategories(c echo.Context) error {
	lang := texture.ParseLang(c.QueryParam("lang"))
	return c.JSON(http.StatusOK, formatTextureCategories(h.Textures.Categories(), lang))
}

// GetTexture GET /textures/:textureID
func (h *Handlers) GetTexture(c echo.Context) error {
	t, err := h.Textures.Get(c.Param(consts.ParamTextureID))
	if err != nil {
		if errors.Is(err, texture.ErrNotFound) {
			return herror.NotFound()
		}
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, formatTexture(t, texture.ParseLang(c.QueryParam("lang"))))
}
