package v1

import (
	"net/http"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/guregu/null"
	"github.com/labstack/echo/v4"

	"github.com/traPtitech/atelier/router/consts"
	"github.com/traPtitech/atelier/router/extension/herror"
	"github.com/traPtitech/atelier/utils/validator"
)

// GetMySavedColors GET /colors
func (h *Handlers) GetMySavedColors(c echo.Context) error {
	colors, err := h.ColorManager.List(getRequestUserID(c))
	if err != nil {
		return herror.FromError(err)
	}
	return c.JSON(http.StatusOK, formatSavedColors(colors))
}

// PostColorRequest POST /colors リクエストボディ
type PostColorRequest struct {
	HTMLColor string      `json:"htmlColor"`
	Name      null.String `json:"name"`
}

func (r PostColorRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.HTMLColor, validator.HexColorRuleRequired...),
		vd.Field(&r.Name, validator.ColorNameRule...),
	)
}

// SaveColor POST /colors
func (h *Handlers) SaveColor(c echo.Context) error {
	var req PostColorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	color, err := h.ColorManager.Save(getRequestUserID(c), req.HTMLColor, req.Name)
	if err != nil {
		return herror.FromError(err)
	}
	return c.JSON(http.StatusCreated, formatSavedColor(color))
}

// DeleteSavedColor DELETE /colors/:colorID
func (h *Handlers) DeleteSavedColor(c echo.Context) error {
	colorID, err := getParamAsInt(c, consts.ParamColorID)
	if err != nil {
		return err
	}
	if err := h.ColorManager.Delete(getRequestUserID(c), colorID); err != nil {
		return herror.FromError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
