package v1

import (
	"net/http"
	"strconv"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/guregu/null"
	"github.com/labstack/echo/v4"

	"github.com/traPtitech/atelier/repository"
	"github.com/traPtitech/atelier/router/consts"
	"github.com/traPtitech/atelier/router/extension"
	"github.com/traPtitech/atelier/router/extension/herror"
	"github.com/traPtitech/atelier/utils/validator"
)

const (
	defaultPublicPalettesLimit = 50
	maxPublicPalettesLimit     = 200
)

// GetMyPalettes GET /palettes
func (h *Handlers) GetMyPalettes(c echo.Context) error {
	palettes, err := h.PaletteManager.List(getRequestUserID(c))
	if err != nil {
		return herror.FromError(err)
	}
	return c.JSON(http.StatusOK, formatPalettes(palettes))
}

// GetPublicPalettes GET /palettes/public
func (h *Handlers) GetPublicPalettes(c echo.Context) error {
	limit := defaultPublicPalettesLimit
	if q := c.QueryParam("limit"); len(q) > 0 {
		v, err := strconv.Atoi(q)
		if err != nil || v < 1 || v > maxPublicPalettesLimit {
			return herror.BadRequest("limit must be 1-200")
		}
		limit = v
	}

	palettes, err := h.PaletteManager.ListPublic(limit)
	if err != nil {
		return herror.FromError(err)
	}
	return c.JSON(http.StatusOK, formatPalettes(palettes))
}

// PostPaletteRequest POST /palettes リクエストボディ
type PostPaletteRequest struct {
	Name        string      `json:"name"`
	Description null.String `json:"description"`
	Colors      []string    `json:"colors"`
	IsPublic    bool        `json:"isPublic"`
}

func (r PostPaletteRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Name, validator.PaletteNameRuleRequired...),
		vd.Field(&r.Description, vd.RuneLength(0, 1000)),
		vd.Field(&r.Colors, validator.PaletteColorsRule...),
	)
}

// CreatePalette POST /palettes
func (h *Handlers) CreatePalette(c echo.Context) error {
	var req PostPaletteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.PaletteManager.Create(repository.CreateColorPaletteArgs{
		UserID:      getRequestUserID(c),
		Name:        req.Name,
		Description: req.Description,
		Colors:      req.Colors,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		return herror.FromError(err)
	}
	return c.JSON(http.StatusCreated, formatPalette(p))
}

// GetPalette GET /palettes/:paletteID
func (h *Handlers) GetPalette(c echo.Context) error {
	paletteID, err := getParamAsInt(c, consts.ParamPaletteID)
	if err != nil {
		return err
	}

	p, err := h.PaletteManager.Get(getRequestUserID(c), paletteID)
	if err != nil {
		return herror.FromError(err)
	}
	return c.JSON(http.StatusOK, formatPalette(p))
}

// PatchPaletteRequest PATCH /palettes/:paletteID リクエストボディ
type PatchPaletteRequest struct {
	Name        null.String `json:"name"`
	Description null.String `json:"description"`
	Colors      []string    `json:"colors"`
	IsPublic    null.Bool   `json:"isPublic"`
}

func (r PatchPaletteRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Name, vd.When(r.Name.Valid, validator.PaletteNameRuleRequired...)),
		vd.Field(&r.Description, vd.RuneLength(0, 1000)),
		vd.Field(&r.Colors, vd.When(r.Colors != nil, validator.PaletteColorsRule...)),
	)
}

// EditPalette PATCH /palettes/:paletteID
func (h *Handlers) EditPalette(c echo.Context) error {
	paletteID, err := getParamAsInt(c, consts.ParamPaletteID)
	if err != nil {
		return err
	}

	var req PatchPaletteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.PaletteManager.Update(getRequestUserID(c), paletteID, repository.UpdateColorPaletteArgs{
		Name:        req.Name,
		Description: req.Description,
		Colors:      req.Colors,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		return herror.FromError(err)
	}
	return c.JSON(http.StatusOK, formatPalette(p))
}

// DeletePalette DELETE /palettes/:paletteID
func (h *Handlers) DeletePalette(c echo.Context) error {
	paletteID, err := getParamAsInt(c, consts.ParamPaletteID)
	if err != nil {
		return err
	}
	if err := h.PaletteManager.Delete(getRequestUserID(c), paletteID); err != nil {
		return herror.FromError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ExportPalette GET /palettes/:paletteID/export
func (h *Handlers) ExportPalette(c echo.Context) error {
	paletteID, err := getParamAsInt(c, consts.ParamPaletteID)
	if err != nil {
		return err
	}

	doc, err := h.PaletteManager.Export(getRequestUserID(c), paletteID)
	if err != nil {
		return herror.FromError(err)
	}
	return extension.JSONAttachment(c, doc.Name+".json", doc)
}
