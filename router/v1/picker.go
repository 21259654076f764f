package v1

import (
	"context"
	"errors"
	"image"
	"net/http"
	"strconv"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/guregu/null"
	"github.com/labstack/echo/v4"

	"github.com/traPtitech/atelier/model"
	"github.com/traPtitech/atelier/router/extension/herror"
	"github.com/traPtitech/atelier/service/picker"
	"github.com/traPtitech/atelier/utils/validator"
)

// pickerRequest 色抽出リクエストのフォーム値
type pickerRequest struct {
	img     image.Image
	display image.Point
	cursor  picker.Point
}

// parsePickerRequest multipart/form-dataの画像とカーソル位置を読み取ります
//
// displayWidth, displayHeightが省略された場合は画像の元の大きさを使います。
func (h *Handlers) parsePickerRequest(c echo.Context) (*pickerRequest, error) {
	x, err := strconv.ParseFloat(c.FormValue("x"), 64)
	if err != nil {
		return nil, herror.BadRequest("invalid x")
	}
	y, err := strconv.ParseFloat(c.FormValue("y"), 64)
	if err != nil {
		return nil, herror.BadRequest("invalid y")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return nil, herror.BadRequest("file is required")
	}
	src, err := fh.Open()
	if err != nil {
		return nil, herror.InternalServerError(err)
	}
	defer src.Close()

	img, err := h.Picker.Decode(c.Request().Context(), src)
	if err != nil {
		switch {
		case errors.Is(err, picker.ErrPixelLimitExceeded), errors.Is(err, picker.ErrInvalidImageSrc):
			return nil, herror.BadRequest(err)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return nil, herror.ServiceUnavailable(err)
		default:
			return nil, herror.InternalServerError(err)
		}
	}

	display := img.Bounds().Size()
	if v := c.FormValue("displayWidth"); len(v) > 0 {
		if display.X, err = strconv.Atoi(v); err != nil || display.X <= 0 {
			return nil, herror.BadRequest("invalid displayWidth")
		}
	}
	if v := c.FormValue("displayHeight"); len(v) > 0 {
		if display.Y, err = strconv.Atoi(v); err != nil || display.Y <= 0 {
			return nil, herror.BadRequest("invalid displayHeight")
		}
	}

	return &pickerRequest{
		img:     img,
		display: display,
		cursor:  picker.Point{X: x, Y: y},
	}, nil
}

// SampleColor POST /picker/sample
func (h *Handlers) SampleColor(c echo.Context) error {
	req, err := h.parsePickerRequest(c)
	if err != nil {
		return err
	}

	session := picker.NewSession(req.img, req.display, nil)
	session.Move(req.cursor)
	res := echo.Map{"color": nil, "state": session.State().String()}
	if color, ok := session.Hovered(); ok {
		res["color"] = color.Hex()
	}
	return c.JSON(http.StatusOK, res)
}

// CommitColor POST /picker/commit
func (h *Handlers) CommitColor(c echo.Context) error {
	req, err := h.parsePickerRequest(c)
	if err != nil {
		return err
	}

	var name null.String
	if v := c.FormValue("name"); len(v) > 0 {
		name = null.StringFrom(v)
		if err := vd.Validate(name, validator.ColorNameRule...); err != nil {
			return herror.BadRequest(err)
		}
	}

	userID := getRequestUserID(c)
	session := picker.NewSession(req.img, req.display, func(_ context.Context, color picker.Color) (*model.SavedColor, error) {
		return h.ColorManager.Save(userID, color.Hex(), name)
	})
	if _, ok := session.Move(req.cursor); !ok {
		return herror.BadRequest("the cursor is outside of the image")
	}

	saved, err := session.Commit(c.Request().Context())
	if err != nil {
		return herror.FromError(err)
	}
	return c.JSON(http.StatusCreated, formatSavedColor(saved))
}
