package v1

import (
	"net/http"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/guregu/null"
	"github.com/labstack/echo/v4"

	"github.com/traPtitech/atelier/repository"
	"github.com/traPtitech/atelier/router/consts"
	"github.com/traPtitech/atelier/router/extension/herror"
	"github.com/traPtitech/atelier/utils/validator"
)

// GetArtistTags GET /tags
func (h *Handlers) GetArtistTags(c echo.Context) error {
	tags, err := h.TagManager.List()
	if err != nil {
		return herror.FromError(err)
	}
	return c.JSON(http.StatusOK, formatArtistTags(tags))
}

// PostArtistTagRequest POST /tags リクエストボディ
type PostArtistTagRequest struct {
	Name        string      `json:"name"`
	Description null.String `json:"description"`
	Icon        null.String `json:"icon"`
	Color       null.String `json:"color"`
}

func (r PostArtistTagRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Name, validator.ArtistTagNameRuleRequired...),
		vd.Field(&r.Description, vd.RuneLength(0, 1000)),
		vd.Field(&r.Icon, validator.ArtistTagIconRule...),
		vd.Field(&r.Color, validator.HexColorRule...),
	)
}

// CreateArtistTag POST /tags
func (h *Handlers) CreateArtistTag(c echo.Context) error {
	var req PostArtistTagRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	t, err := h.TagManager.Create(repository.CreateArtistTagArgs{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	})
	if err != nil {
		return herror.FromError(err)
	}
	return c.JSON(http.StatusCreated, formatArtistTag(t))
}

// DeleteArtistTag DELETE /tags/:tagID
func (h *Handlers) DeleteArtistTag(c echo.Context) error {
	tagID, err := getParamAsInt(c, consts.ParamTagID)
	if err != nil {
		return err
	}
	if err := h.TagManager.Delete(tagID); err != nil {
		return herror.FromError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetArtistTagUsers GET /tags/:tagID/users
func (h *Handlers) GetArtistTagUsers(c echo.Context) error {
	users, err := h.TagManager.GetUsersByTag(getParamArtistTag(c).ID)
	if err != nil {
		return herror.FromError(err)
	}
	return c.JSON(http.StatusOK, formatUsers(users))
}

// GetMyArtistTags GET /users/me/tags
func (h *Handlers) GetMyArtistTags(c echo.Context) error {
	return serveUserArtistTags(c, h, getRequestUserID(c))
}

// GetUserArtistTags GET /users/:userID/tags
func (h *Handlers) GetUserArtistTags(c echo.Context) error {
	return serveUserArtistTags(c, h, getParamUser(c).ID)
}

// serveUserArtistTags 指定したユーザーのタグ一覧をレスポンスとして返す
func serveUserArtistTags(c echo.Context, h *Handlers, userID int) error {
	tags, err := h.TagManager.GetUserTags(userID)
	if err != nil {
		return herror.FromError(err)
	}
	return c.JSON(http.StatusOK, formatUserTags(tags))
}

// PostUserTagRequest POST /users/:userID/tags リクエストボディ
type PostUserTagRequest struct {
	TagID int `json:"tagId"`
}

func (r PostUserTagRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.TagID, vd.Required, vd.Min(1)),
	)
}

// AssignArtistTag POST /users/:userID/tags
func (h *Handlers) AssignArtistTag(c echo.Context) error {
	var req PostUserTagRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ut, err := h.TagManager.Assign(getParamUser(c).ID, req.TagID)
	if err != nil {
		return herror.FromError(err)
	}
	return c.JSON(http.StatusCreated, formatUserTag(ut))
}

// UnassignArtistTag DELETE /users/:userID/tags/:tagID
func (h *Handlers) UnassignArtistTag(c echo.Context) error {
	tagID, err := getParamAsInt(c, consts.ParamTagID)
	if err != nil {
		return err
	}
	if err := h.TagManager.Unassign(getParamUser(c).ID, tagID); err != nil {
		return herror.FromError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
