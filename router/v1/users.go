package v1

import (
	"net/http"
	"slices"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/guregu/null"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"github.com/traPtitech/atelier/model"
	"github.com/traPtitech/atelier/repository"
	"github.com/traPtitech/atelier/router/extension/herror"
	"github.com/traPtitech/atelier/service/rbac/permission"
	"github.com/traPtitech/atelier/utils/validator"
)

// GetMe GET /users/me
func (h *Handlers) GetMe(c echo.Context) error {
	return c.JSON(http.StatusOK, h.formatMe(getRequestUser(c)))
}

func (h *Handlers) formatMe(u *model.User) *Me {
	return &Me{
		User:         *formatUser(u),
		Email:        u.Email,
		LoginMethod:  u.LoginMethod,
		LastSignedIn: u.LastSignedIn,
		Permissions:  permissionNames(h.RBAC.GetGrantedPermissions(u.Role)),
	}
}

func permissionNames(perms []permission.Permission) []string {
	names := lo.Map(perms, func(p permission.Permission, _ int) string { return p.Name() })
	slices.Sort(names)
	return names
}

// PatchMeRequest PATCH /users/me リクエストボディ
type PatchMeRequest struct {
	Name   null.String `json:"name"`
	Bio    null.String `json:"bio"`
	Avatar null.String `json:"avatar"`
}

func (r PatchMeRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Name, vd.When(r.Name.Valid, validator.UserDisplayNameRule...)),
		vd.Field(&r.Bio, validator.UserBioRule...),
		vd.Field(&r.Avatar, validator.AvatarURLRule...),
	)
}

// EditMe PATCH /users/me
func (h *Handlers) EditMe(c echo.Context) error {
	var req PatchMeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	u, err := h.UserManager.UpdateProfile(c.Request().Context(), getRequestUserID(c), repository.UpdateUserArgs{
		Name:   req.Name,
		Bio:    req.Bio,
		Avatar: req.Avatar,
	})
	if err != nil {
		return herror.FromError(err)
	}
	return c.JSON(http.StatusOK, h.formatMe(u))
}

// GetUser GET /users/:userID
func (h *Handlers) GetUser(c echo.Context) error {
	return c.JSON(http.StatusOK, formatUser(getParamUser(c)))
}
