package v1

import (
	"net/http"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/guregu/null"
	"github.com/labstack/echo/v4"

	"github.com/traPtitech/atelier/router/extension/herror"
	"github.com/traPtitech/atelier/service/chat"
	"github.com/traPtitech/atelier/utils/validator"
)

// GetChatMessages GET /chat/messages
func (h *Handlers) GetChatMessages(c echo.Context) error {
	messages, err := h.ChatManager.List()
	if err != nil {
		return herror.FromError(err)
	}
	return c.JSON(http.StatusOK, formatChatMessages(messages))
}

// PostChatMessageRequest POST /chat/messages リクエストボディ
type PostChatMessageRequest struct {
	Message       string      `json:"message"`
	ColorShared   null.String `json:"colorShared"`
	TextureShared null.String `json:"textureShared"`
}

func (r PostChatMessageRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.ColorShared, validator.HexColorRule...),
		vd.Field(&r.TextureShared, validator.TextureIDRule...),
	)
}

// PostChatMessage POST /chat/messages
func (h *Handlers) PostChatMessage(c echo.Context) error {
	var req PostChatMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	m, err := h.ChatManager.Send(getRequestUser(c), chat.SendArgs{
		Content:       req.Message,
		SharedColor:   req.ColorShared,
		SharedTexture: req.TextureShared,
	})
	if err != nil {
		return herror.FromError(err)
	}
	return c.JSON(http.StatusCreated, formatChatMessage(m))
}

// GetChatStats GET /chat/stats
func (h *Handlers) GetChatStats(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"totalMessages": h.ChatMessageCounter.Get(),
		"totalUsers":    h.UserCounter.Get(),
		"windowSize":    chat.WindowSize,
	})
}
