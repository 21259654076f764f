package service

import (
	"github.com/traPtitech/atelier/service/chat"
	"github.com/traPtitech/atelier/service/color"
	"github.com/traPtitech/atelier/service/counter"
	"github.com/traPtitech/atelier/service/palette"
	"github.com/traPtitech/atelier/service/picker"
	"github.com/traPtitech/atelier/service/rbac"
	"github.com/traPtitech/atelier/service/tag"
	"github.com/traPtitech/atelier/service/texture"
	"github.com/traPtitech/atelier/service/user"
)

type Services struct {
	ChatManager        chat.Manager
	ChatMessageCounter counter.ChatMessageCounter
	ColorManager       color.Manager
	PaletteManager     palette.Manager
	Picker             picker.Processor
	RBAC               rbac.RBAC
	TagManager         tag.Manager
	Textures           texture.Catalog
	UserCounter        counter.UserCounter
	UserManager        user.Manager
}
