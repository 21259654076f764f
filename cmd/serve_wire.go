//go:build wireinject
// +build wireinject

package cmd

import (
	"github.com/google/wire"
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/traPtitech/atelier/repository"
	"github.com/traPtitech/atelier/router"
	"github.com/traPtitech/atelier/service"
	"github.com/traPtitech/atelier/service/color"
	"github.com/traPtitech/atelier/service/counter"
	"github.com/traPtitech/atelier/service/palette"
	"github.com/traPtitech/atelier/service/picker"
	"github.com/traPtitech/atelier/service/rbac"
	"github.com/traPtitech/atelier/service/tag"
	"github.com/traPtitech/atelier/service/texture"
)

func newServer(hub *hub.Hub, db *gorm.DB, repo repository.Repository, logger *zap.Logger, c *Config) (*Server, error) {
	wire.Build(
		color.NewManager,
		counter.NewChatMessageCounter,
		counter.NewUserCounter,
		palette.NewManager,
		picker.NewProcessor,
		rbac.New,
		tag.NewManager,
		texture.NewCatalog,
		router.Setup,
		provideChatManager,
		providePickerConfig,
		provideRouterConfig,
		provideUserManager,
		wire.Struct(new(service.Services), "*"),
		wire.Struct(new(Server), "*"),
		wire.Bind(new(repository.ArtistTagRepository), new(repository.Repository)),
		wire.Bind(new(repository.ChatMessageRepository), new(repository.Repository)),
		wire.Bind(new(repository.ColorPaletteRepository), new(repository.Repository)),
		wire.Bind(new(repository.SavedColorRepository), new(repository.Repository)),
		wire.Bind(new(repository.UserRepository), new(repository.Repository)),
	)
	return nil, nil
}
