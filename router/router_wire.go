//go:build wireinject
// +build wireinject

package router

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/traPtitech/atelier/repository"
	v1 "github.com/traPtitech/atelier/router/v1"
	"github.com/traPtitech/atelier/service"
)

func newRouter(repo repository.Repository, ss *service.Services, logger *zap.Logger, config *Config) *Router {
	wire.Build(
		service.ProviderSet,
		newEcho,
		provideV1Config,
		wire.Struct(new(v1.Handlers), "*"),
		wire.Struct(new(Router), "*"),
	)
	return nil
}
