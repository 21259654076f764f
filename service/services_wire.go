//go:build wireinject
// +build wireinject

package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(wire.FieldsOf(new(*Services),
	"ChatManager",
	"ChatMessageCounter",
	"ColorManager",
	"PaletteManager",
	"Picker",
	"RBAC",
	"TagManager",
	"Textures",
	"UserCounter",
	"UserManager",
))
