//go:build wireinject
// +build wireinject

package main

import (
	"Atrium/config"
	"Atrium/dao"
	"Atrium/handler"
	"Atrium/middleware"
	"Atrium/pkg/client"
	"Atrium/pkg/csrf"
	"Atrium/pkg/database"
	"Atrium/pkg/mail"
	"Atrium/pkg/server"
	"Atrium/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,

		csrf.NewManager,
		wire.Bind(new(handler.CsrfStore), new(*csrf.Manager)),
		wire.Bind(new(middleware.TokenValidator), new(*csrf.Manager)),
		mail.NewNotifier,

		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Home), "*"),
		wire.Struct(new(handler.Note), "*"),
		wire.Struct(new(handler.Contact), "*"),
		wire.Struct(new(handler.Blog), "*"),
		wire.Struct(new(handler.Admin), "*"),
		wire.Struct(new(handler.Files), "*"),
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Pages), "*"),

		wire.Struct(new(server.Handlers), "*"),
		server.NewGinEngine,
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
