//go:build wireinject

package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(NoteService), "*"),
	wire.Bind(new(INoteService), new(*NoteService)),

	wire.Struct(new(BlogService), "*"),
	wire.Bind(new(IBlogService), new(*BlogService)),

	wire.Struct(new(ContactService), "*"),
	wire.Bind(new(IContactService), new(*ContactService)),

	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(VisitorService), "*"),
	wire.Bind(new(IVisitorService), new(*VisitorService)),

	wire.Struct(new(FileService), "*"),
	wire.Bind(new(IFileService), new(*FileService)),
)
