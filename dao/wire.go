//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUserDAO,
	NewNoteDAO,
	NewBlogPostDAO,
	NewContactMessageDAO,
	NewVisitorDAO,
)
