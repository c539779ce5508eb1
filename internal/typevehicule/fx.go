package typevehicule

import (
	"go.uber.org/fx"

	"github.com/hscdigital/douanapp/internal/typevehicule/repository"
	"github.com/hscdigital/douanapp/internal/typevehicule/service"
)

var Module = fx.Module("typevehicule.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.Provide),
)
