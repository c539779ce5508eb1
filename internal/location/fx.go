package location

import (
	"go.uber.org/fx"

	"github.com/hscdigital/douanapp/internal/location/repository"
	"github.com/hscdigital/douanapp/internal/location/service"
)

var Module = fx.Module("location.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.Provide),
)
