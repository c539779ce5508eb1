package entreprise

import (
	"go.uber.org/fx"

	"github.com/hscdigital/douanapp/internal/entreprise/repository"
	"github.com/hscdigital/douanapp/internal/entreprise/service"
)

var Module = fx.Module("entreprise.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.Provide),
)
