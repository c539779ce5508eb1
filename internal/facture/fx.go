package facture

import (
	"go.uber.org/fx"

	"github.com/hscdigital/douanapp/internal/facture/repository"
	"github.com/hscdigital/douanapp/internal/facture/service"
)

var Module = fx.Module("facture.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.Provide),
)
