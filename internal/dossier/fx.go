package dossier

import (
	"go.uber.org/fx"

	"github.com/hscdigital/douanapp/internal/dossier/repository"
	"github.com/hscdigital/douanapp/internal/dossier/service"
)

var Module = fx.Module("dossier.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.Provide),
)
