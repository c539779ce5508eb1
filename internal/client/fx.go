package client

import (
	"go.uber.org/fx"

	"github.com/hscdigital/douanapp/internal/client/repository"
	"github.com/hscdigital/douanapp/internal/client/service"
)

var Module = fx.Module("client.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.Provide),
)
