package main

import (
	"go.uber.org/fx"

	"github.com/hscdigital/douanapp/internal/logger"
	"github.com/hscdigital/douanapp/internal/server"
)

func main() {
	app := fx.New(
		logger.Module,
		server.Module,
	)
	app.Run()
}
