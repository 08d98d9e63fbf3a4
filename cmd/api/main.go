package main

import (
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	httpadp "simple-api/internal/adapter/http"
	"simple-api/internal/config"
	"simple-api/internal/infrastructure/logging"
	"simple-api/internal/infrastructure/server"
)

func newLogger() (*zap.Logger, error) { return logging.New(httpadp.ServiceName) }

func main() {
	fx.New(
		fx.WithLogger(logging.FxLogger),
		fx.Provide(
			config.Load,
			newLogger,
			httpadp.NewHandler,
			httpadp.NewRouter,
			fx.Annotate(httpadp.NewEcho, fx.As(new(http.Handler))),
		),
		server.Module(),
	).Run()
}
