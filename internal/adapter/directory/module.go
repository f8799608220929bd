package directory

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/tapnote/tapnote/internal/config"
)

// Module exposes directory client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.DirectoryAddress, p.Logger)
}
