package config

import (
	"log/slog"

	"github.com/amirasaad/atm/pkg/repository"
)

// Deps holds the infrastructure dependencies for building the services.
type Deps struct {
	Directory repository.Directory
	Logger    *slog.Logger
	Config    *App
}
