package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirasaad/atm/infra/initializer"
	"github.com/amirasaad/atm/internal/menu"
	"github.com/amirasaad/atm/pkg/config"
	accountsvc "github.com/amirasaad/atm/pkg/service/account"
	log "github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(config.EnvFile())
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Logs go to stderr so they do not interleave with the menu.
	deps, cleanup, err := initializer.InitializeDependencies(cfg, initializer.WithLogOutput(os.Stderr))
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer cleanup()

	svc, err := accountsvc.NewService(*deps)
	if err != nil {
		return fmt.Errorf("failed to create account service: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return menu.New(svc, os.Stdin, os.Stdout, menu.WithLogger(deps.Logger)).Run(ctx)
}
