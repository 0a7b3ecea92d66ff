package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirasaad/atm/infra/initializer"
	"github.com/amirasaad/atm/pkg/config"
	accountsvc "github.com/amirasaad/atm/pkg/service/account"
	"github.com/amirasaad/atm/webapi"
	log "github.com/charmbracelet/log"
)

// @title ATM API
// @version 1.0.0
// @description ATM account ledger API documentation
// @contact.name API Support
// @license.name MIT
// @host localhost:3000
// @BasePath /
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

	// Initialize all dependencies
	deps, cleanup, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer cleanup()
	logger := deps.Logger

	svc, err := accountsvc.NewService(*deps)
	if err != nil {
		return fmt.Errorf("failed to create account service: %w", err)
	}

	app := webapi.NewApp(svc, cfg)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		logger.Info("Shutting down server")
		if err := app.Shutdown(); err != nil {
			logger.Error("Server shutdown failed", "error", err)
		}
	}()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
		"db_driver", cfg.DB.Driver,
	)

	return app.Listen(addr)
}
