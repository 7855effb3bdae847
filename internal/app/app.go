package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/clubmate/backend/internal/adapters/scheduler"
	"github.com/clubmate/backend/internal/domain/bus"
	"github.com/clubmate/backend/internal/domain/limits"
	"github.com/clubmate/backend/internal/ports/secondary"
	"github.com/clubmate/backend/pkg/logger"
)

// App owns the assembled object graph and the process lifecycle.
type App struct {
	provider *serviceProvider

	bus  *bus.Bus
	jobs *scheduler.Scheduler
}

func NewApp() (*App, error) {
	provider := newServiceProvider()

	messageBus, err := provider.Bus()
	if err != nil {
		return nil, err
	}
	jobs, err := provider.Scheduler()
	if err != nil {
		return nil, err
	}

	return &App{
		provider: provider,
		bus:      messageBus,
		jobs:     jobs,
	}, nil
}

// Bus exposes the dispatch layer to transports built on top of the app.
func (a *App) Bus() *bus.Bus {
	return a.bus
}

// Limits exposes the plan-ceiling service to the layer that owns teams.
func (a *App) Limits(teams secondary.TeamCounter) *limits.Service {
	return a.provider.Limits(teams)
}

// Run starts the background jobs and blocks until SIGINT or SIGTERM.
func (a *App) Run() error {
	if err := a.jobs.Start(); err != nil {
		return err
	}
	logger.Log.Info("application started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.shutdown()
	return nil
}

func (a *App) shutdown() {
	logger.Log.Info("shutting down")

	a.jobs.Stop()

	if db, err := a.provider.Cfg().Database.DB(); err == nil {
		if errClose := db.Close(); errClose != nil {
			logger.Log.Errorf("failed to close database connection: %v", errClose)
		}
	}

	// Sync on stdout may fail on some platforms, nothing to do about it.
	_ = logger.Cleanup()
}
