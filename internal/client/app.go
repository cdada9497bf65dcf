// Package client assembles the notevault client runtime: the service
// layer, the background sync job, and the terminal interface.
package client

import (
	"context"
	"errors"

	"github.com/e2ee-notes/notevault/internal/config"
	"github.com/e2ee-notes/notevault/internal/logger"
	"github.com/e2ee-notes/notevault/internal/service"
	"github.com/e2ee-notes/notevault/internal/tui"
)

type App struct {
	services     *service.ClientServices
	tui          *tui.TUI
	syncInterval config.ClientWorkers
	logger       *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workersCfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	return &App{
		services:     services,
		tui:          ui,
		syncInterval: workersCfg,
		logger:       logger,
	}, nil
}

// Run drives the client lifecycle: authenticate and unlock, start the
// background sync, and hand the terminal to the main screen. A logout
// loops back to the auth flow; quitting ends the program.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		if err := a.tui.AuthFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		// Best effort: the main screen loads from the server anyway and
		// falls back to the cache when offline.
		if err := a.services.SyncService.FullSync(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("initial sync failed")
		}

		a.services.SyncJob.Start(ctx, a.syncInterval.SyncInterval)

		logout, err := a.tui.MainLoop(ctx)
		a.services.SyncJob.Stop()
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}
	}
}
