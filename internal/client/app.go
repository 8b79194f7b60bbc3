package client

import (
	"context"
	"errors"

	"github.com/dreamclick/dreamclick/internal/config"
	"github.com/dreamclick/dreamclick/internal/logger"
	"github.com/dreamclick/dreamclick/internal/service"
	"github.com/dreamclick/dreamclick/internal/store"
	"github.com/dreamclick/dreamclick/internal/tui"
	"github.com/dreamclick/dreamclick/internal/workers"
)

// App is the client application: services, the terminal UI and the session
// watcher, wired together and run until the user quits.
type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	watcher  *workers.SessionWatcher
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and a ui")
	}

	watcher := workers.NewSessionWatcher(
		services.AuthService,
		workersCfg.SessionCheckInterval,
		ui.NotifySessionExpired,
		log,
	)

	return &App{
		services: services,
		ui:       ui,
		watcher:  watcher,
		logger:   log,
	}, nil
}

// Run restores any persisted session, starts the watcher and blocks in the
// UI loop. A user-initiated quit is a clean exit.
func (a *App) Run() error {
	ctx := context.Background()

	if _, err := a.services.AuthService.RestoreSession(ctx); err != nil {
		if errors.Is(err, store.ErrNoLocalSession) {
			a.logger.Debug().Msg("no persisted session found")
		} else {
			a.logger.Warn().Err(err).Msg("session restore failed, starting signed out")
		}
	}

	workers.NewWorkers(a.watcher).Run()
	defer a.watcher.Stop()

	if err := a.ui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Msg("client closed by user")
			return nil
		}
		return err
	}

	return nil
}
