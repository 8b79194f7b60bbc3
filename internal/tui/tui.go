// Package tui implements the terminal user interface of the DreamClick
// client. Every screen is a Bubble Tea model; the root model routes between
// them and runs every navigation through the client-side guards.
package tui

import (
	"context"
	"errors"

	"github.com/dreamclick/dreamclick/internal/logger"
	"github.com/dreamclick/dreamclick/internal/service"
	"github.com/dreamclick/dreamclick/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the application")

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger

	program *tea.Program
}

func New(services *service.ClientServices, log *logger.Logger) (*TUI, error) {
	return &TUI{services: services, logger: log}, nil
}

// Run builds the screen set, picks the start route based on the restored
// session, and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[models.Route]tea.Model{
		models.RouteWelcome:    NewWelcomeModel(),
		models.RouteLogin:      NewLoginModel(ctx, t.services.AuthService),
		models.RouteSignup:     NewSignupModel(ctx, t.services.AuthService),
		models.RouteDashboard:  NewDashboardModel(ctx, t.services.AuthService),
		models.RouteAdminUsers: NewAdminUsersModel(ctx, t.services.UserService),
	}

	start := models.RouteWelcome
	if t.services.GuardService.CheckAccess(t.services.AuthService.Session(), models.RouteDashboard).Allowed() {
		start = models.RouteDashboard
	}

	root := NewRootModel(pages, start, t.services)
	t.program = tea.NewProgram(root, tea.WithContext(ctx), tea.WithAltScreen())

	finalModel, err := t.program.Run()
	if err != nil {
		return err
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		return ErrUserQuit
	}

	return nil
}

// NotifySessionExpired is called from the background session watcher. It
// injects the expiry event into the running UI so the current screen can
// give way to the login form.
func (t *TUI) NotifySessionExpired() {
	if t.program == nil {
		return
	}
	t.program.Send(sessionExpiredMsg{})
}
