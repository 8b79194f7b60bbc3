package tui

import (
	"github.com/dreamclick/dreamclick/internal/service"
	"github.com/dreamclick/dreamclick/models"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is the TUI router:
//  1. keeps the active screen
//  2. handles global Ctrl+C quit
//  3. runs every NavigateTo through the navigation guard
//  4. delegates all other messages to the active screen
//
// The guard decides, the router obeys: a denied navigation lands on the
// guard's redirect target with the denial reason attached, so screens never
// need to know the access rules themselves.
type RootModel struct {
	pages    map[models.Route]tea.Model
	current  tea.Model
	route    models.Route
	services *service.ClientServices

	quitByUser bool
}

// NewRootModel registers all screens and opens startRoute.
func NewRootModel(pages map[models.Route]tea.Model, startRoute models.Route, services *service.ClientServices) RootModel {
	return RootModel{
		pages:    pages,
		current:  pages[startRoute],
		route:    startRoute,
		services: services,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every screen.
	if key, ok := msg.(tea.KeyMsg); ok {
		if key.String() == "ctrl+c" {
			r.quitByUser = true
			return r, tea.Quit
		}
	}

	switch m := msg.(type) {
	case NavigateTo:
		return r.navigate(m)

	case sessionExpiredMsg:
		// The watcher already cleared the session; route to login with an
		// explanation.
		return r.navigate(NavigateTo{
			Route:   models.RouteLogin,
			Payload: guardNoticeMsg{reason: "your session has expired, please log in again"},
		})

	case loggedOutMsg:
		return r.navigate(NavigateTo{Route: models.RouteWelcome})
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

// navigate runs the guard and switches to the granted route. Evaluating the
// guard twice for the same session yields the same screen, so redirect
// loops cannot occur: the guard's redirect targets are always reachable for
// the session that produced them.
func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	target := nav.Route
	payload := nav.Payload

	decision := r.services.GuardService.CheckAccess(r.services.AuthService.Session(), target)
	if !decision.Allowed() {
		target = decision.RedirectTo
		if decision.Reason != "" {
			payload = guardNoticeMsg{reason: decision.Reason, from: decision.From}
		}
	}

	next, exists := r.pages[target]
	if !exists {
		return r, nil
	}

	r.current = next
	r.route = target

	initCmd := r.current.Init()
	if payload != nil {
		deliver := func() tea.Msg { return payload }
		return r, tea.Batch(initCmd, deliver)
	}
	return r, initCmd
}

func (r RootModel) View() string {
	if r.current == nil {
		return renderPage("DreamClick", "", "")
	}
	return r.current.View()
}
