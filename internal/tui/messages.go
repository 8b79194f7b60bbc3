package tui

import (
	"github.com/dreamclick/dreamclick/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo asks the root model to switch to another screen. The request is
// evaluated by the navigation guard before the switch happens.
type NavigateTo struct {
	Route   models.Route
	Payload tea.Msg
}

// guardNoticeMsg carries the denial reason onto the redirect target screen.
type guardNoticeMsg struct {
	reason string
	from   models.Route
}

type authDoneMsg struct {
	session models.Session
	next    models.Route
	err     error
}

type profileLoadedMsg struct {
	profile models.User
	err     error
}

type usersLoadedMsg struct {
	listing models.UserListResponse
	err     error
}

type userMutatedMsg struct {
	err error
}

type sessionExpiredMsg struct{}

type loggedOutMsg struct{}

type copiedMsg struct{}
