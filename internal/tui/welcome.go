package tui

import (
	"strings"

	"github.com/dreamclick/dreamclick/models"
	tea "github.com/charmbracelet/bubbletea"
)

type WelcomeModel struct {
	items  []string
	routes []models.Route
	idx    int
	status string
}

func NewWelcomeModel() *WelcomeModel {
	return &WelcomeModel{
		items:  []string{"Log in", "Create an account"},
		routes: []models.Route{models.RouteLogin, models.RouteSignup},
	}
}

func (m *WelcomeModel) Init() tea.Cmd {
	return nil
}

func (m *WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(guardNoticeMsg); ok {
		m.status = notice.reason
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		route := m.routes[m.idx]
		return m, func() tea.Msg { return NavigateTo{Route: route} }
	}

	return m, nil
}

func (m *WelcomeModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(cursor)
		b.WriteString(" ")
		b.WriteString(item)
		b.WriteString("\n")
	}

	return renderPage("DREAMCLICK", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move")
}
