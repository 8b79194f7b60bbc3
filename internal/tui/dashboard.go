// SPDX-License-Identifier: MIT
// Copyright 2026 DreamClick Authors

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/dreamclick/dreamclick/internal/service"
	"github.com/dreamclick/dreamclick/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// DashboardModel shows the signed-in profile. It re-fetches the profile on
// entry so a role change made by an admin shows up without re-login.
type DashboardModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	refreshing bool
	copied     bool
	errMsg     string
	notice     string
}

func NewDashboardModel(ctx context.Context, auth service.ClientAuthService) *DashboardModel {
	return &DashboardModel{ctx: ctx, auth: auth}
}

func (m *DashboardModel) Init() tea.Cmd {
	m.refreshing = true
	m.copied = false
	m.errMsg = ""
	return m.cmdRefreshProfile()
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case guardNoticeMsg:
		m.notice = result.reason
		return m, nil

	case profileLoadedMsg:
		m.refreshing = false
		if result.err != nil {
			if !m.auth.Session().HasToken() {
				// The refresh hit a 401 and the session is gone.
				return m, func() tea.Msg { return loggedOutMsg{} }
			}
			m.errMsg = humanizeAuthError(result.err)
			return m, nil
		}
		m.errMsg = ""
		return m, nil

	case copiedMsg:
		m.copied = true
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "r":
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		return m, m.cmdRefreshProfile()
	case "c":
		return m, m.cmdCopyToken()
	case "u":
		return m, func() tea.Msg { return NavigateTo{Route: models.RouteAdminUsers} }
	case "l":
		return m, m.cmdLogout()
	}

	return m, nil
}

func (m *DashboardModel) View() string {
	session := m.auth.Session()

	var b strings.Builder

	if m.notice != "" {
		b.WriteString(m.notice)
		b.WriteString("\n\n")
	}

	if session.Profile == nil {
		if m.refreshing {
			b.WriteString("Loading profile...\n")
		} else {
			b.WriteString("Profile unavailable.\n")
		}
	} else {
		p := session.Profile
		b.WriteString("Name       │ ")
		b.WriteString(valueOrDash(p.Name))
		b.WriteString("\n")
		b.WriteString("Email      │ ")
		b.WriteString(valueOrDash(p.Email))
		b.WriteString("\n")
		b.WriteString("Role       │ ")
		b.WriteString(valueOrDash(p.Role.String()))
		b.WriteString("\n")
		b.WriteString("Last login │ ")
		if p.LastLogin.IsZero() {
			b.WriteString("-")
		} else {
			b.WriteString(p.LastLogin.Format(time.RFC1123))
		}
		b.WriteString("\n")
	}

	if m.copied {
		b.WriteString("\n")
		b.WriteString(okStyle.Render("Session token copied to clipboard."))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "r: refresh │ c: copy token │ l: log out"
	if session.Role().IsAdmin() {
		hotKeys = "r: refresh │ c: copy token │ u: manage users │ l: log out"
	}

	return renderPage("DASHBOARD", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *DashboardModel) cmdRefreshProfile() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		profile, err := auth.RefreshProfile(ctx)
		return profileLoadedMsg{profile: profile, err: err}
	}
}

func (m *DashboardModel) cmdCopyToken() tea.Cmd {
	token := m.auth.Session().Token

	return func() tea.Msg {
		if token == "" {
			return nil
		}
		if err := clipboard.WriteAll(token); err != nil {
			return nil
		}
		return copiedMsg{}
	}
}

func (m *DashboardModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		_ = auth.Logout(ctx)
		return loggedOutMsg{}
	}
}
