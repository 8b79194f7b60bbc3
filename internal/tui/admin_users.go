package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/dreamclick/dreamclick/internal/service"
	"github.com/dreamclick/dreamclick/models"
	tea "github.com/charmbracelet/bubbletea"
)

const adminUsersPageSize = 10

// AdminUsersModel is the admin account-management screen: a paged listing
// with role promotion, deactivation and deletion. Every mutation re-fetches
// the current page so the listing never shows stale rows.
type AdminUsersModel struct {
	ctx   context.Context
	users service.ClientUserService

	listing models.UserListResponse
	cursor  int
	page    int
	loading bool
	errMsg  string
	status  string
}

func NewAdminUsersModel(ctx context.Context, users service.ClientUserService) *AdminUsersModel {
	return &AdminUsersModel{ctx: ctx, users: users, page: 1}
}

func (m *AdminUsersModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	m.status = ""
	return m.cmdLoadPage(m.page)
}

func (m *AdminUsersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case usersLoadedMsg:
		m.loading = false
		if result.err != nil {
			m.errMsg = humanizeAuthError(result.err)
			return m, nil
		}
		m.errMsg = ""
		m.listing = result.listing
		m.page = result.listing.Page
		if m.cursor >= len(m.listing.Users) {
			m.cursor = 0
		}
		return m, nil

	case userMutatedMsg:
		if result.err != nil {
			m.loading = false
			m.errMsg = humanizeAuthError(result.err)
			return m, nil
		}
		m.errMsg = ""
		return m, m.cmdLoadPage(m.page)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Route: models.RouteDashboard} }
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.listing.Users)-1 {
			m.cursor++
		}
	case "n":
		if m.hasNextPage() && !m.loading {
			m.loading = true
			return m, m.cmdLoadPage(m.page + 1)
		}
	case "p":
		if m.page > 1 && !m.loading {
			m.loading = true
			return m, m.cmdLoadPage(m.page - 1)
		}
	case "a":
		if user, ok := m.selected(); ok && !m.loading {
			m.loading = true
			m.status = fmt.Sprintf("toggling admin role for %s", user.Email)
			return m, m.cmdToggleAdmin(user)
		}
	case "t":
		if user, ok := m.selected(); ok && !m.loading {
			m.loading = true
			m.status = fmt.Sprintf("toggling active state for %s", user.Email)
			return m, m.cmdToggleActive(user)
		}
	case "d":
		if user, ok := m.selected(); ok && !m.loading {
			m.loading = true
			m.status = fmt.Sprintf("deleting %s", user.Email)
			return m, m.cmdDelete(user)
		}
	}

	return m, nil
}

func (m *AdminUsersModel) View() string {
	var b strings.Builder

	if m.loading && len(m.listing.Users) == 0 {
		b.WriteString("Loading accounts...\n")
	} else if len(m.listing.Users) == 0 {
		b.WriteString("No accounts found.\n")
	} else {
		for i, user := range m.listing.Users {
			cursor := " "
			if i == m.cursor {
				cursor = ">"
			}

			state := "active"
			if !user.IsActive {
				state = "inactive"
			}

			b.WriteString(fmt.Sprintf("%s %-4d %-30s %-15s %s\n",
				cursor, user.UserID, fitText(user.Email, 30), user.Role.String(), state))
		}

		b.WriteString(fmt.Sprintf("\npage %d │ %s accounts total\n", m.page, formatCount(m.listing.Total)))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.status))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("MANAGE USERS", strings.TrimRight(b.String(), "\n"),
		"esc: back │ ↑/↓: move │ n/p: page │ a: toggle admin │ t: toggle active │ d: delete")
}

func (m *AdminUsersModel) selected() (models.User, bool) {
	if m.cursor < 0 || m.cursor >= len(m.listing.Users) {
		return models.User{}, false
	}
	return m.listing.Users[m.cursor], true
}

func (m *AdminUsersModel) hasNextPage() bool {
	return int64(m.page*adminUsersPageSize) < m.listing.Total
}

func (m *AdminUsersModel) cmdLoadPage(page int) tea.Cmd {
	ctx := m.ctx
	users := m.users

	return func() tea.Msg {
		listing, err := users.ListUsers(ctx, models.ListUsersRequest{
			Page:  page,
			Limit: adminUsersPageSize,
		})
		return usersLoadedMsg{listing: listing, err: err}
	}
}

func (m *AdminUsersModel) cmdToggleAdmin(user models.User) tea.Cmd {
	ctx := m.ctx
	users := m.users

	role := models.RoleAdmin
	if user.Role.IsAdmin() {
		role = models.RoleEndUser
	}

	return func() tea.Msg {
		_, err := users.UpdateUser(ctx, user.UserID, models.UserUpdate{Role: &role})
		return userMutatedMsg{err: err}
	}
}

func (m *AdminUsersModel) cmdToggleActive(user models.User) tea.Cmd {
	ctx := m.ctx
	users := m.users

	active := !user.IsActive

	return func() tea.Msg {
		_, err := users.UpdateUser(ctx, user.UserID, models.UserUpdate{IsActive: &active})
		return userMutatedMsg{err: err}
	}
}

func (m *AdminUsersModel) cmdDelete(user models.User) tea.Cmd {
	ctx := m.ctx
	users := m.users

	return func() tea.Msg {
		err := users.DeleteUser(ctx, user.UserID)
		return userMutatedMsg{err: err}
	}
}
