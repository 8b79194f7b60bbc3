package tui

import (
	"context"
	"strings"

	"github.com/dreamclick/dreamclick/internal/service"
	"github.com/dreamclick/dreamclick/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	signupFieldName = iota
	signupFieldEmail
	signupFieldPassword
	signupFieldConfirm
)

// SignupModel is the account-creation form. The role toggle offers only the
// self-service roles; admin accounts are created by promoting an existing
// account through the admin screen.
type SignupModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	role       models.Role
	submitting bool
	errMsg     string
}

func NewSignupModel(ctx context.Context, auth service.ClientAuthService) *SignupModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "name"
	nameInput.CharLimit = 100
	nameInput.Width = 40
	nameInput.Focus()

	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 100
	emailInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 100
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	confirmInput := textinput.New()
	confirmInput.Placeholder = "confirm password"
	confirmInput.CharLimit = 100
	confirmInput.Width = 40
	confirmInput.EchoMode = textinput.EchoPassword
	confirmInput.EchoCharacter = '*'

	return &SignupModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{nameInput, emailInput, passwordInput, confirmInput},
		role:   models.RoleEndUser,
	}
}

func (m *SignupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeAuthError(result.err)
			return m, nil
		}
		m.errMsg = ""
		return m, func() tea.Msg { return NavigateTo{Route: models.RouteDashboard} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Route: models.RouteWelcome} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "ctrl+r":
			m.toggleRole()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			req := models.SignupRequest{
				Name:            strings.TrimSpace(m.inputs[signupFieldName].Value()),
				Email:           strings.TrimSpace(m.inputs[signupFieldEmail].Value()),
				Password:        m.inputs[signupFieldPassword].Value(),
				ConfirmPassword: m.inputs[signupFieldConfirm].Value(),
				Role:            m.role,
			}

			if req.Name == "" || req.Email == "" || req.Password == "" {
				m.errMsg = "name, email and password are required"
				return m, nil
			}
			if req.Password != req.ConfirmPassword {
				m.errMsg = "passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignup(req)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SignupModel) View() string {
	var b strings.Builder

	b.WriteString("Name     │ [")
	b.WriteString(m.inputs[signupFieldName].View())
	b.WriteString("]\n")
	b.WriteString("Email    │ [")
	b.WriteString(m.inputs[signupFieldEmail].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[signupFieldPassword].View())
	b.WriteString("]\n")
	b.WriteString("Confirm  │ [")
	b.WriteString(m.inputs[signupFieldConfirm].View())
	b.WriteString("]\n")
	b.WriteString("Role     │ ")
	b.WriteString(m.role.String())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ ctrl+r: toggle role │ enter: submit")
}

func (m *SignupModel) cmdSignup(req models.SignupRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.Signup(ctx, req)
		return authDoneMsg{session: session, next: models.RouteDashboard, err: err}
	}
}

func (m *SignupModel) toggleRole() {
	if m.role == models.RoleEndUser {
		m.role = models.RoleContentCreator
	} else {
		m.role = models.RoleEndUser
	}
}

func (m *SignupModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *SignupModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
