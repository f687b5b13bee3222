package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/melmoskitchen/pantry/internal/api"
	"github.com/melmoskitchen/pantry/internal/auth"
	"github.com/melmoskitchen/pantry/internal/router"
	"github.com/melmoskitchen/pantry/internal/session"
	"github.com/melmoskitchen/pantry/internal/tenant"
)

// loginStep is the two-step login flow state
type loginStep int

const (
	// stepTenantSelect asks the user to pick a workspace
	stepTenantSelect loginStep = iota
	// stepCredentials asks for username and password
	stepCredentials
)

// LoginModel is the login screen: workspace selection followed by credentials.
type LoginModel struct {
	auth  *auth.Context
	store session.Store

	step     loginStep
	cursor   int
	selected tenant.Tenant

	username textinput.Model
	password textinput.Model
	focus    int

	submitting bool
	errMsg     string

	styles Styles
}

// NewLoginModel creates the login screen.
func NewLoginModel(authCtx *auth.Context, store session.Store) LoginModel {
	username := textinput.New()
	username.Placeholder = "Enter your username"
	username.Prompt = "Username: "
	username.Focus()

	password := textinput.New()
	password.Placeholder = "Enter your password"
	password.Prompt = "Password: "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return LoginModel{
		auth:     authCtx,
		store:    store,
		username: username,
		password: password,
		styles:   DefaultStyles(),
	}
}

// Update handles login screen messages.
func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.step == stepTenantSelect {
			return m.updateTenantSelect(msg)
		}
		return m.updateCredentials(msg)

	case loginDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		return m, func() tea.Msg {
			return navigateMsg{route: router.RouteDashboard}
		}
	}

	return m, nil
}

func (m LoginModel) updateTenantSelect(msg tea.KeyMsg) (LoginModel, tea.Cmd) {
	options := tenant.All()

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(options)-1 {
			m.cursor++
		}
	case "enter":
		m.selected = options[m.cursor]
		// Selecting a workspace persists it immediately.
		if err := m.store.SetTenantID(m.selected.ID); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.step = stepCredentials
		m.focus = 0
		m.username.Focus()
		m.password.Blur()
	}

	return m, nil
}

func (m LoginModel) updateCredentials(msg tea.KeyMsg) (LoginModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Back to the workspace picker. Form and selection reset; the
		// already-persisted tenant id stays until a new selection
		// overwrites it.
		m.step = stepTenantSelect
		m.selected = tenant.Tenant{}
		m.username.SetValue("")
		m.password.SetValue("")
		m.errMsg = ""
		return m, nil

	case "tab", "shift+tab", "up", "down":
		m.focus = (m.focus + 1) % 2
		if m.focus == 0 {
			m.username.Focus()
			m.password.Blur()
		} else {
			m.password.Focus()
			m.username.Blur()
		}
		return m, nil

	case "enter":
		if m.submitting {
			// One in-flight request at a time.
			return m, nil
		}
		m.submitting = true
		m.errMsg = ""
		return m, m.submit()
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m LoginModel) submit() tea.Cmd {
	creds := api.Credentials{
		Username: m.username.Value(),
		Password: m.password.Value(),
	}
	authCtx := m.auth
	return func() tea.Msg {
		return loginDoneMsg{err: authCtx.Login(context.Background(), creds)}
	}
}

// View renders the login screen.
func (m LoginModel) View() string {
	if m.step == stepTenantSelect {
		return m.viewTenantSelect()
	}
	return m.viewCredentials()
}

func (m LoginModel) viewTenantSelect() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Select Workspace"))
	b.WriteString("\n\n")

	for i, t := range tenant.All() {
		line := fmt.Sprintf("%s — %s", t.Name, t.Tagline)
		if i == m.cursor {
			b.WriteString(m.styles.Highlighted.Render("> " + line))
		} else {
			b.WriteString(m.styles.Muted.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + m.styles.Error.Render(m.errMsg))
	}

	b.WriteString("\n" + m.styles.Help.Render("↑/↓ select • enter confirm • ctrl+c quit"))
	return b.String()
}

func (m LoginModel) viewCredentials() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Welcome Back"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render(m.selected.Name))
	b.WriteString("\n\n")

	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(m.username.View())
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n" + m.styles.Muted.Render("Logging in..."))
	}

	b.WriteString("\n" + m.styles.Help.Render("enter login • tab switch field • esc back"))
	return b.String()
}
