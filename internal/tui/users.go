package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/melmoskitchen/pantry/internal/api"
)

// usersMode tracks which part of the user management screen is active
type usersMode int

const (
	usersModeList usersMode = iota
	usersModeForm
	usersModeConfirmDelete
)

// UsersModel is the user management screen. It is only reachable for admins;
// the App gates navigation on the cached user's role.
type UsersModel struct {
	backend Backend

	mode  usersMode
	table table.Model
	users []api.User

	form    *huh.Form
	editing *api.User // nil while adding
	// draft holds the last submitted form values so a failed save rebuilds
	// the form with them.
	draft *userDraft

	pendingDelete *api.User

	submitting bool
	message    string
	msgIsError bool

	styles Styles
}

// NewUsersModel creates the user management screen.
func NewUsersModel(backend Backend) UsersModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Username", Width: 16},
			{Title: "Name", Width: 20},
			{Title: "Email", Width: 24},
			{Title: "Role", Width: 8},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	return UsersModel{
		backend: backend,
		table:   t,
		styles:  DefaultStyles(),
	}
}

// Load returns the command that fetches the user list.
func (m UsersModel) Load() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		users, err := backend.ListUsers(context.Background())
		return usersMsg{users: users, err: err}
	}
}

// userDraft is one attempted submission of the add/edit form.
type userDraft struct {
	username string
	name     string
	email    string
	password string
	role     string
}

func (m *UsersModel) buildForm() tea.Cmd {
	var username, name, email, password, role string
	switch {
	case m.draft != nil:
		username = m.draft.username
		name = m.draft.name
		email = m.draft.email
		password = m.draft.password
		role = m.draft.role
	case m.editing != nil:
		username = m.editing.Username
		name = m.editing.Name
		email = m.editing.Email
		role = m.editing.Role
	default:
		role = api.RoleStaff
	}

	passwordField := huh.NewInput().Key("password").Title("Password").EchoMode(huh.EchoModePassword)
	if m.editing != nil {
		passwordField = passwordField.Description("Leave blank to keep the current password")
	}

	m.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().Key("username").Title("Username").Value(&username),
		huh.NewInput().Key("name").Title("Name").Value(&name),
		huh.NewInput().Key("email").Title("Email").Value(&email),
		passwordField.Value(&password),
		huh.NewSelect[string]().Key("role").Title("Role").
			Options(
				huh.NewOption("Staff", api.RoleStaff),
				huh.NewOption("Admin", api.RoleAdmin),
			).
			Value(&role),
	))
	return m.form.Init()
}

// Update handles user management messages.
func (m UsersModel) Update(msg tea.Msg) (UsersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case usersMsg:
		if msg.err != nil {
			m.message = errorMessage(msg.err)
			m.msgIsError = true
			return m, nil
		}
		m.users = msg.users

		rows := make([]table.Row, 0, len(msg.users))
		for _, u := range msg.users {
			rows = append(rows, table.Row{u.Username, u.Name, u.Email, u.Role})
		}
		m.table.SetRows(rows)
		return m, nil

	case userSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.message = errorMessage(msg.err)
			m.msgIsError = true
			// A failed save leaves the form editable again with the
			// attempted values; the completed state never outlives
			// its one request.
			return m, m.buildForm()
		}
		m.mode = usersModeList
		m.message = "User saved."
		m.msgIsError = false
		m.draft = nil
		return m, m.Load()

	case userDeletedMsg:
		m.submitting = false
		if msg.err != nil {
			m.message = errorMessage(msg.err)
			m.msgIsError = true
			return m, nil
		}
		m.message = "User deleted."
		m.msgIsError = false
		// One refetch per confirmed deletion.
		return m, m.Load()
	}

	switch m.mode {
	case usersModeForm:
		return m.updateForm(msg)
	case usersModeConfirmDelete:
		return m.updateConfirmDelete(msg)
	default:
		return m.updateList(msg)
	}
}

func (m UsersModel) updateList(msg tea.Msg) (UsersModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "a":
		m.mode = usersModeForm
		m.editing = nil
		m.draft = nil
		m.message = ""
		return m, m.buildForm()

	case "e", "enter":
		if u := m.selected(); u != nil {
			m.mode = usersModeForm
			m.editing = u
			m.draft = nil
			m.message = ""
			return m, m.buildForm()
		}
		return m, nil

	case "d":
		if u := m.selected(); u != nil {
			m.mode = usersModeConfirmDelete
			m.pendingDelete = u
			m.message = ""
		}
		return m, nil

	case "r":
		return m, m.Load()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m UsersModel) selected() *api.User {
	if len(m.users) == 0 {
		return nil
	}
	u := m.users[m.table.Cursor()]
	return &u
}

func (m UsersModel) updateForm(msg tea.Msg) (UsersModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.mode = usersModeList
		m.draft = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted && !m.submitting {
		m.submitting = true
		backend := m.backend

		m.draft = &userDraft{
			username: m.form.GetString("username"),
			name:     m.form.GetString("name"),
			email:    m.form.GetString("email"),
			password: m.form.GetString("password"),
			role:     m.form.GetString("role"),
		}

		if m.editing == nil {
			user := api.NewUser{
				Username: m.form.GetString("username"),
				Name:     m.form.GetString("name"),
				Email:    m.form.GetString("email"),
				Password: m.form.GetString("password"),
				Role:     m.form.GetString("role"),
			}
			return m, func() tea.Msg {
				_, err := backend.Register(context.Background(), user)
				return userSavedMsg{err: err}
			}
		}

		id := m.editing.ID
		update := api.UserUpdate{
			Username: m.form.GetString("username"),
			Name:     m.form.GetString("name"),
			Email:    m.form.GetString("email"),
			Password: m.form.GetString("password"),
			Role:     m.form.GetString("role"),
		}
		return m, func() tea.Msg {
			_, err := backend.UpdateUser(context.Background(), id, update)
			return userSavedMsg{err: err}
		}
	}

	return m, cmd
}

func (m UsersModel) updateConfirmDelete(msg tea.Msg) (UsersModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "enter":
		m.mode = usersModeList
		if m.pendingDelete == nil || m.submitting {
			return m, nil
		}
		m.submitting = true
		backend := m.backend
		id := m.pendingDelete.ID
		m.pendingDelete = nil
		return m, func() tea.Msg {
			return userDeletedMsg{err: backend.DeleteUser(context.Background(), id)}
		}

	case "n", "esc":
		// Declining touches nothing.
		m.mode = usersModeList
		m.pendingDelete = nil
		return m, nil
	}

	return m, nil
}

// View renders the user management screen.
func (m UsersModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Users"))
	b.WriteString("\n")

	if m.message != "" {
		if m.msgIsError {
			b.WriteString(m.styles.Error.Render(m.message))
		} else {
			b.WriteString(m.styles.Success.Render(m.message))
		}
		b.WriteString("\n\n")
	}

	switch m.mode {
	case usersModeForm:
		b.WriteString(m.form.View())
		b.WriteString("\n" + m.styles.Help.Render("esc cancel"))

	case usersModeConfirmDelete:
		name := ""
		if m.pendingDelete != nil {
			name = m.pendingDelete.Username
		}
		b.WriteString("Are you sure you want to delete " + name + "? (y/n)")

	default:
		b.WriteString(m.table.View())
		b.WriteString("\n" + m.styles.Help.Render("a add • e edit • d delete • r reload"))
	}

	return b.String()
}
