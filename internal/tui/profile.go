package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/melmoskitchen/pantry/internal/api"
	"github.com/melmoskitchen/pantry/internal/auth"
	"github.com/melmoskitchen/pantry/internal/avatar"
	"github.com/melmoskitchen/pantry/internal/errors"
)

// profileTab identifies a section of the profile screen
type profileTab int

const (
	// tabGeneral edits name, email, phone, and date of birth
	tabGeneral profileTab = iota
	// tabPassword rotates the password
	tabPassword
	// tabPhoto manages the avatar
	tabPhoto
)

var profileTabNames = []string{"General", "Password", "Photo"}

// errorMessage extracts the user-facing message, dropping the error code
// prefix that coded errors carry.
func errorMessage(err error) string {
	if perr, ok := err.(*errors.PantryError); ok {
		return perr.Message
	}
	return err.Error()
}

// ProfileModel is the profile screen.
type ProfileModel struct {
	backend Backend
	auth    *auth.Context

	tab profileTab

	generalForm *huh.Form
	// draft holds the last submitted general-tab values so a failed save
	// rebuilds the form with them instead of the cached user.
	draft *api.ProfileUpdate

	currentPw textinput.Model
	newPw     textinput.Model
	confirmPw textinput.Model
	pwFocus   int

	photoPath        textinput.Model
	preview          string
	confirmingRemove bool

	submitting bool
	message    string
	msgIsError bool

	styles Styles
}

// NewProfileModel creates the profile screen.
func NewProfileModel(backend Backend, authCtx *auth.Context) ProfileModel {
	newPasswordInput := func(prompt string) textinput.Model {
		in := textinput.New()
		in.Prompt = prompt
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
		return in
	}

	photoPath := textinput.New()
	photoPath.Prompt = "Image file: "
	photoPath.Placeholder = "path/to/photo.png (max 500KB)"

	m := ProfileModel{
		backend:   backend,
		auth:      authCtx,
		currentPw: newPasswordInput("Current password: "),
		newPw:     newPasswordInput("New password: "),
		confirmPw: newPasswordInput("Confirm new password: "),
		photoPath: photoPath,
		styles:    DefaultStyles(),
	}
	m.currentPw.Focus()
	m.rebuildGeneralForm()
	return m
}

// rebuildGeneralForm seeds the general tab from the cached user.
func (m *ProfileModel) rebuildGeneralForm() {
	var user api.User
	if u := m.auth.CurrentUser(); u != nil {
		user = *u
	}

	name, email, phone, dob := user.Name, user.Email, user.Phone, user.DOB
	if m.draft != nil {
		name, email, phone, dob = m.draft.Name, m.draft.Email, m.draft.Phone, m.draft.DOB
	}

	m.generalForm = huh.NewForm(huh.NewGroup(
		huh.NewInput().Key("name").Title("Name").Value(&name),
		huh.NewInput().Key("email").Title("Email").Value(&email),
		huh.NewInput().Key("phone").Title("Phone").Value(&phone),
		huh.NewInput().Key("dob").Title("Date of birth").Description("YYYY-MM-DD").Value(&dob),
	))
}

func (m ProfileModel) formInit() tea.Cmd {
	return m.generalForm.Init()
}

// Update handles profile screen messages.
func (m ProfileModel) Update(msg tea.Msg) (ProfileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+t" {
			m.tab = (m.tab + 1) % 3
			m.message = ""
			m.confirmingRemove = false
			if m.tab == tabGeneral {
				m.rebuildGeneralForm()
				return m, m.formInit()
			}
			return m, nil
		}

	case profileSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.message = errorMessage(msg.err)
			m.msgIsError = true
			// A failed save leaves the form editable again with the
			// attempted values; the completed state never outlives
			// its one request.
			if m.tab == tabGeneral {
				m.rebuildGeneralForm()
				return m, m.formInit()
			}
			return m, nil
		}
		// The server-confirmed user replaces the cache wholesale.
		m.auth.UpdateUser(msg.user)
		m.message = "Profile updated successfully!"
		m.msgIsError = false
		m.preview = ""
		m.photoPath.SetValue("")
		m.draft = nil
		m.rebuildGeneralForm()
		return m, m.formInit()

	case passwordChangedMsg:
		m.submitting = false
		if msg.err != nil {
			m.message = errorMessage(msg.err)
			m.msgIsError = true
			return m, nil
		}
		m.message = "Password changed successfully!"
		m.msgIsError = false
		m.currentPw.SetValue("")
		m.newPw.SetValue("")
		m.confirmPw.SetValue("")
		return m, nil
	}

	switch m.tab {
	case tabGeneral:
		return m.updateGeneral(msg)
	case tabPassword:
		return m.updatePassword(msg)
	default:
		return m.updatePhoto(msg)
	}
}

func (m ProfileModel) updateGeneral(msg tea.Msg) (ProfileModel, tea.Cmd) {
	form, cmd := m.generalForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.generalForm = f
	}

	if m.generalForm.State == huh.StateCompleted && !m.submitting {
		m.submitting = true
		m.message = ""

		update := api.ProfileUpdate{
			Name:  m.generalForm.GetString("name"),
			Email: m.generalForm.GetString("email"),
			Phone: m.generalForm.GetString("phone"),
			DOB:   m.generalForm.GetString("dob"),
		}
		if u := m.auth.CurrentUser(); u != nil {
			update.AvatarURL = u.AvatarURL
		}
		m.draft = &update

		backend := m.backend
		return m, func() tea.Msg {
			user, err := backend.UpdateProfile(context.Background(), update)
			return profileSavedMsg{user: user, err: err}
		}
	}

	return m, cmd
}

func (m ProfileModel) updatePassword(msg tea.Msg) (ProfileModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "tab", "down":
		m.pwFocus = (m.pwFocus + 1) % 3
		m.focusPasswordField()
		return m, nil
	case "shift+tab", "up":
		m.pwFocus = (m.pwFocus + 2) % 3
		m.focusPasswordField()
		return m, nil
	case "enter":
		return m.submitPassword()
	}

	var cmd tea.Cmd
	switch m.pwFocus {
	case 0:
		m.currentPw, cmd = m.currentPw.Update(msg)
	case 1:
		m.newPw, cmd = m.newPw.Update(msg)
	default:
		m.confirmPw, cmd = m.confirmPw.Update(msg)
	}
	return m, cmd
}

func (m *ProfileModel) focusPasswordField() {
	m.currentPw.Blur()
	m.newPw.Blur()
	m.confirmPw.Blur()
	switch m.pwFocus {
	case 0:
		m.currentPw.Focus()
	case 1:
		m.newPw.Focus()
	default:
		m.confirmPw.Focus()
	}
}

func (m ProfileModel) submitPassword() (ProfileModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	// Confirmation mismatch never reaches the network.
	if m.newPw.Value() != m.confirmPw.Value() {
		m.message = errors.NewPasswordMismatchError().Message
		m.msgIsError = true
		return m, nil
	}

	m.submitting = true
	m.message = ""

	backend := m.backend
	current, next := m.currentPw.Value(), m.newPw.Value()
	return m, func() tea.Msg {
		return passwordChangedMsg{err: backend.ChangePassword(context.Background(), current, next)}
	}
}

func (m ProfileModel) updatePhoto(msg tea.Msg) (ProfileModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirmingRemove {
		switch key.String() {
		case "y", "enter":
			m.confirmingRemove = false
			m.submitting = true
			backend := m.backend
			return m, func() tea.Msg {
				user, err := backend.SetAvatar(context.Background(), nil)
				return profileSavedMsg{user: user, err: err}
			}
		case "n", "esc":
			m.confirmingRemove = false
		}
		return m, nil
	}

	switch key.String() {
	case "enter":
		preview, err := avatar.EncodeFile(strings.TrimSpace(m.photoPath.Value()))
		if err != nil {
			// Over-limit files leave the preview untouched.
			m.message = errorMessage(err)
			m.msgIsError = true
			return m, nil
		}
		m.preview = preview
		m.message = "Preview ready. Press ctrl+s to save."
		m.msgIsError = false
		return m, nil

	case "ctrl+s":
		if m.preview == "" || m.submitting {
			return m, nil
		}
		m.submitting = true
		m.message = ""
		backend := m.backend
		preview := m.preview
		return m, func() tea.Msg {
			user, err := backend.SetAvatar(context.Background(), &preview)
			return profileSavedMsg{user: user, err: err}
		}

	case "ctrl+r":
		m.confirmingRemove = true
		return m, nil
	}

	var cmd tea.Cmd
	m.photoPath, cmd = m.photoPath.Update(msg)
	if !m.photoPath.Focused() {
		cmd = m.photoPath.Focus()
	}
	return m, cmd
}

// View renders the profile screen.
func (m ProfileModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Profile"))
	b.WriteString("\n")

	var tabs []string
	for i, name := range profileTabNames {
		if profileTab(i) == m.tab {
			tabs = append(tabs, m.styles.ActiveTab.Render(name))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(name))
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	if m.message != "" {
		if m.msgIsError {
			b.WriteString(m.styles.Error.Render(m.message))
		} else {
			b.WriteString(m.styles.Success.Render(m.message))
		}
		b.WriteString("\n\n")
	}

	switch m.tab {
	case tabGeneral:
		b.WriteString(m.generalForm.View())
	case tabPassword:
		b.WriteString(m.currentPw.View() + "\n")
		b.WriteString(m.newPw.View() + "\n")
		b.WriteString(m.confirmPw.View() + "\n")
		b.WriteString("\n" + m.styles.Help.Render("enter submit • tab next field"))
	default:
		b.WriteString(m.viewPhoto())
	}

	b.WriteString("\n" + m.styles.Help.Render("ctrl+t switch tab"))
	return b.String()
}

func (m ProfileModel) viewPhoto() string {
	var b strings.Builder

	if m.confirmingRemove {
		b.WriteString("Are you sure you want to remove your profile photo? (y/n)")
		return b.String()
	}

	b.WriteString(m.photoPath.View())
	b.WriteString("\n")

	if m.preview != "" {
		short := m.preview
		if len(short) > 48 {
			short = short[:48] + "…"
		}
		b.WriteString(m.styles.Muted.Render("Preview: " + short))
		b.WriteString("\n")
	}

	b.WriteString("\n" + m.styles.Help.Render("enter preview • ctrl+s save • ctrl+r remove photo"))
	return b.String()
}
