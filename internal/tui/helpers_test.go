package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/melmoskitchen/pantry/internal/api"
)

// fakeBackend records every call so tests can assert exact call counts.
type fakeBackend struct {
	categories []api.Category
	products   map[string][]api.Product
	history    []api.HistoryEntry
	users      []api.User

	err error

	categoriesCalls     int
	productsCalls       int
	historyCalls        int
	listUsersCalls      int
	registerCalls       int
	updateUserCalls     int
	deleteUserCalls     int
	updateProfileCalls  int
	setAvatarCalls      int
	changePasswordCalls int

	deletedIDs    []string
	lastRegister  api.NewUser
	lastUpdateID  string
	lastUpdate    api.UserUpdate
	lastProfile   api.ProfileUpdate
	lastAvatar    *string
	avatarCleared bool
	lastCurrent   string
	lastNew       string
}

func (f *fakeBackend) Categories(ctx context.Context) ([]api.Category, error) {
	f.categoriesCalls++
	return f.categories, f.err
}

func (f *fakeBackend) Products(ctx context.Context, categoryID string) ([]api.Product, error) {
	f.productsCalls++
	return f.products[categoryID], f.err
}

func (f *fakeBackend) History(ctx context.Context) ([]api.HistoryEntry, error) {
	f.historyCalls++
	return f.history, f.err
}

func (f *fakeBackend) ListUsers(ctx context.Context) ([]api.User, error) {
	f.listUsersCalls++
	return f.users, f.err
}

func (f *fakeBackend) Register(ctx context.Context, user api.NewUser) (*api.User, error) {
	f.registerCalls++
	f.lastRegister = user
	return &api.User{ID: "new", Username: user.Username, Role: user.Role}, f.err
}

func (f *fakeBackend) UpdateUser(ctx context.Context, id string, update api.UserUpdate) (*api.User, error) {
	f.updateUserCalls++
	f.lastUpdateID = id
	f.lastUpdate = update
	return &api.User{ID: id, Username: update.Username, Role: update.Role}, f.err
}

func (f *fakeBackend) DeleteUser(ctx context.Context, id string) error {
	f.deleteUserCalls++
	f.deletedIDs = append(f.deletedIDs, id)
	return f.err
}

func (f *fakeBackend) UpdateProfile(ctx context.Context, update api.ProfileUpdate) (*api.User, error) {
	f.updateProfileCalls++
	f.lastProfile = update
	return &api.User{ID: "u1", Name: update.Name, Email: update.Email}, f.err
}

func (f *fakeBackend) SetAvatar(ctx context.Context, avatarURL *string) (*api.User, error) {
	f.setAvatarCalls++
	f.lastAvatar = avatarURL
	if avatarURL == nil {
		f.avatarCleared = true
		return &api.User{ID: "u1"}, f.err
	}
	return &api.User{ID: "u1", AvatarURL: *avatarURL}, f.err
}

func (f *fakeBackend) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	f.changePasswordCalls++
	f.lastCurrent = currentPassword
	f.lastNew = newPassword
	return f.err
}

var _ Backend = (*fakeBackend)(nil)

// key builds a KeyMsg for a single printable rune or a named key.
func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
