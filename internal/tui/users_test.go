package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melmoskitchen/pantry/internal/api"
)

func loadedUsersModel(t *testing.T, backend *fakeBackend) UsersModel {
	t.Helper()

	m := NewUsersModel(backend)
	m, _ = m.Update(usersMsg{users: backend.users})
	require.Len(t, m.users, len(backend.users))
	return m
}

func TestDeleteConfirmedIssuesOneDeleteAndOneRefetch(t *testing.T) {
	backend := &fakeBackend{users: []api.User{
		{ID: "u1", Username: "mel", Role: api.RoleAdmin},
		{ID: "u2", Username: "raj", Role: api.RoleStaff},
	}}
	m := loadedUsersModel(t, backend)

	m, cmd := m.Update(key("d"))
	require.Nil(t, cmd)
	assert.Equal(t, usersModeConfirmDelete, m.mode)

	m, cmd = m.Update(key("y"))
	require.NotNil(t, cmd)

	msg := cmd()
	deleted, ok := msg.(userDeletedMsg)
	require.True(t, ok)
	require.NoError(t, deleted.err)

	assert.Equal(t, 1, backend.deleteUserCalls)
	assert.Equal(t, []string{"u1"}, backend.deletedIDs)

	// The deletion result triggers exactly one list refetch.
	m, cmd = m.Update(deleted)
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, 1, backend.listUsersCalls)
	assert.Equal(t, 1, backend.deleteUserCalls)
}

func TestDeleteDeclinedIssuesNoCalls(t *testing.T) {
	backend := &fakeBackend{users: []api.User{{ID: "u1", Username: "mel"}}}
	m := loadedUsersModel(t, backend)

	m, _ = m.Update(key("d"))
	m, cmd := m.Update(key("n"))

	assert.Nil(t, cmd)
	assert.Equal(t, usersModeList, m.mode)
	assert.Equal(t, 0, backend.deleteUserCalls)
	assert.Equal(t, 0, backend.listUsersCalls)
}

func TestDeleteTargetsSelectedRow(t *testing.T) {
	backend := &fakeBackend{users: []api.User{
		{ID: "u1", Username: "mel"},
		{ID: "u2", Username: "raj"},
	}}
	m := loadedUsersModel(t, backend)

	m.table.SetCursor(1)
	m, _ = m.Update(key("d"))
	m, cmd := m.Update(key("y"))
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, []string{"u2"}, backend.deletedIDs)
}

func TestAddUserOpensFormAndEscCancels(t *testing.T) {
	backend := &fakeBackend{}
	m := loadedUsersModel(t, backend)

	m, _ = m.Update(key("a"))
	assert.Equal(t, usersModeForm, m.mode)
	assert.Nil(t, m.editing)

	m, _ = m.Update(key("esc"))
	assert.Equal(t, usersModeList, m.mode)
	assert.Equal(t, 0, backend.registerCalls)
}

func TestEditPrefillsSelectedUser(t *testing.T) {
	backend := &fakeBackend{users: []api.User{
		{ID: "u1", Username: "mel", Name: "Mel", Email: "mel@example.com", Role: api.RoleAdmin},
	}}
	m := loadedUsersModel(t, backend)

	m, _ = m.Update(key("e"))
	require.Equal(t, usersModeForm, m.mode)
	require.NotNil(t, m.editing)
	assert.Equal(t, "u1", m.editing.ID)
}

func TestUserSavedReloadsList(t *testing.T) {
	backend := &fakeBackend{}
	m := loadedUsersModel(t, backend)
	m.mode = usersModeForm

	m, cmd := m.Update(userSavedMsg{})
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, usersModeList, m.mode)
	assert.Equal(t, 1, backend.listUsersCalls)
}

func TestCompletedAddFormSubmitsExactlyOnce(t *testing.T) {
	backend := &fakeBackend{users: []api.User{{ID: "u1", Username: "mel", Role: api.RoleAdmin}}}
	m := loadedUsersModel(t, backend)

	m, _ = m.Update(key("a"))
	require.Equal(t, usersModeForm, m.mode)

	m.form.State = huh.StateCompleted
	m, cmd := m.Update(key("x"))
	require.NotNil(t, cmd)

	saved, ok := cmd().(userSavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.err)
	assert.Equal(t, 1, backend.registerCalls)

	m, _ = m.Update(saved)
	assert.Equal(t, usersModeList, m.mode)
	assert.Equal(t, "User saved.", m.message)
	assert.Equal(t, 1, backend.registerCalls)
}

func TestFailedAddDoesNotResubmit(t *testing.T) {
	backend := &fakeBackend{
		users: []api.User{{ID: "u1", Username: "mel", Role: api.RoleAdmin}},
		err:   errors.New("username already taken"),
	}
	m := loadedUsersModel(t, backend)

	m, _ = m.Update(key("a"))
	m.form.State = huh.StateCompleted
	m, cmd := m.Update(key("x"))
	require.NotNil(t, cmd)

	saved, ok := cmd().(userSavedMsg)
	require.True(t, ok)
	require.Error(t, saved.err)
	assert.Equal(t, 1, backend.registerCalls)

	// The failure keeps the form open for another attempt.
	m, _ = m.Update(saved)
	assert.Equal(t, usersModeForm, m.mode)
	assert.Equal(t, "username already taken", m.message)
	assert.True(t, m.msgIsError)
	require.NotEqual(t, huh.StateCompleted, m.form.State)

	for i := 0; i < 3; i++ {
		var next tea.Cmd
		m, next = m.Update(key("x"))
		if next != nil {
			if _, issued := next().(userSavedMsg); issued {
				t.Fatal("a keypress after a failed save issued another request")
			}
		}
	}
	assert.Equal(t, 1, backend.registerCalls)
}

func TestFailedEditDoesNotResubmit(t *testing.T) {
	backend := &fakeBackend{
		users: []api.User{{ID: "u1", Username: "mel", Role: api.RoleAdmin}},
		err:   errors.New("email already in use"),
	}
	m := loadedUsersModel(t, backend)

	m, _ = m.Update(key("e"))
	require.NotNil(t, m.editing)

	m.form.State = huh.StateCompleted
	m, cmd := m.Update(key("x"))
	require.NotNil(t, cmd)

	saved, ok := cmd().(userSavedMsg)
	require.True(t, ok)
	require.Error(t, saved.err)
	assert.Equal(t, 1, backend.updateUserCalls)

	m, _ = m.Update(saved)
	assert.Equal(t, usersModeForm, m.mode)
	require.NotEqual(t, huh.StateCompleted, m.form.State)

	for i := 0; i < 3; i++ {
		m, _ = m.Update(key("x"))
	}
	assert.Equal(t, 1, backend.updateUserCalls)
	assert.Equal(t, 0, backend.registerCalls)
}
