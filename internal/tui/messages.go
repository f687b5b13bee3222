package tui

import (
	"github.com/melmoskitchen/pantry/internal/api"
	"github.com/melmoskitchen/pantry/internal/router"
)

// Custom messages for view events

// navigateMsg switches the application to another screen. The route guard is
// applied at the point of handling, never bypassed.
type navigateMsg struct {
	route router.Route
}

// loginDoneMsg reports the outcome of a login submission
type loginDoneMsg struct {
	err error
}

// categoriesMsg carries the dashboard data
type categoriesMsg struct {
	categories []api.Category
	err        error
}

// productsMsg carries one category's product list
type productsMsg struct {
	category api.Category
	products []api.Product
	err      error
}

// historyMsg carries the stock movement log
type historyMsg struct {
	entries []api.HistoryEntry
	err     error
}

// usersMsg carries the user management list
type usersMsg struct {
	users []api.User
	err   error
}

// profileSavedMsg reports a profile mutation; user is the server-confirmed
// representation on success
type profileSavedMsg struct {
	user *api.User
	err  error
}

// passwordChangedMsg reports the outcome of a password change
type passwordChangedMsg struct {
	err error
}

// userSavedMsg reports a user create or update
type userSavedMsg struct {
	err error
}

// userDeletedMsg reports a user deletion
type userDeletedMsg struct {
	err error
}
