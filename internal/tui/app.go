package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/melmoskitchen/pantry/internal/api"
	"github.com/melmoskitchen/pantry/internal/auth"
	"github.com/melmoskitchen/pantry/internal/router"
	"github.com/melmoskitchen/pantry/internal/session"
)

// App is the root model. It owns the current route and fans messages out to
// the active screen. Every route change goes through the guard in
// router.Resolve; no screen is ever shown to an unauthenticated session
// except login.
type App struct {
	backend Backend
	auth    *auth.Context
	store   session.Store

	route router.Route

	login     LoginModel
	dashboard DashboardModel
	products  ProductsModel
	history   HistoryModel
	profile   ProfileModel
	users     UsersModel

	width  int
	height int

	styles Styles
}

// NewApp wires the screens over a shared backend and session.
func NewApp(backend Backend, authCtx *auth.Context, store session.Store) App {
	a := App{
		backend:   backend,
		auth:      authCtx,
		store:     store,
		route:     router.Resolve(router.RouteDashboard, store),
		login:     NewLoginModel(authCtx, store),
		dashboard: NewDashboardModel(backend),
		products:  NewProductsModel(),
		history:   NewHistoryModel(backend),
		profile:   NewProfileModel(backend, authCtx),
		users:     NewUsersModel(backend),
		styles:    DefaultStyles(),
	}
	if a.route == router.RouteDashboard {
		a.dashboard.startLoading()
	}
	return a
}

// Init starts loading the initial screen.
func (a App) Init() tea.Cmd {
	if a.route == router.RouteDashboard {
		return a.dashboard.Load()
	}
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "ctrl+d":
			return a.navigate(router.RouteDashboard)
		case "ctrl+g":
			return a.navigate(router.RouteHistory)
		case "ctrl+p":
			return a.navigate(router.RouteProfile)
		case "ctrl+u":
			return a.navigate(router.RouteUsers)
		case "ctrl+l":
			return a.logout()
		case "esc":
			if a.route == router.RouteProducts {
				return a.navigate(router.RouteDashboard)
			}
		}

	case navigateMsg:
		return a.navigate(msg.route)

	case productsMsg:
		// Opening a category lands on the product screen even when the
		// fetch failed; the error renders there.
		a.products.setProducts(msg)
		a.route = router.Resolve(router.RouteProducts, a.store)
		return a, nil
	}

	return a.updateCurrent(msg)
}

// navigate switches screens through the route guard and kicks off the
// target's data load.
func (a App) navigate(route router.Route) (tea.Model, tea.Cmd) {
	resolved := router.Resolve(route, a.store)

	// Only admins see user management.
	if resolved == router.RouteUsers && !a.isAdmin() {
		return a, nil
	}

	a.route = resolved

	switch resolved {
	case router.RouteDashboard:
		a.dashboard.startLoading()
		return a, a.dashboard.Load()
	case router.RouteHistory:
		return a, a.history.Load()
	case router.RouteProfile:
		a.profile.rebuildGeneralForm()
		return a, a.profile.formInit()
	case router.RouteUsers:
		return a, a.users.Load()
	}

	return a, nil
}

func (a App) isAdmin() bool {
	u := a.auth.CurrentUser()
	return u != nil && u.Role == api.RoleAdmin
}

func (a App) logout() (tea.Model, tea.Cmd) {
	if a.route == router.RouteLogin {
		return a, nil
	}
	if err := a.auth.Logout(); err != nil {
		return a, nil
	}

	// A fresh login screen; the persisted workspace decides nothing here,
	// the picker is always shown.
	a.login = NewLoginModel(a.auth, a.store)
	a.route = router.RouteLogin
	return a, nil
}

func (a App) updateCurrent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.route {
	case router.RouteLogin:
		a.login, cmd = a.login.Update(msg)
	case router.RouteDashboard:
		a.dashboard, cmd = a.dashboard.Update(msg)
	case router.RouteProducts:
		a.products, cmd = a.products.Update(msg)
	case router.RouteHistory:
		a.history, cmd = a.history.Update(msg)
	case router.RouteProfile:
		a.profile, cmd = a.profile.Update(msg)
	case router.RouteUsers:
		a.users, cmd = a.users.Update(msg)
	}

	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	var b strings.Builder

	if a.route != router.RouteLogin {
		b.WriteString(a.navBar())
		b.WriteString("\n\n")
	}

	switch a.route {
	case router.RouteLogin:
		b.WriteString(a.login.View())
	case router.RouteDashboard:
		b.WriteString(a.dashboard.View())
	case router.RouteProducts:
		b.WriteString(a.products.View())
	case router.RouteHistory:
		b.WriteString(a.history.View())
	case router.RouteProfile:
		b.WriteString(a.profile.View())
	case router.RouteUsers:
		b.WriteString(a.users.View())
	}

	return b.String()
}

func (a App) navBar() string {
	items := []string{
		"ctrl+d dashboard",
		"ctrl+g history",
		"ctrl+p profile",
	}
	if a.isAdmin() {
		items = append(items, "ctrl+u users")
	}
	items = append(items, "ctrl+l logout", "ctrl+c quit")
	return a.styles.Muted.Render(strings.Join(items, " • "))
}
