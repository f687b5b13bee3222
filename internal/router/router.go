// Package router names the application's screens and gates navigation to the
// protected ones.
package router

import "github.com/melmoskitchen/pantry/internal/session"

// Route identifies a screen.
type Route string

// The application's screens.
const (
	RouteLogin     Route = "/login"
	RouteDashboard Route = "/"
	RouteProducts  Route = "/category"
	RouteHistory   Route = "/history"
	RouteProfile   Route = "/profile"
	RouteUsers     Route = "/users"
)

// Protected reports whether a route requires an active session.
// Everything except the login screen does.
func Protected(r Route) bool {
	return r != RouteLogin
}

// Resolve is the route guard: it returns the requested route when the session
// allows it, or the login route otherwise. The decision is presence-only;
// token validity is enforced server-side on the actual calls.
func Resolve(requested Route, store session.Store) Route {
	if Protected(requested) && store.Token() == "" {
		return RouteLogin
	}
	return requested
}
