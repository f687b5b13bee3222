// Package tenant defines the fixed set of workspaces the backend serves.
// The set is a static UI-level choice; it is not validated against a
// server-provided list.
package tenant

// Tenant is a business unit that scopes all data access via a request header.
type Tenant struct {
	ID      string
	Name    string
	Tagline string
}

// The two workspaces the backend knows about.
var (
	Melmo = Tenant{
		ID:      "melmo",
		Name:    "Melmo's Kitchen",
		Tagline: "Manage kitchen inventory, recipes, and stock movements.",
	}
	TeaRaja = Tenant{
		ID:      "tearaja",
		Name:    "Tea Raja",
		Tagline: "Manage tea stall inventory, daily supplies, and sales.",
	}
)

// All returns the selectable workspaces in display order.
func All() []Tenant {
	return []Tenant{Melmo, TeaRaja}
}

// ByID looks up a workspace by its id.
func ByID(id string) (Tenant, bool) {
	for _, t := range All() {
		if t.ID == id {
			return t, true
		}
	}
	return Tenant{}, false
}

// Valid reports whether id names a known workspace.
func Valid(id string) bool {
	_, ok := ByID(id)
	return ok
}
