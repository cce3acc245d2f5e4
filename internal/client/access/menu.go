package access

import (
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/models"
)

// Route is a navigable view and the roles allowed to open it.
type Route struct {
	Path  string
	Title string
	Roles []models.Role
}

// Routes is a navigation table.
type Routes []Route

// Find returns the route registered for path.
func (rs Routes) Find(path string) (Route, bool) {
	for _, r := range rs {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// FilterMenu returns the routes role may open, in table order.
func FilterMenu(routes Routes, role models.Role) Routes {
	out := make(Routes, 0, len(routes))
	for _, r := range routes {
		if Admit(r.Roles, role) {
			out = append(out, r)
		}
	}
	return out
}
