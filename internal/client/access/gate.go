// Package access decides who may see what: the role gate predicate, the
// route guard evaluated on every navigation, and menu filtering.
package access

import (
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/models"
)

// Admit reports whether role may pass a gate restricted to allowed. An empty
// allowed set means "no restriction". Roles are compared in canonical form.
func Admit(allowed []models.Role, role models.Role) bool {
	if len(allowed) == 0 {
		return true
	}
	role = models.NormalizeRole(role)
	for _, r := range allowed {
		if models.NormalizeRole(r) == role {
			return true
		}
	}
	return false
}
