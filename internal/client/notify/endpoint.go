package notify

import (
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/models"
)

// Notification feed paths.
const (
	DefaultPath = "/notifications"
	CheckerPath = "/checker/notifications"
	PetugasPath = "/petugas/notifications"
)

// EndpointForRole routes a role to its notification feed. Unknown roles get
// the default feed.
func EndpointForRole(role models.Role) string {
	switch models.NormalizeRole(role) {
	case models.RoleChecker:
		return CheckerPath
	case models.RolePetugas:
		return PetugasPath
	default:
		return DefaultPath
	}
}

// mostRecent picks the leading notification: the newest by CreatedAt, with
// ties and missing timestamps resolved in favour of the earlier position.
func mostRecent(items []models.Notification) (models.Notification, bool) {
	if len(items) == 0 {
		return models.Notification{}, false
	}
	best := 0
	for i := 1; i < len(items); i++ {
		if items[i].CreatedAt.After(items[best].CreatedAt.Time) {
			best = i
		}
	}
	return items[best], true
}
