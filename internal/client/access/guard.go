package access

import (
	"context"

	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/models"
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/logging"
)

// Redirect targets used when navigation is refused.
const (
	LoginPath        = "/login"
	UnauthorizedPath = "/unauthorized"
)

// UserLoader reads the persisted user record.
type UserLoader interface {
	LoadUser(ctx context.Context) (*models.User, error)
}

// Decision is the outcome of a guard check. Redirect is set when Allowed is
// false.
type Decision struct {
	Allowed  bool
	Redirect string
}

// Guard gates navigation to protected views. It reads the persisted user on
// every check (no caching, no network), so a sign-out in one place is seen by
// the very next navigation.
type Guard struct {
	users  UserLoader
	logger logging.Logger
}

func NewGuard(users UserLoader, logger logging.Logger) *Guard {
	return &Guard{users: users, logger: logger}
}

// Check decides whether the current user may open a view restricted to
// allowed. Nobody signed in (or an unreadable record) redirects to the login
// view; a role outside allowed redirects to the unauthorized view.
func (g *Guard) Check(ctx context.Context, allowed ...models.Role) Decision {
	user, err := g.users.LoadUser(ctx)
	if err != nil {
		g.logger.Warn(ctx, "route guard could not read stored user", "error", err)
		return Decision{Redirect: LoginPath}
	}
	if user == nil {
		return Decision{Redirect: LoginPath}
	}
	if !Admit(allowed, user.Role) {
		return Decision{Redirect: UnauthorizedPath}
	}
	return Decision{Allowed: true}
}
