package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/access"
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/client"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and signs in against the API. On success the
// session is persisted and the notification poller switches to the user's
// role. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	user, err := a.authService.SignIn(ctx, userName, password)
	if err != nil {
		switch {
		case errors.Is(err, client.ErrUnauthorized):
			a.setMode(ModeOnline)
			return errors.New("invalid username or password")
		case errors.Is(err, client.ErrUnavailable):
			a.setMode(ModeOffline)
			return errors.New("server unavailable, try again later")
		}
		return err
	}

	a.setMode(ModeOnline)
	a.setView("")
	fmt.Fprintf(a.out, "Signed in as %s (%s)\n", user.Name, user.Role)
	return nil
}

// Logout signs out remotely (best effort) and always clears the local
// session. The error, if any, concerns the local store only.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}

	err := a.authService.SignOut(ctx)
	a.setView(access.LoginPath)
	fmt.Fprintln(a.out, "Signed out")
	return err
}

// WhoAmI prints the signed-in user.
func (a *App) WhoAmI(ctx context.Context) error {
	snap := a.session.Snapshot()
	if !snap.IsAuthenticated {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}
	fmt.Fprintf(a.out, "%s (id %s, role %s)\n", snap.User.Name, snap.User.ID, snap.User.Role)
	return nil
}
