package cli

import (
	"context"
	"fmt"

	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/access"
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/notify"
)

// Menu lists the views the current role may open.
func (a *App) Menu(ctx context.Context) error {
	snap := a.session.Snapshot()
	if !snap.IsAuthenticated {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}

	for _, r := range access.FilterMenu(a.routes, snap.Role()) {
		fmt.Fprintf(a.out, "  %-20s %s\n", r.Path, r.Title)
	}
	return nil
}

// Open navigates to path. The route guard decides from the stored user; a
// refusal moves the console to the redirect target instead.
func (a *App) Open(ctx context.Context, path string) error {
	route, ok := a.routes.Find(path)
	if !ok {
		return fmt.Errorf("unknown view %q", path)
	}

	d := a.guard.Check(ctx, route.Roles...)
	if !d.Allowed {
		a.setView(d.Redirect)
		switch d.Redirect {
		case access.LoginPath:
			fmt.Fprintln(a.out, "Please sign in first")
		default:
			fmt.Fprintf(a.out, "Access to %s denied\n", path)
		}
		return nil
	}

	a.setView(route.Path)
	fmt.Fprintf(a.out, "Opened %s\n", route.Title)
	return nil
}

// Notifications shows the poller state for the current role and marks
// pending alerts as seen.
func (a *App) Notifications(ctx context.Context) error {
	state, role, ok := a.supervisor.Consume()
	if !ok {
		fmt.Fprintln(a.out, "Notifications are inactive")
		return nil
	}

	last := state.LastSeenID.String()
	if last == "" {
		last = "-"
	}
	fmt.Fprintf(a.out, "Feed: %s\n", notify.EndpointForRole(role))
	fmt.Fprintf(a.out, "Latest: %s\n", last)
	if state.HasUnseen {
		fmt.Fprintln(a.out, "New notifications marked as seen")
	}
	return nil
}

// Status probes the API and prints connectivity and session state.
func (a *App) Status(ctx context.Context) error {
	a.probe(ctx)

	fmt.Fprintf(a.out, "API: %s (%s)\n", a.getMode(), a.config.BaseURL)
	snap := a.session.Snapshot()
	if snap.IsAuthenticated {
		fmt.Fprintf(a.out, "Session: %s (%s)\n", snap.User.Name, snap.User.Role)
	} else {
		fmt.Fprintln(a.out, "Session: signed out")
	}
	if view := a.getView(); view != "" {
		fmt.Fprintf(a.out, "View: %s\n", view)
	}
	return nil
}
