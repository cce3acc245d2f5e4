// Package cli provides the interactive Gadai console.
//
// It wires configuration, the local session store, the API client, the
// route guard and the notification supervisor behind a small REPL. Typical
// flow: restore the previous session, start the connectivity watcher and
// the role-specific notification poller, then execute user commands.
//
// Key features:
//   - Login / Logout against the remote API
//   - whoami / status
//   - menu filtered by role, open <path> through the route guard
//   - notifications with a terminal alert when a new one arrives
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
