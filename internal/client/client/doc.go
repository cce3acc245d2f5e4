// Package client is the Authenticated Request Client of the Gadai console
// plus the local database bootstrap.
//
// # Overview
//
//  1. Client is the transport-agnostic contract the core needs from the
//     remote API: Login, Logout, Notifications and Ping.
//  2. HTTPClient implements it over JSON/HTTP. Its transport reads the bearer
//     token from a TokenSource on every request, right before dispatch, and
//     sets or removes the Authorization header accordingly. Requests already
//     dispatched are never rewritten.
//  3. InitDatabase and RunMigrations open the local SQLite store and apply
//     the embedded goose migrations.
//
// # Error Handling
//
// HTTP statuses map to sentinel errors matched with errors.Is:
// 401/403 -> ErrUnauthorized, 502/503/504 and transport failures ->
// ErrUnavailable, undecodable bodies -> ErrInvalidAnswer.
package client
