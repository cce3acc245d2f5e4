// Package common contains shared constants and sentinel errors used across
// the Gadai console components.
package common

// AuthorizationHeaderName is the HTTP header used to carry the bearer token
// on outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerScheme prefixes the token in the Authorization header.
const BearerScheme = "Bearer"

// RequestIDHeaderName tags every outbound request for server-side tracing.
const RequestIDHeaderName = "X-Request-ID"
