// Package session holds the process-wide authentication state of the
// console.
//
// A Manager starts in the loading state, is hydrated once from the
// credential store, and afterwards changes only through Login and Logout.
// Both mutations persist and swap the in-memory snapshot under one write
// lock, so no reader ever sees a user without a token, or an in-memory
// session that disagrees with storage. Consumers either read Snapshot or
// Subscribe to be told after each change; the request client pulls the
// bearer token through Token at dispatch time.
package session
