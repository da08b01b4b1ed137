// Package client is the HTTP side of the Lumina client.
//
// # Overview
//
// Three layers live here:
//  1. Transport performs exactly one JSON request/response exchange against
//     the backend. It sets the standard headers, tags each attempt with an
//     X-Request-Id, maps non-2xx answers to *APIError and validates decoded
//     bodies.
//  2. APIClient adds authentication on top of a Transport: it asks a
//     TokenSource for the bearer token and, on a 401, asks it to refresh and
//     retries the identical request exactly once (see CallWithRefresh).
//  3. Get, Post, Put and Delete are generic helpers over any Doer.
//
// Local persistence bootstrap (InitDatabase, RunMigrations) is kept here as
// well; it opens the SQLite file that stores the credential pair.
//
// # Error Handling
//
// Backend rejections are *APIError values. Error() returns the message to
// show a user (the backend "detail" when present) and errors.Is matches the
// sentinel kind: ErrRequestFailed, ErrAuthenticationFailed,
// ErrInvalidCredentials, ErrRegistration, ErrUnauthenticated. Network
// failures match ErrUnavailable and malformed bodies ErrMalformedResponse.
package client
