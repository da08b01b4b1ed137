// Package common contains constants and small helpers shared by the Lumina
// client packages.
package common

// Keys of the persisted credential pair in the local metadata table.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

// HTTP header names and values used on every backend request.
const (
	AuthorizationHeader = "Authorization"
	BearerScheme        = "Bearer"
	ContentTypeHeader   = "Content-Type"
	ContentTypeJSON     = "application/json"
	RequestIDHeader     = "X-Request-Id"
)
