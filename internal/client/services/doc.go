// Package services contains the typed resource services of the Lumina
// client: Catalog, Community, Users and Admin. Each wraps a client.Doer,
// so every call carries bearer auth and the refresh-and-retry behavior of
// the API client.
//
// The package also has the client-side search and idea filters the web UI
// applies on top of backend listings.
package services
