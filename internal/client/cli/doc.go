// Package cli is the lumina command tree.
//
// NewApp wires configuration, the local credential database, the session
// manager, the API client and the resource services; NewRootCmd exposes
// them as cobra commands:
//
//	lumina login [username]        authenticate and store the session
//	lumina register                create an account and log in
//	lumina logout                  end the session (always clears it locally)
//	lumina whoami                  show the current user
//	lumina status                  session state, backend and token expiry
//	lumina api get|post|put|delete <path> [--data JSON]
//	lumina galaxies [id]           list galaxies or show one
//	lumina projects                list projects (--solar-system, --search, --tag)
//	lumina ideas                   community ideas (--filter all|recent|expiring)
//	lumina admin stats             admin dashboard counters
//	lumina version                 build information
//
// Every command accepts --json for machine-readable output.
package cli
