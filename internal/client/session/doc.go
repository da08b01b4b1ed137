// Package session owns the authentication lifecycle of the client: the
// persisted credential pair and the in-memory current user.
//
// A Manager moves between three states:
//
//	Anonymous --Login/Register--> Authenticating --success--> Authenticated
//	    ^                              |                            |
//	    +-------- failure -------------+------ Logout / Bootstrap --+
//
// The Manager also implements client.TokenSource, so an APIClient built on
// the same Transport refreshes through it.
package session
