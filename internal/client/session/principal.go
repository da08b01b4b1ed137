package session

import "github.com/dmitrijs2005/lumina/internal/client/models"

// Principal is the identity the client currently acts as: Anonymous or
// Member.
type Principal interface {
	principal()
}

type Anonymous struct{}

type Member struct {
	User models.User
}

func (Anonymous) principal() {}
func (Member) principal()    {}

// IsAdmin reports whether p may use admin operations.
func IsAdmin(p Principal) bool {
	switch v := p.(type) {
	case Member:
		return v.User.IsAdmin
	case Anonymous:
		return false
	default:
		return false
	}
}

type State int

const (
	StateAnonymous State = iota
	StateAuthenticating
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}
