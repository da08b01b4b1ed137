package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dmitrijs2005/lumina/internal/client/client"
	"github.com/dmitrijs2005/lumina/internal/client/models"
	"github.com/dmitrijs2005/lumina/internal/client/session"
)

type staticTokens struct{}

func (staticTokens) AccessToken(ctx context.Context) (string, error) { return "tok", nil }
func (staticTokens) RefreshToken(ctx context.Context) bool             { return false }

type recorded struct {
	Method string
	URI    string
	Body   string
}

// recorder answers every request with the canned body for its path.
type recorder struct {
	mu       sync.Mutex
	requests []recorded
	bodies   map[string]string
}

func (r *recorder) last() recorded {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.requests) == 0 {
		return recorded{}
	}
	return r.requests[len(r.requests)-1]
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.requests)
}

func newRecorder(t *testing.T, bodies map[string]string) (*recorder, client.Doer) {
	t.Helper()
	rec := &recorder{bodies: bodies}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		b, _ := io.ReadAll(req.Body)
		rec.mu.Lock()
		rec.requests = append(rec.requests, recorded{Method: req.Method, URI: req.URL.RequestURI(), Body: string(b)})
		body, ok := rec.bodies[req.URL.Path]
		rec.mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"detail":"Not found"}`)
			return
		}
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return rec, client.NewAPIClient(client.NewTransport(srv.URL), staticTokens{}, nil)
}

type fixedPrincipal struct {
	p session.Principal
}

func (f fixedPrincipal) Principal() session.Principal { return f.p }

var (
	adminPrincipal  = fixedPrincipal{session.Member{User: models.User{ID: "u1", Username: "root", IsAdmin: true}}}
	memberPrincipal = fixedPrincipal{session.Member{User: models.User{ID: "u2", Username: "ada"}}}
	anonPrincipal   = fixedPrincipal{session.Anonymous{}}
)
