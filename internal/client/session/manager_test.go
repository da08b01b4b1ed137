package session

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/lumina/internal/client/client"
	"github.com/dmitrijs2005/lumina/internal/client/models"
	"github.com/dmitrijs2005/lumina/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/lumina/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend is a minimal auth backend. Only currentAccess is accepted as
// a bearer token; refresh swaps it for "access-N".
type fakeBackend struct {
	mu            sync.Mutex
	password      string
	currentAccess string
	refreshValid  string
	refreshOK     bool
	refreshDelay  time.Duration
	logoutStatus  int
	meStatus      int

	calls     map[string]int
	refreshes atomic.Int32
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		password:     "correct-horse",
		refreshOK:    true,
		logoutStatus: http.StatusOK,
		calls:        map[string]int{},
	}
}

func (f *fakeBackend) set(fn func(f *fakeBackend)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

func (f *fakeBackend) count(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[path]
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.calls[r.URL.Path]++
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	switch r.URL.Path {
	case "/api/auth/login":
		var req models.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		password := f.password
		f.mu.Unlock()
		if req.Password != password {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"detail":"Invalid credentials"}`)
			return
		}
		f.mu.Lock()
		f.currentAccess = "access-0"
		f.refreshValid = "refresh-0"
		f.mu.Unlock()
		_, _ = io.WriteString(w, `{"access_token":"access-0","refresh_token":"refresh-0","token_type":"bearer"}`)

	case "/api/auth/register":
		var req models.RegisterRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Username == "taken" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"detail":"Username already registered"}`)
			return
		}
		f.mu.Lock()
		f.password = req.Password
		f.mu.Unlock()
		_, _ = io.WriteString(w, `{"id":"u1","username":"`+req.Username+`","email":"`+req.Email+`"}`)

	case "/api/auth/refresh":
		n := f.refreshes.Add(1)
		f.mu.Lock()
		delay := f.refreshDelay
		f.mu.Unlock()
		time.Sleep(delay)
		var req models.RefreshRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		ok := f.refreshOK && req.RefreshToken == f.refreshValid
		if ok {
			f.currentAccess = "access-" + string(rune('0'+n))
			f.refreshValid = "refresh-" + string(rune('0'+n))
		}
		access, refresh := f.currentAccess, f.refreshValid
		f.mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"detail":"Invalid refresh token"}`)
			return
		}
		_ = json.NewEncoder(w).Encode(models.CredentialPair{AccessToken: access, RefreshToken: refresh})

	case "/api/auth/logout":
		f.mu.Lock()
		status := f.logoutStatus
		f.mu.Unlock()
		w.WriteHeader(status)
		_, _ = io.WriteString(w, `{"message":"Successfully logged out"}`)

	case "/api/auth/me", "/api/galaxies":
		f.mu.Lock()
		valid := f.currentAccess != "" && r.Header.Get("Authorization") == "Bearer "+f.currentAccess
		meStatus := f.meStatus
		f.mu.Unlock()
		if !valid {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"detail":"Could not validate credentials"}`)
			return
		}
		if r.URL.Path == "/api/galaxies" {
			_, _ = io.WriteString(w, `[{"id":"g1","name":"Web Development"}]`)
			return
		}
		if meStatus != 0 {
			w.WriteHeader(meStatus)
			return
		}
		_, _ = io.WriteString(w, `{"id":"u1","username":"ada","email":"ada@example.com","is_admin":true,"created_at":"2024-05-01T10:00:00"}`)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// expire makes the backend reject whatever access token the client holds.
func (f *fakeBackend) expire() {
	f.set(func(f *fakeBackend) { f.currentAccess = "rotated-elsewhere" })
}

func setup(t *testing.T) (*fakeBackend, *Manager, *credentials.MemoryStore, *httptest.Server) {
	t.Helper()
	fb := newFakeBackend()
	srv := httptest.NewServer(fb)
	t.Cleanup(srv.Close)

	store := credentials.NewMemoryStore()
	m := NewManager(client.NewTransport(srv.URL), store, logging.Discard())
	return fb, m, store, srv
}

func TestManager_IsAuthenticatedFollowsStore(t *testing.T) {
	_, m, store, _ := setup(t)
	ctx := context.Background()

	assert.False(t, m.IsAuthenticated(ctx))

	require.NoError(t, store.Save(ctx, models.CredentialPair{AccessToken: "a", RefreshToken: "r"}))
	assert.True(t, m.IsAuthenticated(ctx))

	require.NoError(t, store.Save(ctx, models.CredentialPair{RefreshToken: "r"}))
	assert.False(t, m.IsAuthenticated(ctx))
}

func TestManager_LoginThenCurrentUser(t *testing.T) {
	_, m, store, _ := setup(t)
	ctx := context.Background()

	require.NoError(t, m.Login(ctx, "ada", "correct-horse"))

	pair, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-0", pair.AccessToken)
	assert.Equal(t, "refresh-0", pair.RefreshToken)

	assert.Equal(t, StateAuthenticated, m.State())
	u, ok := m.User()
	require.True(t, ok)
	assert.Equal(t, "ada", u.Username)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), u.CreatedAt.Time)

	again, err := m.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, u, again)

	assert.True(t, IsAdmin(m.Principal()))
}

func TestManager_LoginInvalidCredentials(t *testing.T) {
	fb, m, store, _ := setup(t)
	ctx := context.Background()

	err := m.Login(ctx, "ada", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrInvalidCredentials)
	assert.Equal(t, "Invalid credentials", err.Error())

	pair, _ := store.Load(ctx)
	assert.True(t, pair.Empty())
	assert.Equal(t, StateAnonymous, m.State())
	assert.Equal(t, Anonymous{}, m.Principal())
	assert.Zero(t, fb.count("/api/auth/me"))
}

func TestManager_LoginGenericMessageWithoutDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	m := NewManager(client.NewTransport(srv.URL), credentials.NewMemoryStore(), nil)
	err := m.Login(context.Background(), "ada", "pw")
	assert.ErrorIs(t, err, client.ErrInvalidCredentials)
	assert.EqualError(t, err, "Login failed")
}

func TestManager_LoginClearsPairWhenUserFetchFails(t *testing.T) {
	fb, m, store, _ := setup(t)
	fb.set(func(f *fakeBackend) { f.meStatus = http.StatusInternalServerError })
	ctx := context.Background()

	err := m.Login(ctx, "ada", "correct-horse")
	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrUnauthenticated)

	pair, _ := store.Load(ctx)
	assert.True(t, pair.Empty())
	assert.Equal(t, StateAnonymous, m.State())
}

func TestManager_Register(t *testing.T) {
	fb, m, _, _ := setup(t)
	ctx := context.Background()

	err := m.Register(ctx, models.RegisterRequest{Username: "ada", Email: "ada@example.com", Password: "longenough"})
	require.NoError(t, err)
	assert.Equal(t, 1, fb.count("/api/auth/register"))
	assert.Equal(t, 1, fb.count("/api/auth/login"))
	assert.Equal(t, StateAuthenticated, m.State())
}

func TestManager_RegisterRejected(t *testing.T) {
	_, m, _, _ := setup(t)

	err := m.Register(context.Background(), models.RegisterRequest{Username: "taken", Email: "t@example.com", Password: "longenough"})
	assert.ErrorIs(t, err, client.ErrRegistration)
	assert.EqualError(t, err, "Username already registered")
	assert.Equal(t, StateAnonymous, m.State())
}

func TestManager_RegisterValidatesLocally(t *testing.T) {
	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"short username", models.RegisterRequest{Username: "ab", Email: "a@example.com", Password: "longenough"}},
		{"bad email", models.RegisterRequest{Username: "ada", Email: "not-an-email", Password: "longenough"}},
		{"short password", models.RegisterRequest{Username: "ada", Email: "a@example.com", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb, m, _, _ := setup(t)
			err := m.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, client.ErrRegistration)
			assert.Zero(t, fb.count("/api/auth/register"))
		})
	}
}

func TestManager_CurrentUserRefreshesExpiredToken(t *testing.T) {
	fb, m, store, _ := setup(t)
	ctx := context.Background()
	require.NoError(t, m.Login(ctx, "ada", "correct-horse"))

	fb.expire()

	u, err := m.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ada", u.Username)
	assert.EqualValues(t, 1, fb.refreshes.Load())

	pair, _ := store.Load(ctx)
	assert.Equal(t, "access-1", pair.AccessToken)
}

func TestManager_CurrentUserWithoutSession(t *testing.T) {
	fb, m, _, _ := setup(t)

	_, err := m.CurrentUser(context.Background())
	assert.ErrorIs(t, err, client.ErrUnauthenticated)
	assert.Zero(t, fb.count("/api/auth/me"))
}

func TestManager_RefreshFailureKeepsSession(t *testing.T) {
	fb, m, store, _ := setup(t)
	ctx := context.Background()
	require.NoError(t, m.Login(ctx, "ada", "correct-horse"))

	fb.set(func(f *fakeBackend) { f.refreshOK = false })
	assert.False(t, m.RefreshToken(ctx))

	pair, _ := store.Load(ctx)
	assert.Equal(t, "access-0", pair.AccessToken)
	assert.Equal(t, "refresh-0", pair.RefreshToken)
	assert.True(t, m.IsAuthenticated(ctx))
}

func TestManager_RefreshWithoutRefreshToken(t *testing.T) {
	fb, m, _, _ := setup(t)
	assert.False(t, m.RefreshToken(context.Background()))
	assert.Zero(t, fb.count("/api/auth/refresh"))
}

func TestManager_ConcurrentRefreshesAreCoalesced(t *testing.T) {
	fb, m, _, _ := setup(t)
	ctx := context.Background()
	require.NoError(t, m.Login(ctx, "ada", "correct-horse"))
	fb.set(func(f *fakeBackend) { f.refreshDelay = 100 * time.Millisecond })

	var wg sync.WaitGroup
	results := make([]bool, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = m.RefreshToken(ctx)
		}(i)
	}
	wg.Wait()

	for _, ok := range results {
		assert.True(t, ok)
	}
	assert.EqualValues(t, 1, fb.refreshes.Load())
}

func TestManager_SharedRefreshOutlivesCancelledCaller(t *testing.T) {
	fb, m, store, _ := setup(t)
	ctx := context.Background()
	require.NoError(t, m.Login(ctx, "ada", "correct-horse"))
	fb.set(func(f *fakeBackend) { f.refreshDelay = 200 * time.Millisecond })

	short, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()

	first := make(chan bool, 1)
	go func() { first <- m.RefreshToken(short) }()

	require.Eventually(t, func() bool { return fb.refreshes.Load() == 1 }, time.Second, 5*time.Millisecond)

	assert.True(t, m.RefreshToken(ctx), "caller with a live context gets the shared result")
	assert.False(t, <-first, "caller whose context expired stops waiting")
	assert.EqualValues(t, 1, fb.refreshes.Load())

	pair, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-1", pair.AccessToken)
}

func TestManager_FailedReloginKeepsExistingSession(t *testing.T) {
	_, m, store, _ := setup(t)
	ctx := context.Background()
	require.NoError(t, m.Login(ctx, "ada", "correct-horse"))

	err := m.Login(ctx, "ada", "wrong")
	require.ErrorIs(t, err, client.ErrInvalidCredentials)

	assert.True(t, m.IsAuthenticated(ctx))
	assert.Equal(t, StateAuthenticated, m.State())
	user, ok := m.User()
	require.True(t, ok)
	assert.Equal(t, "ada", user.Username)

	pair, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-0", pair.AccessToken)
}

func TestManager_LogoutClearsEvenWhenNetworkFails(t *testing.T) {
	_, m, store, srv := setup(t)
	ctx := context.Background()
	require.NoError(t, m.Login(ctx, "ada", "correct-horse"))

	srv.Close()

	require.NoError(t, m.Logout(ctx))
	pair, _ := store.Load(ctx)
	assert.Equal(t, models.CredentialPair{}, pair)
	assert.False(t, m.IsAuthenticated(ctx))
	assert.Equal(t, StateAnonymous, m.State())
	_, ok := m.User()
	assert.False(t, ok)
}

func TestManager_LogoutIgnoresBackendRejection(t *testing.T) {
	fb, m, store, _ := setup(t)
	ctx := context.Background()
	require.NoError(t, m.Login(ctx, "ada", "correct-horse"))
	fb.set(func(f *fakeBackend) { f.logoutStatus = http.StatusInternalServerError })

	require.NoError(t, m.Logout(ctx))
	pair, _ := store.Load(ctx)
	assert.True(t, pair.Empty())
	assert.Equal(t, 1, fb.count("/api/auth/logout"))
}

type failingClearStore struct {
	*credentials.MemoryStore
}

func (failingClearStore) Clear(ctx context.Context) error { return errors.New("disk full") }

func TestManager_LogoutReportsStoreFailure(t *testing.T) {
	fb := newFakeBackend()
	srv := httptest.NewServer(fb)
	defer srv.Close()

	m := NewManager(client.NewTransport(srv.URL), failingClearStore{credentials.NewMemoryStore()}, nil)
	err := m.Logout(context.Background())
	assert.ErrorContains(t, err, "disk full")
	assert.Equal(t, StateAnonymous, m.State())
}

func TestManager_Bootstrap(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		fb, m, _, _ := setup(t)
		require.NoError(t, m.Bootstrap(context.Background()))
		assert.Equal(t, StateAnonymous, m.State())
		assert.Zero(t, fb.count("/api/auth/me"))
	})

	t.Run("valid session", func(t *testing.T) {
		fb, m, store, _ := setup(t)
		ctx := context.Background()
		fb.set(func(f *fakeBackend) { f.currentAccess = "a" })
		require.NoError(t, store.Save(ctx, models.CredentialPair{AccessToken: "a", RefreshToken: "r"}))

		require.NoError(t, m.Bootstrap(ctx))
		assert.Equal(t, StateAuthenticated, m.State())
		assert.IsType(t, Member{}, m.Principal())
	})

	t.Run("unrecoverable session logs out", func(t *testing.T) {
		fb, m, store, _ := setup(t)
		ctx := context.Background()
		fb.set(func(f *fakeBackend) {
			f.currentAccess = "other"
			f.refreshOK = false
		})
		require.NoError(t, store.Save(ctx, models.CredentialPair{AccessToken: "stale", RefreshToken: "stale"}))

		err := m.Bootstrap(ctx)
		assert.ErrorIs(t, err, client.ErrUnauthenticated)
		assert.False(t, m.IsAuthenticated(ctx))
		assert.Equal(t, StateAnonymous, m.State())
		assert.Equal(t, 1, fb.count("/api/auth/logout"))
	})
}

func TestManager_AsTokenSourceForAPIClient(t *testing.T) {
	fb, m, _, srv := setup(t)
	ctx := context.Background()
	require.NoError(t, m.Login(ctx, "ada", "correct-horse"))

	fb.expire()
	before := fb.count("/api/galaxies")

	api := client.NewAPIClient(client.NewTransport(srv.URL), m, nil)
	got, err := client.Get[[]models.Galaxy](ctx, api, "/api/galaxies")
	require.NoError(t, err)
	assert.Equal(t, "g1", got[0].ID)
	assert.Equal(t, 2, fb.count("/api/galaxies")-before)
	assert.EqualValues(t, 1, fb.refreshes.Load())
}
