package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/dmitrijs2005/lumina/internal/client/client"
	"github.com/dmitrijs2005/lumina/internal/client/models"
	"github.com/dmitrijs2005/lumina/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/lumina/internal/logging"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/singleflight"
)

const (
	pathLogin    = "/api/auth/login"
	pathRegister = "/api/auth/register"
	pathRefresh  = "/api/auth/refresh"
	pathLogout   = "/api/auth/logout"
	pathMe       = "/api/auth/me"
)

// Manager owns the credential pair and the current user.
type Manager struct {
	api      client.Exchanger
	store    credentials.Store
	log      logging.Logger
	validate *validator.Validate

	refreshes singleflight.Group

	mu    sync.RWMutex
	state State
	user  *models.User
}

func NewManager(api client.Exchanger, store credentials.Store, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Discard()
	}
	return &Manager{
		api:      api,
		store:    store,
		log:      log.With("component", "session"),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Login exchanges username (or email) and password for a credential pair,
// persists it and loads the current user.
//
// A rejected login leaves any existing session untouched. Once the new pair
// is stored, the old one is gone, so a failure to load the user after that
// ends the session.
func (m *Manager) Login(ctx context.Context, username, password string) error {
	restore := m.snapshot()
	m.setState(StateAuthenticating)

	var pair models.CredentialPair
	req := models.LoginRequest{Username: username, Password: password}
	if err := m.api.Exchange(ctx, http.MethodPost, pathLogin, "", req, &pair); err != nil {
		restore()
		return client.Reclassify(err, client.ErrInvalidCredentials, client.MsgLoginFailed)
	}

	if err := m.store.Save(ctx, pair); err != nil {
		restore()
		return fmt.Errorf("persist credentials: %w", err)
	}

	user, err := m.CurrentUser(ctx)
	if err != nil {
		if cerr := m.store.Clear(ctx); cerr != nil {
			m.log.Error(ctx, "failed to clear credentials after login", "error", cerr)
		}
		m.reset()
		return err
	}

	m.log.Info(ctx, "logged in", "username", user.Username)
	return nil
}

// Register validates req locally, creates the account and logs in with
// the same username and password.
func (m *Manager) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := m.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %w", client.ErrRegistration, err)
	}

	var created models.User
	if err := m.api.Exchange(ctx, http.MethodPost, pathRegister, "", req, &created); err != nil {
		return client.Reclassify(err, client.ErrRegistration, client.MsgRegistrationFailed)
	}
	m.log.Info(ctx, "account registered", "username", created.Username)

	return m.Login(ctx, req.Username, req.Password)
}

// CurrentUser fetches the user behind the persisted access token,
// refreshing it once if the backend rejects it.
func (m *Manager) CurrentUser(ctx context.Context) (models.User, error) {
	if !m.IsAuthenticated(ctx) {
		return models.User{}, fmt.Errorf("%w: no stored credentials", client.ErrUnauthenticated)
	}

	var user models.User
	err := client.CallWithRefresh(ctx, m, func(token string) error {
		return m.api.Exchange(ctx, http.MethodGet, pathMe, token, nil, &user)
	})
	if err != nil {
		return models.User{}, client.Reclassify(err, client.ErrUnauthenticated, client.MsgUserInfoFailed)
	}

	m.mu.Lock()
	m.user = &user
	m.state = StateAuthenticated
	m.mu.Unlock()

	return user, nil
}

// RefreshToken trades the stored refresh token for a new pair. It never
// clears the session; a false result leaves the old pair in place.
// Concurrent callers share one request. The shared request is not bound to
// any single caller's context; each caller stops waiting when its own ctx
// is done.
func (m *Manager) RefreshToken(ctx context.Context) bool {
	ch := m.refreshes.DoChan("refresh", func() (any, error) {
		return m.refresh(context.WithoutCancel(ctx)), nil
	})
	select {
	case res := <-ch:
		return res.Val.(bool)
	case <-ctx.Done():
		m.log.Warn(ctx, "stopped waiting for token refresh", "error", ctx.Err())
		return false
	}
}

func (m *Manager) refresh(ctx context.Context) bool {
	pair, err := m.store.Load(ctx)
	if err != nil {
		m.log.Warn(ctx, "failed to load credentials for refresh", "error", err)
		return false
	}
	if pair.RefreshToken == "" {
		return false
	}

	var next models.CredentialPair
	req := models.RefreshRequest{RefreshToken: pair.RefreshToken}
	if err := m.api.Exchange(ctx, http.MethodPost, pathRefresh, "", req, &next); err != nil {
		m.log.Warn(ctx, "token refresh rejected", "error", err)
		return false
	}

	if err := m.store.Save(ctx, next); err != nil {
		m.log.Error(ctx, "failed to persist refreshed credentials", "error", err)
		return false
	}

	m.log.Debug(ctx, "access token refreshed")
	return true
}

// Logout tells the backend (best effort) and then clears the local
// session. Only a failure to clear the local store is returned.
func (m *Manager) Logout(ctx context.Context) error {
	pair, err := m.store.Load(ctx)
	if err != nil {
		m.log.Warn(ctx, "failed to load credentials for logout", "error", err)
	}

	if err := m.api.Exchange(ctx, http.MethodPost, pathLogout, pair.AccessToken, nil, nil); err != nil {
		m.log.Warn(ctx, "logout request failed", "error", err)
	}

	m.reset()

	if err := m.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	m.log.Info(ctx, "logged out")
	return nil
}

// IsAuthenticated reports whether a non-empty access token is persisted.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	pair, err := m.store.Load(ctx)
	if err != nil {
		m.log.Warn(ctx, "failed to load credentials", "error", err)
		return false
	}
	return !pair.Empty()
}

// Bootstrap resolves the initial state on process start. A persisted
// session that no longer yields a user is logged out.
func (m *Manager) Bootstrap(ctx context.Context) error {
	if !m.IsAuthenticated(ctx) {
		m.reset()
		return nil
	}

	if _, err := m.CurrentUser(ctx); err != nil {
		m.log.Warn(ctx, "stored session is no longer valid", "error", err)
		if lerr := m.Logout(ctx); lerr != nil {
			return errors.Join(err, lerr)
		}
		return err
	}
	return nil
}

// AccessToken returns the persisted access token or "".
func (m *Manager) AccessToken(ctx context.Context) (string, error) {
	pair, err := m.store.Load(ctx)
	if err != nil {
		return "", err
	}
	return pair.AccessToken, nil
}

// TokenInfo inspects the persisted access token.
func (m *Manager) TokenInfo(ctx context.Context) (TokenInfo, error) {
	token, err := m.AccessToken(ctx)
	if err != nil {
		return TokenInfo{}, err
	}
	if token == "" {
		return TokenInfo{}, fmt.Errorf("%w: no stored credentials", client.ErrUnauthenticated)
	}
	return InspectToken(token)
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// User returns the cached current user, if any.
func (m *Manager) User() (models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return models.User{}, false
	}
	return *m.user, true
}

func (m *Manager) Principal() Principal {
	if u, ok := m.User(); ok {
		return Member{User: u}
	}
	return Anonymous{}
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

// snapshot returns a func that puts the user and state back as they are now.
func (m *Manager) snapshot() func() {
	m.mu.RLock()
	user, state := m.user, m.state
	m.mu.RUnlock()

	return func() {
		m.mu.Lock()
		m.user, m.state = user, state
		m.mu.Unlock()
	}
}

func (m *Manager) reset() {
	m.mu.Lock()
	m.user = nil
	m.state = StateAnonymous
	m.mu.Unlock()
}
