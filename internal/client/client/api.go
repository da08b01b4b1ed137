package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/lumina/internal/logging"
)

// TokenSource is what an authenticated client needs from the session.
type TokenSource interface {
	// AccessToken returns the persisted access token, or "" when none.
	AccessToken(ctx context.Context) (string, error)
	// RefreshToken exchanges the refresh token for a new pair and reports
	// whether that succeeded.
	RefreshToken(ctx context.Context) bool
}

// Doer issues one logical API call.
type Doer interface {
	Do(ctx context.Context, method, path string, in, out any) error
}

type APIClient struct {
	transport Exchanger
	tokens    TokenSource
	log       logging.Logger
}

func NewAPIClient(t Exchanger, tokens TokenSource, log logging.Logger) *APIClient {
	if log == nil {
		log = logging.Discard()
	}
	return &APIClient{transport: t, tokens: tokens, log: log}
}

// Do performs an authenticated call. A 401 triggers one token refresh and,
// when that succeeds, one retry of the same request.
func (c *APIClient) Do(ctx context.Context, method, path string, in, out any) error {
	return CallWithRefresh(ctx, c.tokens, func(token string) error {
		return c.transport.Exchange(ctx, method, path, token, in, out)
	})
}

// CallWithRefresh runs call with the current access token. If call is
// rejected with 401 the token is refreshed and call runs once more with
// the new token. A refused refresh or a second 401 is reported as
// ErrAuthenticationFailed; any other outcome of the retry is returned
// unchanged.
func CallWithRefresh(ctx context.Context, tokens TokenSource, call func(token string) error) error {
	token, err := tokens.AccessToken(ctx)
	if err != nil {
		return fmt.Errorf("load access token: %w", err)
	}

	err = call(token)
	if !IsUnauthorized(err) {
		return err
	}

	if !tokens.RefreshToken(ctx) {
		return Reclassify(err, ErrAuthenticationFailed, MsgAuthenticationFailed)
	}

	token, err = tokens.AccessToken(ctx)
	if err != nil {
		return fmt.Errorf("load refreshed access token: %w", err)
	}

	err = call(token)
	if IsUnauthorized(err) {
		return Reclassify(err, ErrAuthenticationFailed, MsgAuthenticationFailed)
	}
	return err
}

func Get[T any](ctx context.Context, d Doer, path string) (T, error) {
	var out T
	if err := d.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func Post[T any](ctx context.Context, d Doer, path string, body any) (T, error) {
	var out T
	if err := d.Do(ctx, http.MethodPost, path, body, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func Put[T any](ctx context.Context, d Doer, path string, body any) (T, error) {
	var out T
	if err := d.Do(ctx, http.MethodPut, path, body, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func Delete[T any](ctx context.Context, d Doer, path string) (T, error) {
	var out T
	if err := d.Do(ctx, http.MethodDelete, path, nil, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
