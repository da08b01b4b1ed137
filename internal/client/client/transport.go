package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/lumina/internal/client/models"
	"github.com/dmitrijs2005/lumina/internal/common"
	"github.com/dmitrijs2005/lumina/internal/logging"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const maxResponseBytes = 10 << 20

// Exchanger performs a single backend exchange with an explicit token.
// An empty token sends no Authorization header.
type Exchanger interface {
	Exchange(ctx context.Context, method, path, token string, in, out any) error
}

type Transport struct {
	baseURL    string
	httpClient *http.Client
	log        logging.Logger
	validate   *validator.Validate
	requestID  func() string
}

type TransportOption func(*Transport)

func WithHTTPClient(c *http.Client) TransportOption {
	return func(t *Transport) { t.httpClient = c }
}

// WithTimeout sets the request timeout on a copy of the current HTTP
// client, so a client passed to WithHTTPClient is never modified.
func WithTimeout(d time.Duration) TransportOption {
	return func(t *Transport) {
		c := *t.httpClient
		c.Timeout = d
		t.httpClient = &c
	}
}

func WithLogger(l logging.Logger) TransportOption {
	return func(t *Transport) { t.log = l }
}

// WithRequestIDs replaces the X-Request-Id generator.
func WithRequestIDs(gen func() string) TransportOption {
	return func(t *Transport) { t.requestID = gen }
}

func NewTransport(baseURL string, opts ...TransportOption) *Transport {
	t := &Transport{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logging.Discard(),
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		requestID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Transport) BaseURL() string {
	return t.baseURL
}

// Exchange sends in (if not nil) as JSON and decodes a 2xx body into out
// (if not nil). An empty 2xx body leaves out untouched.
func (t *Transport) Exchange(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	rid := t.requestID()
	req.Header.Set(common.ContentTypeHeader, common.ContentTypeJSON)
	req.Header.Set(common.RequestIDHeader, rid)
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerScheme+" "+token)
	}

	log := t.log.With("method", method, "path", path, "request_id", rid)
	start := time.Now()

	resp, err := t.httpClient.Do(req)
	if err != nil {
		log.Warn(ctx, "api request failed", "error", err)
		return fmt.Errorf("%w: %s %s: %w", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: read %s %s: %w", ErrUnavailable, method, path, err)
	}

	log.Debug(ctx, "api request", "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, errorDetail(payload), rid, ErrRequestFailed, MsgRequestFailed)
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrMalformedResponse, method, path, err)
	}
	if err := validateResponse(t.validate, out); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrMalformedResponse, method, path, err)
	}
	return nil
}

// errorDetail extracts the {"detail": ...} message. FastAPI reports
// request validation problems as a list of {"msg": ...} objects; those are
// joined.
func errorDetail(payload []byte) string {
	var env models.ErrorEnvelope
	if err := json.Unmarshal(payload, &env); err != nil || len(env.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(env.Detail, &s); err == nil {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(env.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
