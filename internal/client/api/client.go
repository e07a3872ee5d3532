package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/vitalsync/fitclient/internal/client/cache"
	"github.com/vitalsync/fitclient/internal/client/token"
	"github.com/vitalsync/fitclient/internal/client/tokenstore"
	"github.com/vitalsync/fitclient/internal/logging"
)

// Interceptor short-circuits the client in demo builds, returning canned
// fixtures instead of issuing network calls.
type Interceptor interface {
	ShouldIntercept() bool
	Mock(ctx context.Context, d Descriptor) ([]byte, error)
}

// Options configures a Client. Zero-value fields get working defaults so
// tests and the demo binary can construct a client from almost nothing.
type Options struct {
	BaseURL       string
	AIFallbackURL string

	Store     tokenstore.Store
	Refresher Refresher
	Demo      Interceptor

	Logger         logging.Logger
	HTTPClient     *http.Client
	CacheTTL       time.Duration
	RequestTimeout time.Duration
}

// Client is the resilient request client every domain method funnels
// through. It owns token injection, the single refresh-and-retry on 401/403,
// dual-origin fallback for AI paths, and the read cache. Construct one per
// logical session; independent instances share no state.
type Client struct {
	primaryURL  string
	fallbackURL string

	httpClient *http.Client
	store      tokenstore.Store
	refresher  Refresher
	demo       Interceptor
	cache      *cache.Cache
	log        logging.Logger

	refreshGroup singleflight.Group
}

func New(opts Options) *Client {
	log := opts.Logger
	if log == nil {
		log = logging.NewNopLogger()
	}

	store := opts.Store
	if store == nil {
		store = tokenstore.NewMemoryStore()
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{
		primaryURL:  opts.BaseURL,
		fallbackURL: opts.AIFallbackURL,
		httpClient:  hc,
		store:       store,
		refresher:   opts.Refresher,
		demo:        opts.Demo,
		cache:       cache.New(opts.CacheTTL),
		log:         log,
	}
}

// Do executes the descriptor and returns the raw response payload. The
// sequence is: demo interception, cache lookup, auth headers, dispatch,
// refresh-and-retry once on 401/403, cache populate. All failures surface as
// ErrUnavailable-wrapped transport errors, *HTTPError, or ErrAuthRequired.
func (c *Client) Do(ctx context.Context, d Descriptor) ([]byte, error) {
	if c.demo != nil && c.demo.ShouldIntercept() {
		return c.demo.Mock(ctx, d)
	}

	log := c.log.With("request_id", uuid.NewString(), "method", d.Method, "path", d.Path)

	key := ""
	if d.Cacheable && d.Method == http.MethodGet {
		key = d.CacheKey()
		if v, ok := c.cache.Get(key); ok {
			log.Debug(ctx, "served from cache")
			return v, nil
		}
	}

	body, status, err := c.attempt(ctx, d, log)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return nil, err
	}

	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		log.Debug(ctx, "rejected, refreshing token", "status", status)

		cred, rerr := c.refreshOnce(ctx)
		if rerr != nil || cred == nil {
			log.Warn(ctx, "token refresh failed", "error", rerr)
			return nil, fmt.Errorf("%s %s: %w", d.Method, d.Path, ErrAuthRequired)
		}

		body, status, err = c.attempt(ctx, d, log)
		if err != nil {
			return nil, err
		}
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			// Second rejection after a successful refresh: fail fast, no
			// further retries.
			log.Warn(ctx, "still rejected after refresh", "status", status)
			return nil, fmt.Errorf("%s %s: %w", d.Method, d.Path, ErrAuthRequired)
		}
	}

	if status < 200 || status >= 300 {
		log.Warn(ctx, "unexpected status", "status", status)
		return nil, &HTTPError{Status: status, Body: string(body), Method: d.Method, Path: d.Path}
	}

	if key != "" {
		c.cache.Set(key, body)
	}

	log.Debug(ctx, "request done", "status", status)
	return body, nil
}

// DoJSON executes the descriptor and unmarshals the payload into out. A 2xx
// body that does not fit out surfaces as *DecodeError; callers that expect
// non-JSON bodies should use Do and read the bytes themselves.
func (c *Client) DoJSON(ctx context.Context, d Descriptor, out any) error {
	body, err := c.Do(ctx, d)
	if err != nil {
		return err
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Path: d.Path, Err: err}
	}
	return nil
}

// attempt performs one dispatch (routed through the dual-origin fallback for
// AI descriptors) and drains the response. Headers are rebuilt per attempt so
// a refreshed credential is picked up on retry.
func (c *Client) attempt(ctx context.Context, d Descriptor, log logging.Logger) ([]byte, int, error) {
	headers := c.buildHeaders(ctx)

	var resp *http.Response
	var err error
	if d.AIRouted {
		resp, err = c.sendWithFallback(ctx, d, headers, log)
	} else {
		resp, err = c.send(ctx, c.primaryURL, d, headers)
	}
	if err != nil {
		return nil, 0, mapTransportError(d, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, mapTransportError(d, err)
	}
	return body, resp.StatusCode, nil
}

// UserID derives the current user identifier from the stored credential.
// Returns ErrIdentityUnavailable when no credential exists or its payload
// cannot be decoded; never a raw parse error.
func (c *Client) UserID(ctx context.Context) (string, error) {
	cred, err := tokenstore.LoadCredential(ctx, c.store)
	if err != nil {
		return "", err
	}
	bearer, ok := cred.Bearer()
	if !ok {
		return "", ErrIdentityUnavailable
	}
	claims := token.Decode(bearer)
	if claims == nil {
		return "", ErrIdentityUnavailable
	}
	return claims.Sub, nil
}

// ClearCache drops every cached response. Exposed for explicit user-driven
// refresh actions.
func (c *Client) ClearCache() {
	c.cache.Clear()
}

// SignOut wipes stored auth material and the response cache so a following
// session cannot observe the previous one.
func (c *Client) SignOut(ctx context.Context) error {
	c.cache.Clear()
	return tokenstore.ClearCredential(ctx, c.store)
}
