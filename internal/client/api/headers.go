package api

import (
	"context"
	"net/http"

	"github.com/vitalsync/fitclient/internal/client/tokenstore"
)

// buildHeaders reads the current credential and produces request headers,
// preferring the ID token as the bearer. When no token exists the request
// proceeds unauthenticated so public and demo endpoints keep working; a store
// read failure is treated the same way rather than failing the request.
func (c *Client) buildHeaders(ctx context.Context) http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")

	cred, err := tokenstore.LoadCredential(ctx, c.store)
	if err != nil {
		c.log.Warn(ctx, "token store read failed, sending unauthenticated", "error", err)
		return h
	}

	if bearer, ok := cred.Bearer(); ok {
		h.Set("Authorization", "Bearer "+bearer)
		c.log.Debug(ctx, "auth header attached", "token_prefix", tokenPreview(bearer))
	}
	return h
}

// tokenPreview truncates a token for diagnostics. Raw token values must never
// reach logs at full length.
func tokenPreview(tok string) string {
	if len(tok) <= 8 {
		return "***"
	}
	return tok[:8] + "..."
}
