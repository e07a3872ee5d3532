package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/vitalsync/fitclient/internal/logging"
)

// send issues one HTTP call for d against the given origin. Each attempt
// builds a fresh request so a replay against another origin carries an
// identical method, path, headers and body.
func (c *Client) send(ctx context.Context, origin string, d Descriptor, headers http.Header) (*http.Response, error) {
	u := origin + d.Path
	if len(d.Query) > 0 {
		u += "?" + d.Query.Encode()
	}

	var body io.Reader
	if d.Body != nil {
		b, err := json.Marshal(d.Body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, d.Method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header = headers.Clone()

	return c.httpClient.Do(req)
}

// sendWithFallback implements the dual-origin routing for AI calls. The
// primary origin is always tried first; only a gateway timeout (504) or a
// transport failure triggers a replay against the fallback origin. Any other
// primary status, 4xx included, is returned as-is so genuine application
// errors are never masked as infrastructure problems. When the fallback also
// fails, its error is surfaced, being the more recent and specific one.
func (c *Client) sendWithFallback(ctx context.Context, d Descriptor, headers http.Header, log logging.Logger) (*http.Response, error) {
	resp, err := c.send(ctx, c.primaryURL, d, headers)
	if err == nil && resp.StatusCode != http.StatusGatewayTimeout {
		return resp, nil
	}

	if err != nil && ctx.Err() != nil {
		// Caller aborted; a fallback attempt would be pointless.
		return nil, err
	}

	if err == nil {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		log.Warn(ctx, "primary origin gateway timeout, replaying on fallback")
	} else {
		log.Warn(ctx, "primary origin transport failure, replaying on fallback", "error", err)
	}

	return c.send(ctx, c.fallbackURL, d, headers)
}
