package api

import (
	"context"

	"github.com/vitalsync/fitclient/internal/client/tokenstore"
)

// Refresher is the external auth service's refresh operation. On success the
// implementation is expected to have already written the new credential to
// the token store; the client only re-reads it. A (nil, nil) return means the
// refresh was rejected (e.g. the refresh token expired) and the user must
// sign in again.
type Refresher interface {
	RefreshTokens(ctx context.Context) (*tokenstore.Credential, error)
}

// refreshOnce serializes concurrent refresh attempts: while one call is in
// flight every other 401-triggered caller awaits the same result instead of
// issuing its own. The flight is forgotten once settled, so a later 401 can
// trigger a fresh attempt.
func (c *Client) refreshOnce(ctx context.Context) (*tokenstore.Credential, error) {
	v, err, shared := c.refreshGroup.Do("refresh", func() (any, error) {
		if c.refresher == nil {
			return (*tokenstore.Credential)(nil), nil
		}
		cred, err := c.refresher.RefreshTokens(ctx)
		return cred, err
	})
	if err != nil {
		return nil, err
	}
	if shared {
		c.log.Debug(ctx, "joined in-flight token refresh")
	}
	cred, _ := v.(*tokenstore.Credential)
	return cred, nil
}
