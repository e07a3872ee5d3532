// Package tokenstore defines the key/value credential storage consulted by
// the request client. The store itself is an external collaborator (secure
// storage on mobile, localStorage-equivalent on web); this package fixes the
// contract and ships an in-memory and a file-backed implementation.
package tokenstore

import (
	"context"
	"errors"
)

// Well-known storage keys.
const (
	KeyIDToken      = "idToken"
	KeyAccessToken  = "accessToken"
	KeyRefreshToken = "refreshToken"
	KeyUsername     = "username"
	KeyUserEmail    = "userEmail"
)

// ErrNotFound is returned by GetItem when the key has no value.
var ErrNotFound = errors.New("not found")

// Store is durable key/value storage for auth material. Implementations must
// be safe for concurrent use.
type Store interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key string, value string) error
	RemoveItem(ctx context.Context, key string) error
}

// Credential is the current token pair. Either field may be empty; when both
// are, requests go out unauthenticated.
type Credential struct {
	IDToken     string
	AccessToken string
}

// Bearer returns the token to use as the Authorization bearer, preferring the
// ID token. The second return is false when no token is available.
func (c Credential) Bearer() (string, bool) {
	if c.IDToken != "" {
		return c.IDToken, true
	}
	if c.AccessToken != "" {
		return c.AccessToken, true
	}
	return "", false
}

// LoadCredential reads the current token pair from the store. Missing keys
// yield empty fields rather than an error.
func LoadCredential(ctx context.Context, s Store) (Credential, error) {
	var cred Credential

	id, err := s.GetItem(ctx, KeyIDToken)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return Credential{}, err
	}
	cred.IDToken = id

	access, err := s.GetItem(ctx, KeyAccessToken)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return Credential{}, err
	}
	cred.AccessToken = access

	return cred, nil
}

// SaveCredential writes the token pair to the store. Empty fields remove the
// corresponding key so a partial refresh cannot leave a stale sibling behind.
func SaveCredential(ctx context.Context, s Store, cred Credential) error {
	if cred.IDToken != "" {
		if err := s.SetItem(ctx, KeyIDToken, cred.IDToken); err != nil {
			return err
		}
	} else if err := s.RemoveItem(ctx, KeyIDToken); err != nil {
		return err
	}

	if cred.AccessToken != "" {
		return s.SetItem(ctx, KeyAccessToken, cred.AccessToken)
	}
	return s.RemoveItem(ctx, KeyAccessToken)
}

// ClearCredential removes all auth material, including profile hints. Used on
// sign-out.
func ClearCredential(ctx context.Context, s Store) error {
	for _, key := range []string{KeyIDToken, KeyAccessToken, KeyRefreshToken, KeyUsername, KeyUserEmail} {
		if err := s.RemoveItem(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
