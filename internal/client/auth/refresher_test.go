package auth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalsync/fitclient/internal/client/tokenstore"
)

func TestHTTPRefresher_Success(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/refresh", r.URL.Path)
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"idToken":"new-id","accessToken":"new-acc","refreshToken":"rotated"}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	store := tokenstore.NewMemoryStore()
	require.NoError(t, store.SetItem(ctx, tokenstore.KeyRefreshToken, "old-refresh"))

	r := NewHTTPRefresher(srv.URL, store, nil)

	cred, err := r.RefreshTokens(ctx)
	require.NoError(t, err)
	require.NotNil(t, cred)
	assert.Equal(t, "new-id", cred.IDToken)
	assert.Equal(t, "new-acc", cred.AccessToken)

	var sent map[string]string
	require.NoError(t, json.Unmarshal(gotBody, &sent))
	assert.Equal(t, "old-refresh", sent["refreshToken"])

	// The store was updated as a side effect, including the rotated
	// refresh token.
	stored, err := tokenstore.LoadCredential(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, *cred, stored)

	rotated, err := store.GetItem(ctx, tokenstore.KeyRefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "rotated", rotated)
}

func TestHTTPRefresher_NoRefreshToken(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	r := NewHTTPRefresher(srv.URL, tokenstore.NewMemoryStore(), nil)

	cred, err := r.RefreshTokens(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cred)
	assert.Zero(t, hits, "no network call without a refresh token")
}

func TestHTTPRefresher_RejectedRefreshToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	ctx := context.Background()
	store := tokenstore.NewMemoryStore()
	require.NoError(t, store.SetItem(ctx, tokenstore.KeyRefreshToken, "expired"))

	r := NewHTTPRefresher(srv.URL, store, nil)

	cred, err := r.RefreshTokens(ctx)
	require.NoError(t, err, "a rejected refresh token is a definitive answer, not an error")
	assert.Nil(t, cred)
}

func TestHTTPRefresher_ServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	ctx := context.Background()
	store := tokenstore.NewMemoryStore()
	require.NoError(t, store.SetItem(ctx, tokenstore.KeyRefreshToken, "ok"))

	r := NewHTTPRefresher(srv.URL, store, nil)

	_, err := r.RefreshTokens(ctx)
	require.Error(t, err)
}

func TestHTTPRefresher_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	ctx := context.Background()
	store := tokenstore.NewMemoryStore()
	require.NoError(t, store.SetItem(ctx, tokenstore.KeyRefreshToken, "ok"))

	r := NewHTTPRefresher(srv.URL, store, nil)

	_, err := r.RefreshTokens(ctx)
	require.Error(t, err)
}
