package tokenstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.GetItem(ctx, KeyIDToken)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.SetItem(ctx, KeyIDToken, "tok"))
	v, err := s.GetItem(ctx, KeyIDToken)
	require.NoError(t, err)
	assert.Equal(t, "tok", v)

	require.NoError(t, s.RemoveItem(ctx, KeyIDToken))
	_, err = s.GetItem(ctx, KeyIDToken)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tokens.json")

	first, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, first.SetItem(ctx, KeyAccessToken, "abc"))
	require.NoError(t, first.SetItem(ctx, KeyUsername, "lena"))

	second, err := NewFileStore(path)
	require.NoError(t, err)

	v, err := second.GetItem(ctx, KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "abc", v)

	require.NoError(t, second.RemoveItem(ctx, KeyAccessToken))
	third, err := NewFileStore(path)
	require.NoError(t, err)
	_, err = third.GetItem(ctx, KeyAccessToken)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	_, err = s.GetItem(context.Background(), KeyIDToken)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCredential_Bearer(t *testing.T) {
	tests := []struct {
		name string
		cred Credential
		want string
		ok   bool
	}{
		{name: "prefers id token", cred: Credential{IDToken: "id", AccessToken: "acc"}, want: "id", ok: true},
		{name: "falls back to access token", cred: Credential{AccessToken: "acc"}, want: "acc", ok: true},
		{name: "empty", cred: Credential{}, want: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.cred.Bearer()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestSaveAndLoadCredential(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, SaveCredential(ctx, s, Credential{IDToken: "id1", AccessToken: "acc1"}))
	cred, err := LoadCredential(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, Credential{IDToken: "id1", AccessToken: "acc1"}, cred)

	// A refresh that only returns an access token must not leave the old
	// ID token behind.
	require.NoError(t, SaveCredential(ctx, s, Credential{AccessToken: "acc2"}))
	cred, err = LoadCredential(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, Credential{AccessToken: "acc2"}, cred)
}

func TestClearCredential(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for _, key := range []string{KeyIDToken, KeyAccessToken, KeyRefreshToken, KeyUsername, KeyUserEmail} {
		require.NoError(t, s.SetItem(ctx, key, "x"))
	}

	require.NoError(t, ClearCredential(ctx, s))

	for _, key := range []string{KeyIDToken, KeyAccessToken, KeyRefreshToken, KeyUsername, KeyUserEmail} {
		_, err := s.GetItem(ctx, key)
		assert.ErrorIs(t, err, ErrNotFound, key)
	}
}
