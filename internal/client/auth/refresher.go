// Package auth provides the concrete token refresher backing the request
// client's 401 recovery. App shells using a platform identity SDK substitute
// their own implementation of the same contract.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vitalsync/fitclient/internal/client/tokenstore"
	"github.com/vitalsync/fitclient/internal/logging"
)

// HTTPRefresher exchanges the stored refresh token for a fresh credential
// against the backend's auth service and writes the result back to the token
// store before returning, so the request client only has to re-read it.
type HTTPRefresher struct {
	endpoint   string
	httpClient *http.Client
	store      tokenstore.Store
	log        logging.Logger
}

func NewHTTPRefresher(baseURL string, store tokenstore.Store, log logging.Logger) *HTTPRefresher {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &HTTPRefresher{
		endpoint:   baseURL + "/api/auth/refresh",
		httpClient: &http.Client{Timeout: 15 * time.Second},
		store:      store,
		log:        log,
	}
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	IDToken      string `json:"idToken"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// RefreshTokens implements the api.Refresher contract. A missing or rejected
// refresh token yields (nil, nil): authentication is required, not retried.
// Transport and server failures yield an error so the caller can distinguish
// "sign in again" from "try later".
func (r *HTTPRefresher) RefreshTokens(ctx context.Context) (*tokenstore.Credential, error) {
	refresh, err := r.store.GetItem(ctx, tokenstore.KeyRefreshToken)
	if err != nil {
		if errors.Is(err, tokenstore.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if refresh == "" {
		return nil, nil
	}

	body, err := json.Marshal(refreshRequest{RefreshToken: refresh})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("refresh call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		// The refresh token itself expired or was revoked.
		r.log.Warn(ctx, "refresh token rejected", "status", resp.StatusCode)
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("refresh call failed: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var parsed refreshResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("refresh response: %w", err)
	}

	cred := tokenstore.Credential{IDToken: parsed.IDToken, AccessToken: parsed.AccessToken}
	if err := tokenstore.SaveCredential(ctx, r.store, cred); err != nil {
		return nil, err
	}
	if parsed.RefreshToken != "" {
		if err := r.store.SetItem(ctx, tokenstore.KeyRefreshToken, parsed.RefreshToken); err != nil {
			return nil, err
		}
	}

	r.log.Info(ctx, "token refreshed")
	return &cred, nil
}
