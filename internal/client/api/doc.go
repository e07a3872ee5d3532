// Package api contains the resilient request client shared by the mobile and
// web shells.
//
// # Overview
//
// The package provides:
//  1. A single request primitive (Client.Do / Client.DoJSON) that every typed
//     domain method funnels through: token resolution and injection, a single
//     refresh-and-retry on 401/403, dual-origin fallback for AI paths, and a
//     TTL read cache for idempotent GETs.
//  2. The contracts the client consults: Refresher (external auth service)
//     and Interceptor (demo-mode fixtures).
//  3. Identity helpers (Client.UserID) derived from the stored credential.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is (ErrUnavailable, ErrAuthRequired, ErrIdentityUnavailable),
// plus typed *HTTPError and *DecodeError for errors.As. Domain services must
// propagate these unchanged; user-visible messaging is the UI's job.
//
// # Concurrency & Contexts
//
// A Client is safe for concurrent use. Concurrent 401s share one refresh via
// an in-flight group. All operations accept context.Context and honor
// cancellation; an aborted transport call surfaces as ErrUnavailable, never
// as a retryable auth failure.
package api
