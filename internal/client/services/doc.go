// Package services exposes the typed domain methods UI code consumes.
//
// Every service is a thin wrapper over api.Client: it supplies a path, a
// method and a body, and declares cache eligibility and AI routing on the
// descriptor. No service carries auth, retry or fallback logic of its own;
// those concerns live in the request client. Outbound payloads the client
// constructs are validated before they leave the process.
package services

import "github.com/go-playground/validator/v10"

var validate = validator.New()
