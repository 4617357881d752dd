// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package errors defines the error taxonomy shared by every search client:
// configuration errors raised before any request, transport errors raised by
// the single round trip, and decode errors raised when a response body does
// not match the expected schema. None of them are retried.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for errors.Is checks.
var (
	ErrMissingCredential = errors.New("missing credential")
	ErrTransport         = errors.New("transport failure")
	ErrDecode            = errors.New("decode failure")
)

// ConfigError reports a required setting that was not supplied.
type ConfigError struct {
	// Key is the configuration key (e.g. "google.api_key").
	Key string
	// Env is the environment variable that would have supplied it.
	Env string
}

func (e *ConfigError) Error() string {
	if e.Env == "" {
		return fmt.Sprintf("configuration error: %s is not set", e.Key)
	}
	return fmt.Sprintf("configuration error: %s is not set (set %s)", e.Key, e.Env)
}

// Is matches ErrMissingCredential.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingCredential
}

// NewConfigError creates a ConfigError.
func NewConfigError(key, env string) *ConfigError {
	return &ConfigError{Key: key, Env: env}
}

// TransportError wraps a network failure for one endpoint.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is matches ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// APIError reports a non-2xx response.
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("API error [%d] at %s: %s", e.StatusCode, e.Endpoint, msg)
}

// Is matches ErrTransport: a rejected request is a transport-level failure
// from the caller's point of view.
func (e *APIError) Is(target error) bool {
	if target == ErrTransport {
		return true
	}
	_, ok := target.(*APIError)
	return ok
}

// NewAPIError creates a new APIError.
func NewAPIError(statusCode int, endpoint, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// DecodeError reports a response body that does not match the schema.
type DecodeError struct {
	API string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("parsing %s response: %v", e.API, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is matches ErrDecode.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}
