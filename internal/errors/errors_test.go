// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError(t *testing.T) {
	err := fmt.Errorf("loading: %w", NewConfigError("youtube.api_key", "YOUTUBE_API_KEY"))

	assert.ErrorIs(t, err, ErrMissingCredential)
	assert.NotErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "YOUTUBE_API_KEY")

	var ce *ConfigError
	assert.True(t, errors.As(err, &ce))
	assert.Equal(t, "youtube.api_key", ce.Key)
}

func TestConfigErrorWithoutEnv(t *testing.T) {
	err := NewConfigError("gemini.model", "")
	assert.Equal(t, "configuration error: gemini.model is not set", err.Error())
}

func TestAPIError(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{"with message", NewAPIError(403, "https://x", "quota exceeded"), "API error [403] at https://x: quota exceeded"},
		{"falls back to status text", NewAPIError(404, "https://x", ""), "API error [404] at https://x: Not Found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.ErrorIs(t, tt.err, ErrTransport)
		})
	}
}

func TestTransportErrorUnwraps(t *testing.T) {
	err := &TransportError{Endpoint: "https://x", Err: io.ErrUnexpectedEOF}
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestDecodeError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &DecodeError{API: "YouTube", Err: cause}
	assert.ErrorIs(t, err, ErrDecode)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "parsing YouTube response: unexpected end of JSON input", err.Error())
}
