// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil performs the single GET round trip shared by the search
// clients.
package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	apierrors "github.com/pdiddy/search-tools/internal/errors"
	"github.com/pdiddy/search-tools/internal/query"
)

// maxErrorBody bounds how much of a failed response is inspected for a message.
const maxErrorBody = 64 << 10

// Request describes one GET.
type Request struct {
	Endpoint  string
	Params    []query.Pair
	UserAgent string
	// Secret lists parameter keys whose values are redacted in logs.
	Secret []string
}

// URL returns the full request URL.
func (r Request) URL() string {
	if len(r.Params) == 0 {
		return r.Endpoint
	}
	sep := "?"
	if strings.Contains(r.Endpoint, "?") {
		sep = "&"
	}
	return r.Endpoint + sep + query.Encode(r.Params)
}

func (r Request) redactedURL() string {
	red := r
	red.Params = query.Redact(r.Params, r.Secret...)
	return red.URL()
}

// Get performs exactly one GET and returns the full response body. It does
// not retry. A network failure yields a TransportError; a non-2xx status
// yields an APIError carrying the upstream error message when the body has
// one.
func Get(ctx context.Context, client *http.Client, r Request, log zerolog.Logger) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if r.UserAgent != "" {
		req.Header.Set("User-Agent", r.UserAgent)
	}

	log.Debug().Str("url", r.redactedURL()).Msg("sending request")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &apierrors.TransportError{Endpoint: r.Endpoint, Err: stripURL(err)}
	}
	defer resp.Body.Close()

	log.Debug().Int("status", resp.StatusCode).Msg("received response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, apierrors.NewAPIError(resp.StatusCode, r.Endpoint, ErrorMessage(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apierrors.TransportError{Endpoint: r.Endpoint, Err: fmt.Errorf("reading body: %w", err)}
	}
	return body, nil
}

// ErrorMessage extracts the message of a Google API error body
// ({"error":{"code":403,"message":"..."}}). It returns "" when the body has
// no such field.
func ErrorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	res := gjson.GetBytes(body, "error.message")
	if res.Exists() {
		return res.String()
	}
	// Some endpoints return {"error":"..."}.
	if res = gjson.GetBytes(body, "error"); res.Type == gjson.String {
		return res.String()
	}
	return ""
}

// stripURL drops the *url.Error wrapper, whose message repeats the request
// URL and therefore the API key.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
