// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"github.com/go-json-experiment/json"

	apierrors "github.com/pdiddy/search-tools/internal/errors"
)

// Decode parses body into a T. Member names are matched case-sensitively
// against the json tags of T, so each tag names exactly one upstream field.
// Unknown members are ignored; a missing member leaves its field at the zero
// value, which for pointer fields means absent.
func Decode[T any](api string, body []byte) (T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		var zero T
		return zero, &apierrors.DecodeError{API: api, Err: err}
	}
	return v, nil
}
