// Package testutil provides shared assertions for SDK tests.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediakit/addon-sdk/api"
)

// RequireStatus fails the test when got differs from want, printing both
// labels.
func RequireStatus(t *testing.T, want, got api.Status) {
	t.Helper()
	require.Equalf(t, want, got, "expected status %s, got %s", want, got)
}

// AssertJSONEqual asserts that two JSON documents encode the same value,
// ignoring whitespace and key order.
func AssertJSONEqual(t *testing.T, want, got string, msgAndArgs ...any) {
	t.Helper()

	var wantDoc, gotDoc any
	require.NoErrorf(t, json.Unmarshal([]byte(want), &wantDoc), "want is not valid JSON: %s", want)
	require.NoErrorf(t, json.Unmarshal([]byte(got), &gotDoc), "got is not valid JSON: %s", got)
	assert.Equal(t, wantDoc, gotDoc, msgAndArgs...)
}
