// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPIRequest(t *testing.T) {
	params := url.Values{"search": {"machine learning"}, "per-page": {"1"}}

	req, err := NewAPIRequest(context.Background(), "https://api.openalex.org/works", params, "test/0.1")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "test/0.1", req.Header.Get("User-Agent"))
	assert.Equal(t, "machine learning", req.URL.Query().Get("search"))
	assert.Equal(t, "1", req.URL.Query().Get("per-page"))
}

func TestNewAPIRequestNoUserAgent(t *testing.T) {
	req, err := NewAPIRequest(context.Background(), "https://api.openalex.org/works", url.Values{}, "")
	require.NoError(t, err)
	assert.Empty(t, req.Header.Get("User-Agent"))
}

func TestRateLimitHeaders(t *testing.T) {
	tests := []struct {
		name          string
		headers       map[string]string
		wantLimit     string
		wantRemaining string
	}{
		{
			name: "standardized names",
			headers: map[string]string{
				"Ratelimit-Limit":     "10",
				"Ratelimit-Remaining": "9",
			},
			wantLimit:     "10",
			wantRemaining: "9",
		},
		{
			name: "legacy vendor names",
			headers: map[string]string{
				"X-Ratelimit-Limit":     "100000",
				"X-Ratelimit-Remaining": "99998",
			},
			wantLimit:     "100000",
			wantRemaining: "99998",
		},
		{
			name: "standardized wins over legacy",
			headers: map[string]string{
				"Ratelimit-Limit":       "10",
				"X-Ratelimit-Limit":     "999",
				"Ratelimit-Remaining":   "7",
				"X-Ratelimit-Remaining": "888",
			},
			wantLimit:     "10",
			wantRemaining: "7",
		},
		{
			name:          "absent headers",
			headers:       nil,
			wantLimit:     "unknown",
			wantRemaining: "unknown",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			for k, v := range tt.headers {
				h.Set(k, v)
			}
			limit, remaining := RateLimitHeaders(h)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantRemaining, remaining)
		})
	}
}
