// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the search and
// rate-limit probe paths.
package httputil

import (
	"context"
	"net/http"
	"net/url"
)

// UnknownValue is reported when a rate-limit header is absent.
const UnknownValue = "unknown"

// NewAPIRequest builds a GET request for an OpenAlex endpoint with the
// query parameters encoded and the User-Agent header set.
func NewAPIRequest(ctx context.Context, base string, params url.Values, userAgent string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	return req, nil
}

// RateLimitHeaders reads the request quota headers from an OpenAlex
// response. OpenAlex has reported these under two naming conventions: the
// standardized Ratelimit-* names and the legacy X-Ratelimit-* names. The
// standardized name wins when both are present; an absent header reads as
// "unknown".
func RateLimitHeaders(h http.Header) (limit, remaining string) {
	return headerOrLegacy(h, "Ratelimit-Limit", "X-Ratelimit-Limit"),
		headerOrLegacy(h, "Ratelimit-Remaining", "X-Ratelimit-Remaining")
}

func headerOrLegacy(h http.Header, name, legacy string) string {
	if v := h.Get(name); v != "" {
		return v
	}
	if v := h.Get(legacy); v != "" {
		return v
	}
	return UnknownValue
}
