// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func probeServer(t *testing.T, headers map[string]string, lastQuery *url.Values) {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if lastQuery != nil {
			*lastQuery = r.URL.Query()
		}
		for k, v := range headers {
			w.Header().Set(k, v)
		}
		w.Write([]byte(`{"meta":{},"results":[]}`))
	}))
	swapWorksBase(t, ts.URL)
	t.Cleanup(ts.Close)
}

func TestProbeRateLimit(t *testing.T) {
	var query url.Values
	probeServer(t, map[string]string{
		"Ratelimit-Limit":     "10",
		"Ratelimit-Remaining": "8",
	}, &query)

	status := ProbeRateLimit(context.Background(), "user@example.com", "test/0.1")

	if status.Err != "" {
		t.Fatalf("Err = %q, want empty", status.Err)
	}
	if status.Limit != "10" || status.Remaining != "8" {
		t.Errorf("Limit/Remaining = %q/%q", status.Limit, status.Remaining)
	}
	if !status.HasEmail || status.EmailUsed != "user@example.com" {
		t.Errorf("EmailUsed = %q, HasEmail = %v", status.EmailUsed, status.HasEmail)
	}

	// The probe is a minimal single-result request carrying the email.
	if got := query.Get("per-page"); got != "1" {
		t.Errorf("per-page param = %q, want 1", got)
	}
	if got := query.Get("mailto"); got != "user@example.com" {
		t.Errorf("mailto param = %q", got)
	}
}

func TestProbeRateLimitLegacyHeaders(t *testing.T) {
	probeServer(t, map[string]string{
		"X-Ratelimit-Limit":     "100000",
		"X-Ratelimit-Remaining": "99999",
	}, nil)

	status := ProbeRateLimit(context.Background(), "", "test/0.1")
	if status.Limit != "100000" || status.Remaining != "99999" {
		t.Errorf("Limit/Remaining = %q/%q, want legacy header values", status.Limit, status.Remaining)
	}
}

func TestProbeRateLimitNoHeaders(t *testing.T) {
	probeServer(t, nil, nil)

	status := ProbeRateLimit(context.Background(), "", "test/0.1")
	if status.Limit != "unknown" || status.Remaining != "unknown" {
		t.Errorf("Limit/Remaining = %q/%q, want unknown", status.Limit, status.Remaining)
	}
}

func TestProbeRateLimitDefaultEmail(t *testing.T) {
	var query url.Values
	probeServer(t, nil, &query)

	status := ProbeRateLimit(context.Background(), "", "test/0.1")
	if status.HasEmail {
		t.Error("HasEmail = true, want false without user email")
	}
	if status.EmailUsed != defaultProbeEmail {
		t.Errorf("EmailUsed = %q, want fallback default", status.EmailUsed)
	}
	if got := query.Get("mailto"); got != defaultProbeEmail {
		t.Errorf("mailto param = %q, want fallback default", got)
	}
}

func TestProbeRateLimitTransportFailure(t *testing.T) {
	// Point the probe at a closed server: the failure must surface in the
	// Err field, never as an error or panic.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	swapWorksBase(t, ts.URL)
	ts.Close()

	status := ProbeRateLimit(context.Background(), "user@example.com", "test/0.1")
	if status.Err == "" {
		t.Fatal("Err is empty, want transport error message")
	}
	if status.EmailUsed != "user@example.com" || !status.HasEmail {
		t.Errorf("EmailUsed = %q, HasEmail = %v", status.EmailUsed, status.HasEmail)
	}
}
