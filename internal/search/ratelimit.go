// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/O957/sort-by-citations/internal/httputil"
	"github.com/O957/sort-by-citations/pkg/types"
)

// defaultProbeEmail is sent when the user configured no contact email, so
// the probe itself stays well-behaved toward OpenAlex.
const defaultProbeEmail = "research@example.com"

// probeTimeout bounds the probe request. Short and fixed: the probe is a
// side channel and must not stall the search flow.
var probeTimeout = 5 * time.Second

// ProbeRateLimit issues a minimal single-result works request and reads the
// rate-limit headers from the response. It never returns an error: any
// transport failure is reported through the Err field of the status so the
// surrounding search flow is never aborted by the probe.
func ProbeRateLimit(ctx context.Context, email, userAgent string) types.RateLimitStatus {
	status := types.RateLimitStatus{
		EmailUsed: email,
		HasEmail:  email != "",
		Limit:     httputil.UnknownValue,
		Remaining: httputil.UnknownValue,
	}
	if status.EmailUsed == "" {
		status.EmailUsed = defaultProbeEmail
	}

	params := url.Values{
		"per-page": {"1"},
		"mailto":   {status.EmailUsed},
	}

	req, err := httputil.NewAPIRequest(ctx, openAlexWorksBase, params, userAgent)
	if err != nil {
		status.Err = err.Error()
		return status
	}

	client := &http.Client{Timeout: probeTimeout}
	resp, err := client.Do(req)
	if err != nil {
		status.Err = err.Error()
		return status
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	// Only the headers matter; any status code that produced headers is
	// good enough for an informational probe.
	status.Limit, status.Remaining = httputil.RateLimitHeaders(resp.Header)
	return status
}
