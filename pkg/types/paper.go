// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the citation search CLI.
package types

// Paper is one normalized search result. Every field is display-ready:
// absent upstream values are replaced with the documented defaults during
// normalization, so renderers and exporters never need nil checks.
type Paper struct {
	// Title is the paper title, or "No title" when the source omits it.
	Title string `json:"title" yaml:"title"`

	// Authors holds up to the first five author display names, comma-joined.
	// "Unknown" when no authorship carries an author record.
	Authors string `json:"authors" yaml:"authors"`

	// Year is the publication year; 0 means unknown.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// Citations is the cited-by count reported by OpenAlex.
	Citations int `json:"citations" yaml:"citations"`

	// DOI is the identifier as returned by the API (https://doi.org/ form),
	// empty when the work has none.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// URL is the DOI link when a DOI is present, otherwise empty.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// OpenAccess reports whether the work is flagged freely readable.
	OpenAccess bool `json:"open_access" yaml:"open_access"`

	// Source is the publishing venue display name, or "Unknown".
	Source string `json:"source" yaml:"source"`
}

// AuthorInfo describes the author resolved during an author-mode search.
type AuthorInfo struct {
	// ID is the canonical OpenAlex author ID used to filter works.
	ID string `json:"id" yaml:"id"`

	// DisplayName is the author's name, or "Unknown".
	DisplayName string `json:"display_name" yaml:"display_name"`

	// WorksCount is the author's total number of works.
	WorksCount int `json:"works_count" yaml:"works_count"`

	// CitedByCount is the author's total citation count.
	CitedByCount int `json:"cited_by_count" yaml:"cited_by_count"`

	// Institution is the last known institution display name, if any.
	Institution string `json:"institution,omitempty" yaml:"institution,omitempty"`

	// ORCID is the author's ORCID URL, if any.
	ORCID string `json:"orcid,omitempty" yaml:"orcid,omitempty"`
}

// RateLimitStatus reports the outcome of the rate-limit probe. All values
// are informational; a failed probe fills Err and leaves the counters at
// "unknown".
type RateLimitStatus struct {
	// Limit is the requests-per-second cap reported by the API.
	Limit string `json:"limit" yaml:"limit"`

	// Remaining is the remaining request budget reported by the API.
	Remaining string `json:"remaining" yaml:"remaining"`

	// EmailUsed is the mailto address the probe carried.
	EmailUsed string `json:"email_used" yaml:"email_used"`

	// HasEmail reports whether the user supplied an email (polite pool)
	// rather than the probe falling back to the default address.
	HasEmail bool `json:"has_email" yaml:"has_email"`

	// Err holds the transport error message when the probe failed.
	Err string `json:"error,omitempty" yaml:"error,omitempty"`
}
