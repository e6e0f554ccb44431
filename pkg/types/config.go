// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for requests to OpenAlex.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout for the main search calls.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "sort-by-citations/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the search flow.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the default number of results to return (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Email is the contact email sent as the mailto parameter for OpenAlex
	// polite-pool access. Empty means the common pool.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// HistoryConfig holds settings for the search-history store.
type HistoryConfig struct {
	// Dir is the directory holding the history database (history.db).
	Dir string `json:"dir" yaml:"dir"`

	// MaxEntries is the default number of entries the history listing
	// returns (default 20).
	MaxEntries int `json:"max_entries" yaml:"max_entries"`
}

// ExportConfig holds settings for export file output.
type ExportConfig struct {
	// Dir is the directory export files are written to (default "exports").
	Dir string `json:"dir" yaml:"dir"`
}

// Config groups all configuration sections.
type Config struct {
	Search  SearchConfig  `json:"search" yaml:"search"`
	History HistoryConfig `json:"history" yaml:"history"`
	Export  ExportConfig  `json:"export" yaml:"export"`
}
