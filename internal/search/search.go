// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries the OpenAlex API for top-cited papers and returns
// normalized, display-ready results.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/O957/sort-by-citations/pkg/types"
)

// Mode selects between keyword and author search.
type Mode string

const (
	ModeKeyword Mode = "keyword"
	ModeAuthor  Mode = "author"
)

// Criteria holds the parameters of one search.
type Criteria struct {
	// Subject is the search keyword or, in author mode, the author name.
	Subject string

	// Mode selects keyword or author search. Empty means keyword.
	Mode Mode

	// Limit is the number of results to return. Values above the OpenAlex
	// page-size cap (200) are clamped.
	Limit int

	// MinYear and MaxYear bound the publication year inclusively; 0 means
	// unbounded.
	MinYear int
	MaxYear int

	// MinCitations drops papers below the threshold client-side; 0 means
	// no threshold. OpenAlex has no server-side predicate for this.
	MinCitations int

	// OpenAccessOnly restricts results to open-access works.
	OpenAccessOnly bool
}

// Validate checks the criteria and normalizes the limit.
func (c *Criteria) Validate(defaults types.SearchConfig) error {
	if strings.TrimSpace(c.Subject) == "" {
		if c.Mode == ModeAuthor {
			return fmt.Errorf("author name is empty")
		}
		return fmt.Errorf("search keyword is empty")
	}
	if c.Mode == "" {
		c.Mode = ModeKeyword
	}
	if c.Mode != ModeKeyword && c.Mode != ModeAuthor {
		return fmt.Errorf("unknown search mode %q", c.Mode)
	}
	if c.Limit <= 0 {
		c.Limit = defaults.MaxResults
	}
	if c.Limit <= 0 {
		c.Limit = 10
	}
	if c.Limit > maxPerPage {
		c.Limit = maxPerPage
	}
	if c.MinYear > 0 && c.MaxYear > 0 && c.MinYear > c.MaxYear {
		return fmt.Errorf("min year %d is after max year %d", c.MinYear, c.MaxYear)
	}
	return nil
}

// Output holds the results of one search action.
type Output struct {
	Papers []types.Paper

	// Author is set in author mode when the name resolved; nil otherwise.
	Author *types.AuthorInfo

	// RateLimit is the probe status. Informational only.
	RateLimit types.RateLimitStatus
}

// Run performs one search action: in author mode it resolves the author
// first, then runs the works search, then the independent rate-limit probe.
// The three calls are sequential; only the works search can fail the action.
// An author name matching no record yields an empty Output with a nil error.
func Run(ctx context.Context, client *Client, criteria Criteria, cfg types.SearchConfig) (Output, error) {
	if err := criteria.Validate(cfg); err != nil {
		return Output{}, err
	}

	var out Output

	authorID := ""
	if criteria.Mode == ModeAuthor {
		author, err := client.ResolveAuthor(ctx, criteria.Subject)
		if err != nil {
			return Output{}, err
		}
		if author == nil {
			out.RateLimit = ProbeRateLimit(ctx, cfg.Email, cfg.UserAgent)
			return out, nil
		}
		out.Author = author
		authorID = author.ID
	}

	papers, err := client.SearchWorks(ctx, criteria, authorID)
	if err != nil {
		return Output{}, err
	}
	out.Papers = FilterByCitations(papers, criteria.MinCitations, criteria.Limit)

	out.RateLimit = ProbeRateLimit(ctx, cfg.Email, cfg.UserAgent)
	return out, nil
}

// FilterByCitations keeps papers with at least min citations, preserving
// order, and truncates to limit. A min of 0 only truncates. The fetch size
// is inflated ahead of this filter (see fetchSize); when the page still
// under-fills the limit the short list is returned as-is.
func FilterByCitations(papers []types.Paper, min, limit int) []types.Paper {
	kept := papers
	if min > 0 {
		kept = make([]types.Paper, 0, len(papers))
		for _, p := range papers {
			if p.Citations >= min {
				kept = append(kept, p)
			}
		}
	}
	if limit > 0 && len(kept) > limit {
		kept = kept[:limit]
	}
	return kept
}

// FormatTable writes results as a human-readable ranked table to w.
func FormatTable(out Output, w io.Writer) {
	if len(out.Papers) == 0 {
		fmt.Fprintln(w, "No papers found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-30s  %-4s  %-9s  %s\n",
		"Rank", "Title", "Authors", "Year", "Citations", "Source")
	fmt.Fprintln(w, strings.Repeat("-", 124))

	for i, p := range out.Papers {
		title := p.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		authors := p.Authors
		if len(authors) > 30 {
			authors = authors[:27] + "..."
		}
		year := ""
		if p.Year > 0 {
			year = fmt.Sprintf("%d", p.Year)
		}
		fmt.Fprintf(w, "%-4d  %-60s  %-30s  %-4s  %-9d  %s\n",
			i+1, title, authors, year, p.Citations, p.Source)
	}

	fmt.Fprintf(w, "\n%d papers\n", len(out.Papers))
}

// FormatJSON writes results as indented JSON to w.
func FormatJSON(out Output, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out.Papers)
}

// FormatAuthor writes the resolved author summary to w.
func FormatAuthor(a *types.AuthorInfo, w io.Writer) {
	if a == nil {
		return
	}
	institution := a.Institution
	if institution == "" {
		institution = "Unknown"
	}
	fmt.Fprintf(w, "Author found: %s\n", a.DisplayName)
	fmt.Fprintf(w, "  Institution: %s\n", institution)
	fmt.Fprintf(w, "  Total works: %d | Total citations: %d\n", a.WorksCount, a.CitedByCount)
	if a.ORCID != "" {
		fmt.Fprintf(w, "  ORCID: %s\n", a.ORCID)
	}
}

// FormatPoolStatus writes the polite-pool status line to w.
func FormatPoolStatus(rl types.RateLimitStatus, w io.Writer) {
	if rl.Err != "" {
		fmt.Fprintf(w, "Rate limit check failed: %s\n", rl.Err)
		return
	}
	if rl.HasEmail {
		fmt.Fprintf(w, "Polite pool (email %s) | rate limit: %s req/s, remaining: %s\n",
			rl.EmailUsed, rl.Limit, rl.Remaining)
		return
	}
	fmt.Fprintf(w, "Common pool (no email configured) | rate limit: %s req/s, remaining: %s\n",
		rl.Limit, rl.Remaining)
}
