// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export renders search results as downloadable listings: a
// titles-only text file, a full text file, and a CSV with a fixed column
// order.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/O957/sort-by-citations/pkg/types"
)

// Context describes what produced the papers, for file headers. The zero
// value renders as a plain keyword-search header.
type Context struct {
	// AuthorName is set for author-mode searches.
	AuthorName string
}

func (c Context) label() string {
	if c.AuthorName != "" {
		return "by " + c.AuthorName
	}
	return "Citation Search Results"
}

const timestampFmt = "2006-01-02 15:04:05"

// Titles writes the titles-only listing: a header, then one
// "rank. title (n citations)" line per paper.
func Titles(w io.Writer, papers []types.Paper, ec Context, now time.Time) error {
	fmt.Fprintf(w, "Top %d Papers %s\n", len(papers), ec.label())
	fmt.Fprintf(w, "Generated: %s\n\n", now.Format(timestampFmt))
	for i, p := range papers {
		if _, err := fmt.Fprintf(w, "%d. %s (%d citations)\n", i+1, p.Title, p.Citations); err != nil {
			return err
		}
	}
	return nil
}

// FullText writes the full listing with one block per paper. DOI and URL
// lines appear only when the paper has them.
func FullText(w io.Writer, papers []types.Paper, ec Context, now time.Time) error {
	fmt.Fprintf(w, "Top %d Papers %s\n", len(papers), ec.label())
	fmt.Fprintf(w, "Generated: %s\n", now.Format(timestampFmt))
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintln(w)

	for i, p := range papers {
		year := "Unknown"
		if p.Year > 0 {
			year = strconv.Itoa(p.Year)
		}
		fmt.Fprintf(w, "%d. %s\n", i+1, p.Title)
		fmt.Fprintf(w, "   Authors: %s\n", p.Authors)
		fmt.Fprintf(w, "   Year: %s\n", year)
		fmt.Fprintf(w, "   Citations: %d\n", p.Citations)
		fmt.Fprintf(w, "   Source: %s\n", p.Source)
		if p.DOI != "" {
			fmt.Fprintf(w, "   DOI: %s\n", p.DOI)
		}
		if p.URL != "" {
			fmt.Fprintf(w, "   URL: %s\n", p.URL)
		}
		if _, err := fmt.Fprintf(w, "   Open Access: %s\n\n", yesNo(p.OpenAccess)); err != nil {
			return err
		}
	}
	return nil
}

// csvColumns is the fixed CSV column order.
var csvColumns = []string{
	"rank", "title", "authors", "year", "citations", "source", "doi", "url", "open_access",
}

// CSV writes the results as CSV. Rank is 1-based; open_access renders as
// literal "Yes"/"No"; absent year/doi/url render as empty cells.
func CSV(w io.Writer, papers []types.Paper) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for i, p := range papers {
		year := ""
		if p.Year > 0 {
			year = strconv.Itoa(p.Year)
		}
		record := []string{
			strconv.Itoa(i + 1),
			p.Title,
			p.Authors,
			year,
			strconv.Itoa(p.Citations),
			p.Source,
			p.DOI,
			p.URL,
			yesNo(p.OpenAccess),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing CSV record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
