// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/O957/sort-by-citations/pkg/types"
)

var testTime = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func samplePapers() []types.Paper {
	return []types.Paper{
		{
			Title:      "X",
			Authors:    "Ada Lovelace, Charles Babbage",
			Year:       2017,
			Citations:  5,
			DOI:        "https://doi.org/10.1/x",
			URL:        "https://doi.org/10.1/x",
			OpenAccess: true,
			Source:     "NeurIPS",
		},
		{
			Title:     "No title",
			Authors:   "Unknown",
			Citations: 0,
			Source:    "Unknown",
		},
	}
}

func TestTitles(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Titles(&buf, samplePapers(), Context{}, testTime))

	s := buf.String()
	assert.Contains(t, s, "Top 2 Papers Citation Search Results")
	assert.Contains(t, s, "Generated: 2026-08-30 12:00:00")
	assert.Contains(t, s, "1. X (5 citations)")
	assert.Contains(t, s, "2. No title (0 citations)")
}

func TestTitlesAuthorContext(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Titles(&buf, samplePapers(), Context{AuthorName: "Marie Curie"}, testTime))
	assert.Contains(t, buf.String(), "Top 2 Papers by Marie Curie")
}

func TestFullText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FullText(&buf, samplePapers(), Context{}, testTime))

	s := buf.String()
	assert.Contains(t, s, strings.Repeat("=", 80))
	assert.Contains(t, s, "1. X")
	assert.Contains(t, s, "   Authors: Ada Lovelace, Charles Babbage")
	assert.Contains(t, s, "   Year: 2017")
	assert.Contains(t, s, "   Citations: 5")
	assert.Contains(t, s, "   Source: NeurIPS")
	assert.Contains(t, s, "   DOI: https://doi.org/10.1/x")
	assert.Contains(t, s, "   URL: https://doi.org/10.1/x")
	assert.Contains(t, s, "   Open Access: Yes")

	// The second paper has no year, DOI, or URL.
	assert.Contains(t, s, "   Year: Unknown")
	assert.Contains(t, s, "   Open Access: No")
	second := s[strings.Index(s, "2. No title"):]
	assert.NotContains(t, second, "DOI:")
	assert.NotContains(t, second, "URL:")
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, samplePapers()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"rank", "title", "authors", "year", "citations", "source", "doi", "url", "open_access",
	}, records[0])
	assert.Equal(t, []string{
		"1", "X", "Ada Lovelace, Charles Babbage", "2017", "5", "NeurIPS",
		"https://doi.org/10.1/x", "https://doi.org/10.1/x", "Yes",
	}, records[1])
	assert.Equal(t, []string{
		"2", "No title", "Unknown", "", "0", "Unknown", "", "", "No",
	}, records[2])
}

func TestCSVSinglePaperLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, samplePapers()[:1]))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "1,"))
	assert.Contains(t, lines[1], ",5,")
	assert.True(t, strings.HasSuffix(lines[1], ",Yes"))
}

func TestCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1) // header only
}
