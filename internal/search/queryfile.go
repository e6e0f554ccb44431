// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/O957/sort-by-citations/pkg/types"
)

// QueryFile is the on-disk representation of a search and its results. A
// saved search can be re-exported later without re-querying OpenAlex.
type QueryFile struct {
	Criteria CriteriaParams    `yaml:"criteria"`
	Papers   []types.Paper     `yaml:"papers"`
	Author   *types.AuthorInfo `yaml:"author,omitempty"`
	Summary  QuerySummary      `yaml:"summary"`
}

// CriteriaParams stores the search criteria in a serializable form.
type CriteriaParams struct {
	Subject        string `yaml:"subject"`
	Mode           string `yaml:"mode"`
	Limit          int    `yaml:"limit"`
	MinYear        int    `yaml:"min_year,omitempty"`
	MaxYear        int    `yaml:"max_year,omitempty"`
	MinCitations   int    `yaml:"min_citations,omitempty"`
	OpenAccessOnly bool   `yaml:"open_access_only,omitempty"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves criteria and results to a YAML file.
func WriteQueryFile(path string, criteria Criteria, out Output) error {
	qf := QueryFile{
		Criteria: CriteriaParams{
			Subject:        criteria.Subject,
			Mode:           string(criteria.Mode),
			Limit:          criteria.Limit,
			MinYear:        criteria.MinYear,
			MaxYear:        criteria.MaxYear,
			MinCitations:   criteria.MinCitations,
			OpenAccessOnly: criteria.OpenAccessOnly,
		},
		Papers: out.Papers,
		Author: out.Author,
		Summary: QuerySummary{
			Total:     len(out.Papers),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}

// ToCriteria converts stored CriteriaParams back into a Criteria struct.
func (p CriteriaParams) ToCriteria() Criteria {
	return Criteria{
		Subject:        p.Subject,
		Mode:           Mode(p.Mode),
		Limit:          p.Limit,
		MinYear:        p.MinYear,
		MaxYear:        p.MaxYear,
		MinCitations:   p.MinCitations,
		OpenAccessOnly: p.OpenAccessOnly,
	}
}
