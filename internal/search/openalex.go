// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/O957/sort-by-citations/internal/httputil"
	"github.com/O957/sort-by-citations/pkg/types"
)

// Endpoint bases are vars so tests can substitute an httptest server.
var (
	openAlexWorksBase   = "https://api.openalex.org/works"
	openAlexAuthorsBase = "https://api.openalex.org/authors"
)

// maxPerPage is the OpenAlex page-size cap.
const maxPerPage = 200

// defaultTimeout applies when the configured HTTP timeout is zero.
const defaultTimeout = 30 * time.Second

// Client queries the OpenAlex API. The contact email is explicit
// per-client state, never a process-wide setting.
type Client struct {
	HTTP *http.Client

	// Email is sent as the mailto parameter for polite-pool access.
	Email string

	// UserAgent is sent with every request.
	UserAgent string
}

// NewClient builds a Client from the search configuration.
func NewClient(cfg types.SearchConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		HTTP:      &http.Client{Timeout: timeout},
		Email:     cfg.Email,
		UserAgent: cfg.UserAgent,
	}
}

// SearchWorks runs the works search described by criteria and returns one
// normalized result page, sorted by descending citation count server-side.
// In author mode authorID carries the resolved OpenAlex author ID and the
// subject is not used as a full-text query. The page is unfiltered: the
// caller applies FilterByCitations.
func (c *Client) SearchWorks(ctx context.Context, criteria Criteria, authorID string) ([]types.Paper, error) {
	params := url.Values{
		"sort":     {"cited_by_count:desc"},
		"per-page": {fmt.Sprintf("%d", fetchSize(criteria))},
		"page":     {"1"},
	}
	// Author mode selects works by author filter instead of full text.
	if authorID == "" {
		params.Set("search", criteria.Subject)
	}

	var filters []string
	if authorID != "" {
		filters = append(filters, "author.id:"+authorID)
	}
	if criteria.MinYear > 0 {
		filters = append(filters, fmt.Sprintf("from_publication_date:%d-01-01", criteria.MinYear))
	}
	if criteria.MaxYear > 0 {
		filters = append(filters, fmt.Sprintf("to_publication_date:%d-12-31", criteria.MaxYear))
	}
	if criteria.OpenAccessOnly {
		filters = append(filters, "is_oa:true")
	}
	if len(filters) > 0 {
		params.Set("filter", strings.Join(filters, ","))
	}

	if c.Email != "" {
		params.Set("mailto", c.Email)
	}

	req, err := httputil.NewAPIRequest(ctx, openAlexWorksBase, params, c.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("OpenAlex works request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OpenAlex works endpoint returned HTTP %d", resp.StatusCode)
	}

	var wr openAlexWorksResponse
	if err := json.NewDecoder(resp.Body).Decode(&wr); err != nil {
		return nil, fmt.Errorf("parsing OpenAlex works response: %w", err)
	}

	papers := make([]types.Paper, len(wr.Results))
	for i, work := range wr.Results {
		papers[i] = normalizeWork(work)
	}
	return papers, nil
}

// ResolveAuthor looks up the top-ranked author for a free-text name. A name
// matching no record returns (nil, nil); that is a "no match" outcome, not
// a failure.
func (c *Client) ResolveAuthor(ctx context.Context, name string) (*types.AuthorInfo, error) {
	params := url.Values{
		"search":   {name},
		"per-page": {"1"},
	}
	if c.Email != "" {
		params.Set("mailto", c.Email)
	}

	req, err := httputil.NewAPIRequest(ctx, openAlexAuthorsBase, params, c.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("OpenAlex authors request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OpenAlex authors endpoint returned HTTP %d", resp.StatusCode)
	}

	var ar openAlexAuthorsResponse
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		return nil, fmt.Errorf("parsing OpenAlex authors response: %w", err)
	}

	if len(ar.Results) == 0 {
		return nil, nil
	}

	top := ar.Results[0]
	info := &types.AuthorInfo{
		ID:           top.ID,
		DisplayName:  top.DisplayName,
		WorksCount:   top.WorksCount,
		CitedByCount: top.CitedByCount,
		ORCID:        top.ORCID,
	}
	if info.DisplayName == "" {
		info.DisplayName = "Unknown"
	}
	if top.LastKnownInstitution != nil {
		info.Institution = top.LastKnownInstitution.DisplayName
	}
	return info, nil
}

// fetchSize returns the page size requested from OpenAlex. A minimum-
// citations filter inflates the fetch to 3x the requested limit to
// compensate for papers discarded client-side; the result is capped at the
// API page-size limit. A short page after filtering is returned as-is, no
// backfill pass is made.
func fetchSize(criteria Criteria) int {
	n := criteria.Limit
	if criteria.MinCitations > 0 {
		n *= 3
	}
	if n > maxPerPage {
		n = maxPerPage
	}
	return n
}

// OpenAlex API JSON structures. Nested sub-records are pointers because the
// API returns explicit nulls for them; normalization defaults each level.
type openAlexWorksResponse struct {
	Meta    openAlexMeta   `json:"meta"`
	Results []openAlexWork `json:"results"`
}

type openAlexMeta struct {
	Count   int `json:"count"`
	PerPage int `json:"per_page"`
	Page    int `json:"page"`
}

type openAlexWork struct {
	ID              string               `json:"id"`
	Title           string               `json:"title"`
	DOI             string               `json:"doi"`
	PublicationYear int                  `json:"publication_year"`
	CitedByCount    int                  `json:"cited_by_count"`
	Authorships     []openAlexAuthorship `json:"authorships"`
	OpenAccess      *openAlexOpenAccess  `json:"open_access"`
	PrimaryLocation *openAlexLocation    `json:"primary_location"`
}

type openAlexAuthorship struct {
	Author *openAlexAuthor `json:"author"`
}

type openAlexAuthor struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type openAlexOpenAccess struct {
	IsOA bool `json:"is_oa"`
}

type openAlexLocation struct {
	Source *openAlexSource `json:"source"`
}

type openAlexSource struct {
	DisplayName string `json:"display_name"`
}

type openAlexAuthorsResponse struct {
	Results []openAlexAuthorRecord `json:"results"`
}

type openAlexAuthorRecord struct {
	ID                   string               `json:"id"`
	DisplayName          string               `json:"display_name"`
	WorksCount           int                  `json:"works_count"`
	CitedByCount         int                  `json:"cited_by_count"`
	ORCID                string               `json:"orcid"`
	LastKnownInstitution *openAlexInstitution `json:"last_known_institution"`
}

type openAlexInstitution struct {
	DisplayName string `json:"display_name"`
}
