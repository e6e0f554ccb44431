// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"strings"

	"github.com/O957/sort-by-citations/pkg/types"
)

// maxAuthors caps the number of author names carried per paper.
const maxAuthors = 5

// normalizeWork maps one raw OpenAlex work to a display-ready Paper. Every
// nested sub-record may be null (open_access, primary_location, its source)
// and each absence degrades to the field default instead of failing. The
// mapping is pure and is applied identically to every record of a page.
func normalizeWork(work openAlexWork) types.Paper {
	p := types.Paper{
		Title:     work.Title,
		Authors:   joinAuthors(work.Authorships),
		Year:      work.PublicationYear,
		Citations: work.CitedByCount,
		DOI:       work.DOI,
		Source:    "Unknown",
	}
	if p.Title == "" {
		p.Title = "No title"
	}
	if p.DOI != "" {
		p.URL = p.DOI
	}
	if work.OpenAccess != nil {
		p.OpenAccess = work.OpenAccess.IsOA
	}
	if work.PrimaryLocation != nil && work.PrimaryLocation.Source != nil &&
		work.PrimaryLocation.Source.DisplayName != "" {
		p.Source = work.PrimaryLocation.Source.DisplayName
	}
	return p
}

// joinAuthors extracts up to the first five author display names in source
// order. Authorships without an author record are skipped; an author with
// no display name contributes "Unknown". An empty result yields "Unknown".
func joinAuthors(authorships []openAlexAuthorship) string {
	var names []string
	for _, authorship := range authorships {
		if authorship.Author == nil {
			continue
		}
		name := authorship.Author.DisplayName
		if name == "" {
			name = "Unknown"
		}
		names = append(names, name)
		if len(names) == maxAuthors {
			break
		}
	}
	if len(names) == 0 {
		return "Unknown"
	}
	return strings.Join(names, ", ")
}
