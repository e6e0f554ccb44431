// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/O957/sort-by-citations/internal/export"
	"github.com/O957/sort-by-citations/internal/history"
	"github.com/O957/sort-by-citations/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search [terms...]",
	Short: "Search OpenAlex for top cited papers",
	Long: `Search queries OpenAlex for the most cited papers matching a keyword, or,
with --by-author, for the most cited papers of the top-ranked author matching
a name. Results are sorted by descending citation count server-side and can
be filtered by year range, minimum citations, and open-access status.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Bool("by-author", false, "treat the terms as an author name")
	searchCmd.Flags().Int("limit", 0, "number of results to return (default 10, max 200)")
	searchCmd.Flags().Int("min-year", 0, "minimum publication year")
	searchCmd.Flags().Int("max-year", 0, "maximum publication year")
	searchCmd.Flags().Int("min-citations", 0, "minimum citation count (filtered client-side)")
	searchCmd.Flags().Bool("open-access", false, "only return open access papers")
	searchCmd.Flags().String("email", "", "contact email for OpenAlex polite pool")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("save", "", "save criteria and results to a YAML query file")
	searchCmd.Flags().String("titles-out", "", "write a titles-only text export to this path")
	searchCmd.Flags().String("full-out", "", "write a full text export to this path")
	searchCmd.Flags().String("csv-out", "", "write a CSV export to this path")
	searchCmd.Flags().Bool("no-history", false, "do not record this search in the history database")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	byAuthor, _ := cmd.Flags().GetBool("by-author")
	limit, _ := cmd.Flags().GetInt("limit")
	minYear, _ := cmd.Flags().GetInt("min-year")
	maxYear, _ := cmd.Flags().GetInt("max-year")
	minCitations, _ := cmd.Flags().GetInt("min-citations")
	openAccess, _ := cmd.Flags().GetBool("open-access")
	emailFlag, _ := cmd.Flags().GetString("email")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	mode := search.ModeKeyword
	if byAuthor {
		mode = search.ModeAuthor
	}

	criteria := search.Criteria{
		Subject:        strings.Join(args, " "),
		Mode:           mode,
		Limit:          limit,
		MinYear:        minYear,
		MaxYear:        maxYear,
		MinCitations:   minCitations,
		OpenAccessOnly: openAccess,
	}

	cfg := searchConfig(resolveEmail(emailFlag))
	if err := criteria.Validate(cfg); err != nil {
		return err
	}

	client := search.NewClient(cfg)
	fmt.Fprintln(os.Stderr, "Searching OpenAlex...")

	out, err := search.Run(cmd.Context(), client, criteria, cfg)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	search.FormatPoolStatus(out.RateLimit, os.Stderr)

	if criteria.Mode == search.ModeAuthor && out.Author == nil {
		fmt.Printf("No author found matching %q.\n", criteria.Subject)
		return nil
	}
	search.FormatAuthor(out.Author, os.Stdout)

	if jsonOutput {
		if err := search.FormatJSON(out, os.Stdout); err != nil {
			return err
		}
	} else {
		search.FormatTable(out, os.Stdout)
	}

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		if err := search.WriteQueryFile(savePath, criteria, out); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Saved query file:", savePath)
	}

	if err := writeSearchExports(cmd, out); err != nil {
		return err
	}

	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		if err := recordSearch(cmd.Context(), criteria, out); err != nil {
			// History is a convenience; a broken database must not turn a
			// successful search into a failure.
			fmt.Fprintf(os.Stderr, "warning: could not record history: %v\n", err)
		}
	}
	return nil
}

// writeSearchExports writes any export files requested via flags.
func writeSearchExports(cmd *cobra.Command, out search.Output) error {
	ec := exportContext(out)
	now := time.Now()

	if path, _ := cmd.Flags().GetString("titles-out"); path != "" {
		err := writeFile(path, func(w io.Writer) error {
			return export.Titles(w, out.Papers, ec, now)
		})
		if err != nil {
			return err
		}
	}
	if path, _ := cmd.Flags().GetString("full-out"); path != "" {
		err := writeFile(path, func(w io.Writer) error {
			return export.FullText(w, out.Papers, ec, now)
		})
		if err != nil {
			return err
		}
	}
	if path, _ := cmd.Flags().GetString("csv-out"); path != "" {
		err := writeFile(path, func(w io.Writer) error {
			return export.CSV(w, out.Papers)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func exportContext(out search.Output) export.Context {
	if out.Author != nil {
		return export.Context{AuthorName: out.Author.DisplayName}
	}
	return export.Context{}
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	fmt.Fprintln(os.Stderr, "Wrote", path)
	return nil
}

// recordSearch appends the completed search to the history database.
func recordSearch(ctx context.Context, criteria search.Criteria, out search.Output) error {
	store, err := history.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	topCitations := 0
	if len(out.Papers) > 0 {
		topCitations = out.Papers[0].Citations
	}
	return store.Record(ctx, history.Entry{
		Mode:           string(criteria.Mode),
		Subject:        criteria.Subject,
		MinYear:        criteria.MinYear,
		MaxYear:        criteria.MaxYear,
		MinCitations:   criteria.MinCitations,
		OpenAccessOnly: criteria.OpenAccessOnly,
		ResultCount:    len(out.Papers),
		TopCitations:   topCitations,
	})
}
