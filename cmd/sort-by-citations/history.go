// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/O957/sort-by-citations/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent searches",
	Long: `History lists recent searches recorded in the local SQLite history
database, newest first.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 0, "number of entries to list (default 20)")
	historyCmd.Flags().Bool("json", false, "output entries as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := history.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No searches recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-19s  %-7s  %-40s  %-20s  %-7s  %s\n",
		"When", "Mode", "Subject", "Filters", "Results", "Top")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 108))

	for _, e := range entries {
		subject := e.Subject
		if len(subject) > 40 {
			subject = subject[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-19s  %-7s  %-40s  %-20s  %-7d  %d\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			e.Mode, subject, filterSummary(e), e.ResultCount, e.TopCitations)
	}
	return nil
}

func filterSummary(e history.Entry) string {
	var parts []string
	if e.MinYear > 0 || e.MaxYear > 0 {
		parts = append(parts, fmt.Sprintf("%s-%s", yearOrBlank(e.MinYear), yearOrBlank(e.MaxYear)))
	}
	if e.MinCitations > 0 {
		parts = append(parts, fmt.Sprintf(">=%d cit", e.MinCitations))
	}
	if e.OpenAccessOnly {
		parts = append(parts, "oa")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

func yearOrBlank(y int) string {
	if y <= 0 {
		return ""
	}
	return fmt.Sprintf("%d", y)
}
