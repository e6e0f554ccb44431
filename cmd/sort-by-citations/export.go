// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/O957/sort-by-citations/internal/export"
	"github.com/O957/sort-by-citations/internal/search"
)

var exportCmd = &cobra.Command{
	Use:   "export <query-file.yaml>",
	Short: "Re-export a saved search without re-querying OpenAlex",
	Long: `Export reads a query file previously written with 'search --save' and
writes the three export formats: a titles-only text listing, a full text
listing, and a CSV. By default all three land in the export directory; use
the output flags to write specific formats to specific paths.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("titles-out", "", "path for the titles-only text export")
	exportCmd.Flags().String("full-out", "", "path for the full text export")
	exportCmd.Flags().String("csv-out", "", "path for the CSV export")
	exportCmd.Flags().String("dir", "", "export directory for default output paths")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	qf, err := search.ReadQueryFile(args[0])
	if err != nil {
		return err
	}

	ec := export.Context{}
	if qf.Author != nil {
		ec.AuthorName = qf.Author.DisplayName
	}
	now := time.Now()

	titlesPath, _ := cmd.Flags().GetString("titles-out")
	fullPath, _ := cmd.Flags().GetString("full-out")
	csvPath, _ := cmd.Flags().GetString("csv-out")

	// No explicit outputs: write all three into the export directory.
	if titlesPath == "" && fullPath == "" && csvPath == "" {
		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			dir = viper.GetString("export_dir")
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating export directory: %w", err)
		}
		titlesPath = filepath.Join(dir, "citation_titles.txt")
		fullPath = filepath.Join(dir, "citation_full.txt")
		csvPath = filepath.Join(dir, "citation_papers.csv")
	}

	if titlesPath != "" {
		err := writeFile(titlesPath, func(w io.Writer) error {
			return export.Titles(w, qf.Papers, ec, now)
		})
		if err != nil {
			return err
		}
	}
	if fullPath != "" {
		err := writeFile(fullPath, func(w io.Writer) error {
			return export.FullText(w, qf.Papers, ec, now)
		})
		if err != nil {
			return err
		}
	}
	if csvPath != "" {
		err := writeFile(csvPath, func(w io.Writer) error {
			return export.CSV(w, qf.Papers)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
