package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/sheetshow/internal/config"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for sheetshow
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheetshow TERM... (--path DIR | --file FILE)",
		Short: "Search text files and spreadsheets, export matches to a workbook",
		Long: `Sheetshow searches a directory tree or a single file for one or more terms.

Plain-text files are matched line by line. Spreadsheets (.xlsx, .xls) are
matched cell by cell in every text column of every sheet, and each match keeps
the full row it was found in. Matching is case-insensitive substring search.

Results are listed on the terminal and can be exported to a formatted workbook
with a "Search Results" sheet and a "Summary" sheet, or to JSON, CSV, Markdown,
HTML or SQLite.

Configuration is loaded from .sheetshow.yaml if present.
CLI flags override configuration file settings.

Examples:
  sheetshow "function" --path ./src
  sheetshow "TODO" "FIXME" --file script.py
  sheetshow "factor" --file "Hosting Services IP Networks.xlsx"
  sheetshow "error" "warning" --path /home/user/project --output my_results.xlsx
  sheetshow "invoice" -p ./finance -x --format json
  sheetshow "config" -p . -e .yaml,.toml

Extensions default to .txt .py .js .html .css .md .json .xml .csv .xlsx .xls.
Separate several with commas or repeat -e; a space-separated list would make
the extra extensions search terms.`,
		Version: Version,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runSearch,
		// main prints the error
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringP("path", "p", "", "Path/directory to search in")
	cmd.Flags().StringP("file", "f", "", "Specific file to search in")
	cmd.Flags().StringSliceP("extensions", "e", nil, "File extensions to search, comma-separated or repeated (-e .txt,.md or -e .txt -e .md)")
	cmd.Flags().StringSlice("exclude-dir", nil, "Directory names to skip while searching (repeatable)")
	cmd.Flags().BoolP("export", "x", false, "Automatically export the results")
	cmd.Flags().StringP("output", "o", "", "Output file name (optional, implies --export)")
	cmd.Flags().String("format", "", "Export format: xlsx, json, csv, markdown (md), html, sqlite (default from config, else xlsx)")
	cmd.Flags().IntP("max-display", "m", 20, "Maximum number of results to display")
	cmd.Flags().String("config", config.DefaultPath, "Path to config file")
	cmd.Flags().String("log-level", "", "Log level: trace, debug, info, warn, error (default from config, else info)")
	cmd.Flags().Bool("no-progress", false, "Do not draw the progress bar")

	cmd.MarkFlagsMutuallyExclusive("path", "file")
	cmd.MarkFlagsOneRequired("path", "file")

	return cmd
}
