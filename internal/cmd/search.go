package cmd

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harrison/sheetshow/internal/config"
	"github.com/harrison/sheetshow/internal/display"
	"github.com/harrison/sheetshow/internal/export"
	"github.com/harrison/sheetshow/internal/fileutil"
	"github.com/harrison/sheetshow/internal/logger"
	"github.com/harrison/sheetshow/internal/models"
	"github.com/harrison/sheetshow/internal/scanner"
	"github.com/harrison/sheetshow/internal/search"
)

// runSearch implements the root command: search, list, then export
func runSearch(cmd *cobra.Command, args []string) error {
	terms, err := parseTerms(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	log := logger.NewConsoleLogger(stderr, cfg.LogLevel)
	if cmd.Flags().Changed("extensions") {
		warnExtensionTerms(log, terms)
	}

	target, _ := cmd.Flags().GetString("path")
	if target == "" {
		target, _ = cmd.Flags().GetString("file")
	}

	results, report, err := runLocalSearch(cmd, target, terms, cfg, log)
	if err != nil {
		if !errors.Is(err, search.ErrRootNotFound) {
			return err
		}
		log.LogError(fmt.Sprintf("Error: Path '%s' does not exist.", target))
	}

	display.Results(stdout, results, cfg.MaxDisplay)
	if report != nil {
		if w, ok := display.SkippedFilesWarning(unreadable(report)); ok {
			w.Display(stderr)
		}
	}

	return handleExport(cmd, results, cfg)
}

// parseTerms rejects blank search terms
func parseTerms(args []string) ([]string, error) {
	for _, arg := range args {
		if strings.TrimSpace(arg) == "" {
			return nil, fmt.Errorf("search terms cannot be empty")
		}
	}
	return args, nil
}

var extensionLike = regexp.MustCompile(`^\.[A-Za-z0-9]{1,10}$`)

// warnExtensionTerms flags terms that were probably meant as extensions,
// as in "-e .txt .md" where ".md" becomes a term
func warnExtensionTerms(log *logger.ConsoleLogger, terms []string) {
	for _, term := range terms {
		if extensionLike.MatchString(term) {
			log.LogWarn(fmt.Sprintf("Warning: search term '%s' looks like a file extension; "+
				"list extensions comma-separated (-e .txt,.md) or repeat -e", term))
		}
	}
}

// loadConfig reads the config file and applies any flags set on the command line
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	flags := cmd.Flags()

	var extensionsPtr *[]string
	if flags.Changed("extensions") {
		extensions, _ := flags.GetStringSlice("extensions")
		extensionsPtr = &extensions
	}

	var excludeDirsPtr *[]string
	if flags.Changed("exclude-dir") {
		excludeDirs, _ := flags.GetStringSlice("exclude-dir")
		excludeDirsPtr = &excludeDirs
	}

	var maxDisplayPtr *int
	if flags.Changed("max-display") {
		maxDisplay, _ := flags.GetInt("max-display")
		maxDisplayPtr = &maxDisplay
	}

	var logLevelPtr *string
	if flags.Changed("log-level") {
		logLevel, _ := flags.GetString("log-level")
		logLevel = strings.ToLower(strings.TrimSpace(logLevel))
		logLevelPtr = &logLevel
	}

	var formatPtr *string
	if flags.Changed("format") {
		format, _ := flags.GetString("format")
		formatPtr = &format
	} else if output, _ := flags.GetString("output"); output != "" {
		if f, ok := export.FormatFromPath(output); ok {
			format := string(f)
			formatPtr = &format
		}
	}

	cfg.MergeWithFlags(extensionsPtr, excludeDirsPtr, maxDisplayPtr, logLevelPtr, formatPtr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// runLocalSearch searches target on disk, drawing a progress bar on a terminal
func runLocalSearch(cmd *cobra.Command, target string, terms []string, cfg *config.Config, log *logger.ConsoleLogger) (*models.SearchResults, *search.Report, error) {
	fs, root, location, err := search.Local(target)
	if err != nil {
		return models.NewSearchResults(terms, target), nil, err
	}

	var progress *logger.FileProgress
	noProgress, _ := cmd.Flags().GetBool("no-progress")
	stderr := cmd.ErrOrStderr()
	showProgress := !noProgress && isTerminal(stderr)

	opts := search.Options{
		Terms:        terms,
		Extensions:   cfg.Extensions,
		ExcludeDirs:  cfg.ExcludeDirs,
		Location:     location,
		MaxLineBytes: cfg.MaxLineBytes,
		Logger:       log,
		OnStart: func(total int) {
			if showProgress && total > 0 {
				progress = logger.NewFileProgress(stderr, total, !color.NoColor)
			}
		},
		OnFile: func(fileutil.File, scanner.Outcome) {
			progress.Step()
		},
	}

	results, report, err := search.Search(fs, root, opts)
	progress.Finish()
	return results, report, err
}

// unreadable lists files and sheets that were skipped during the search
func unreadable(report *search.Report) []string {
	var files []string
	for _, skip := range report.Skipped {
		files = append(files, skip.Path)
	}
	for _, se := range report.SheetErrors {
		files = append(files, fmt.Sprintf("%s (sheet '%s')", se.File, se.Sheet))
	}
	return files
}

// handleExport exports when asked on the command line, otherwise offers to
// when there are results and stdin is interactive
func handleExport(cmd *cobra.Command, results *models.SearchResults, cfg *config.Config) error {
	stdout := cmd.OutOrStdout()
	exportFlag, _ := cmd.Flags().GetBool("export")
	output, _ := cmd.Flags().GetString("output")

	if !exportFlag && output == "" {
		if results.IsEmpty() || !stdinIsTerminal(cmd.InOrStdin()) {
			return nil
		}
		name, ok, err := promptExport(stdout, newPromptReader(cmd.InOrStdin()))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		output = name
	}

	format := cfg.Format
	if f, ok := export.FormatFromPath(output); ok && !cmd.Flags().Changed("format") {
		format = string(f)
	}

	return saveResults(stdout, results, output, format)
}

func saveResults(out io.Writer, results *models.SearchResults, output, format string) error {
	path, err := export.Export(results, export.Options{Path: output, Format: export.Format(format)})
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Fprintln(out, "No results to save.")
		return nil
	}
	fmt.Fprintf(out, "Results saved to: %s\n", path)
	return nil
}
