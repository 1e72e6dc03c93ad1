// Package search walks a file set, routes each file to the matching scanner
// and collects every match into a SearchResults aggregator.
package search

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/harrison/sheetshow/internal/fileutil"
	"github.com/harrison/sheetshow/internal/logger"
	"github.com/harrison/sheetshow/internal/models"
	"github.com/harrison/sheetshow/internal/scanner"
	"github.com/harrison/sheetshow/internal/sheet"
)

// ErrRootNotFound is returned when the search root does not exist
var ErrRootNotFound = fileutil.ErrRootNotFound

// Logger receives progress and warning messages during a search
type Logger interface {
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogSearchComplete(searched, matched, matches int, elapsed time.Duration)
}

// Options configures a search
type Options struct {
	Terms        []string
	Extensions   []string // Empty means fileutil.DefaultExtensions
	ExcludeDirs  []string
	Location     string // Absolute search root recorded on the results (defaults to root)
	MaxLineBytes int    // Text scanner line limit (0 = default)
	Logger       Logger // Optional; nil discards messages

	// OnStart is called once the file list is known
	OnStart func(total int)
	// OnFile is called after each file has been scanned
	OnFile func(file fileutil.File, outcome scanner.Outcome)
}

// Skip is a file that could not be scanned
type Skip struct {
	Path   string
	Reason error
}

// Report summarises a completed search
type Report struct {
	FilesSearched int                  // Files considered
	FilesMatched  int                  // Files with at least one match
	TotalMatches  int                  // Matches across all files
	Skipped       []Skip               // Files that could not be read
	SheetErrors   []scanner.SheetError // Sheets that could not be read
	WalkErrors    []error              // Non-fatal errors while listing files
}

// Search scans root (a file or a directory inside fs) for the given terms.
//
// A missing root returns an error wrapping ErrRootNotFound together with an
// empty result set. Per-file and per-sheet failures never stop the search;
// they are recorded on the Report and logged as warnings.
func Search(fs billy.Filesystem, root string, opts Options) (*models.SearchResults, *Report, error) {
	started := time.Now()
	log := opts.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	location := opts.Location
	if location == "" {
		location = root
	}
	results := models.NewSearchResults(opts.Terms, location)
	report := &Report{}

	resolved, err := fileutil.ResolveFiles(fs, root, fileutil.ScanOptions{
		Extensions:  opts.Extensions,
		ExcludeDirs: opts.ExcludeDirs,
	})
	if err != nil {
		return results, report, err
	}

	report.WalkErrors = resolved.Errors
	for _, werr := range resolved.Errors {
		log.LogWarn(fmt.Sprintf("Warning: %v", werr))
	}

	report.FilesSearched = len(resolved.Files)
	log.LogInfo(fmt.Sprintf("Searching for %d term(s) in %s...", len(opts.Terms), location))
	if opts.OnStart != nil {
		opts.OnStart(report.FilesSearched)
	}

	for _, file := range resolved.Files {
		outcome := scanFile(fs, file, opts)
		record(results, report, outcome, log)
		if opts.OnFile != nil {
			opts.OnFile(file, outcome)
		}
	}

	log.LogSearchComplete(report.FilesSearched, report.FilesMatched, report.TotalMatches, time.Since(started))

	return results, report, nil
}

// scanFile routes a file to the tabular or text scanner by extension
func scanFile(fs billy.Filesystem, file fileutil.File, opts Options) scanner.Outcome {
	if sheet.IsSpreadsheet(file.Path) {
		return scanner.ScanWorkbook(fs, file.Path, file.Display, opts.Terms)
	}
	return scanner.ScanText(fs, file.Path, file.Display, opts.Terms, scanner.TextOptions{
		MaxLineBytes: opts.MaxLineBytes,
	})
}

// record folds one outcome into the aggregator and the report
func record(results *models.SearchResults, report *Report, outcome scanner.Outcome, log Logger) {
	if outcome.Skipped() {
		report.Skipped = append(report.Skipped, Skip{Path: outcome.File, Reason: outcome.Err})
		log.LogWarn(fmt.Sprintf("Warning: Could not read file %s: %v", outcome.File, outcome.Err))
		return
	}

	for _, se := range outcome.SheetErrors {
		report.SheetErrors = append(report.SheetErrors, se)
		log.LogWarn("Warning: " + capitalize(se.Error()))
	}

	for _, m := range outcome.Matches {
		results.Add(m)
	}
	if outcome.Matched() {
		report.FilesMatched++
		log.LogDebug(fmt.Sprintf("%s: %d match(es)", outcome.File, len(outcome.Matches)))
	}
	report.TotalMatches += len(outcome.Matches)
}

// Local prepares an on-disk search. It returns a filesystem rooted at the
// parent of path, the root inside that filesystem and the absolute location.
// A directory reached through symlinks is searched at its resolved path;
// the location keeps the path as given.
func Local(path string) (fs billy.Filesystem, root string, location string, err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	target := abs
	if fi, statErr := os.Stat(abs); statErr == nil && fi.IsDir() {
		if resolved, evalErr := filepath.EvalSymlinks(abs); evalErr == nil {
			target = resolved
		}
	}
	return osfs.New(filepath.Dir(target)), filepath.Base(target), abs, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
