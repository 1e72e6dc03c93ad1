package scanner

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/harrison/sheetshow/internal/models"
)

// DefaultMaxLineBytes bounds a single line; longer lines fail the file
const DefaultMaxLineBytes = 16 * 1024 * 1024

const utf8BOM = "\ufeff"

// TextOptions tunes the text scanner
type TextOptions struct {
	// MaxLineBytes limits line length (0 = DefaultMaxLineBytes)
	MaxLineBytes int
}

// TextMatches lazily yields one match per (line, term) pair where the term
// occurs in the line, ignoring case. Lines are numbered from 1 and every
// physical line counts, blank ones included. Invalid UTF-8 is dropped.
// A read error is yielded once and ends the sequence.
func TextMatches(r io.Reader, filePath string, terms []string, opts TextOptions) iter.Seq2[models.Match, error] {
	return func(yield func(models.Match, error) bool) {
		maxLine := opts.MaxLineBytes
		if maxLine <= 0 {
			maxLine = DefaultMaxLineBytes
		}

		lowered := lowerTerms(terms)

		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, min(64*1024, maxLine)), maxLine)
		sc.Split(scanUniversalLines)

		lineNumber := 0
		for sc.Scan() {
			lineNumber++
			line := strings.ToValidUTF8(sc.Text(), "")
			if lineNumber == 1 {
				line = strings.TrimPrefix(line, utf8BOM)
			}

			lowerLine := strings.ToLower(line)
			for i, term := range terms {
				if !strings.Contains(lowerLine, lowered[i]) {
					continue
				}
				m := models.NewMatch(filePath, lineNumber, line, models.WithTerm(term))
				if !yield(m, nil) {
					return
				}
			}
		}
		if err := sc.Err(); err != nil {
			yield(models.Match{}, fmt.Errorf("line %d: %w", lineNumber+1, err))
		}
	}
}

// ScanText scans one plain-text file. The file is closed before returning,
// and any open or read error turns into a skipped outcome.
func ScanText(fs billy.Filesystem, path, displayPath string, terms []string, opts TextOptions) Outcome {
	f, err := fs.Open(path)
	if err != nil {
		return skipped(displayPath, fmt.Errorf("failed to open file: %w", err))
	}
	defer f.Close()

	out := Outcome{File: displayPath}
	for m, err := range TextMatches(f, displayPath, terms, opts) {
		if err != nil {
			return skipped(displayPath, fmt.Errorf("failed to read file: %w", err))
		}
		out.Matches = append(out.Matches, m)
	}
	return out
}

// scanUniversalLines splits on "\n", "\r\n" and a lone "\r", dropping the
// terminator. A final line without a terminator is still returned.
func scanUniversalLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// "\r" at the end of the buffer: need one more byte to tell "\r\n"
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func lowerTerms(terms []string) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = strings.ToLower(t)
	}
	return out
}
