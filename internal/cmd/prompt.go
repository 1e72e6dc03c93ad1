package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// PromptReader defines interface for reading user input (for testing)
type PromptReader interface {
	ReadString(delim byte) (string, error)
}

// stdinIsTerminal reports whether the export prompt may be shown.
// Tests replace it to drive the prompt from a buffer.
var stdinIsTerminal = func(in io.Reader) bool {
	return isTerminal(in)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok || f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// promptExport asks whether to save the results and for an output file name.
// It returns ok=false when the answer is not yes. An empty name means the
// caller should derive one. End of input counts as the answer typed so far.
func promptExport(out io.Writer, reader PromptReader) (name string, ok bool, err error) {
	fmt.Fprint(out, "\nWould you like to save these results to Excel? (y/n): ")
	answer, err := readLine(reader)
	if err != nil {
		return "", false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
	default:
		return "", false, nil
	}

	fmt.Fprint(out, "Enter output filename (press Enter for auto-generated name): ")
	name, err = readLine(reader)
	if err != nil {
		return "", false, err
	}
	return name, true, nil
}

func readLine(reader PromptReader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func newPromptReader(in io.Reader) PromptReader {
	if r, ok := in.(PromptReader); ok {
		return r
	}
	return bufio.NewReader(in)
}
