package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// ProgressBar represents an ASCII progress bar with color support
type ProgressBar struct {
	current     int
	total       int
	width       int
	enableColor bool
	prefix      string
	mu          sync.RWMutex
}

// NewProgressBar creates a new progress bar
func NewProgressBar(total, width int, enableColor bool) *ProgressBar {
	if width < 1 {
		width = 10
	}
	return &ProgressBar{
		total:       total,
		width:       width,
		enableColor: enableColor,
	}
}

// Increment advances the bar by one
func (pb *ProgressBar) Increment() {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	if pb.current < pb.total {
		pb.current++
	}
}

// Current returns the current progress value
func (pb *ProgressBar) Current() int {
	pb.mu.RLock()
	defer pb.mu.RUnlock()
	return pb.current
}

// Percentage returns the progress percentage (0-100)
func (pb *ProgressBar) Percentage() int {
	pb.mu.RLock()
	defer pb.mu.RUnlock()
	return pb.percentage()
}

func (pb *ProgressBar) percentage() int {
	if pb.total <= 0 {
		return 0
	}
	return min(max(pb.current*100/pb.total, 0), 100)
}

// SetPrefix sets a label rendered before the bar
func (pb *ProgressBar) SetPrefix(prefix string) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.prefix = prefix
}

// Render generates the bar string.
// Format: "<prefix>[=====     ] 5/10 (50%)"
func (pb *ProgressBar) Render() string {
	pb.mu.RLock()
	defer pb.mu.RUnlock()

	perc := pb.percentage()
	filled := min(perc*pb.width/100, pb.width)
	bar := "[" + strings.Repeat("=", filled) + strings.Repeat(" ", pb.width-filled) + "]"
	result := fmt.Sprintf("%s%s %d/%d (%d%%)", pb.prefix, bar, pb.current, pb.total, perc)

	if !pb.enableColor {
		return result
	}
	if perc < 100 {
		return "\033[36m" + result + "\033[0m"
	}
	return "\033[32m" + result + "\033[0m"
}

// FileProgress redraws a ProgressBar in place on a terminal while files are scanned.
// A nil *FileProgress is valid and does nothing.
type FileProgress struct {
	out io.Writer
	bar *ProgressBar
}

// NewFileProgress starts a "Searching files" bar over total files on out
func NewFileProgress(out io.Writer, total int, enableColor bool) *FileProgress {
	bar := NewProgressBar(total, 30, enableColor)
	bar.SetPrefix("Searching files ")
	p := &FileProgress{out: out, bar: bar}
	p.draw()
	return p
}

// Step marks one more file as scanned
func (p *FileProgress) Step() {
	if p == nil {
		return
	}
	p.bar.Increment()
	p.draw()
}

// Finish ends the line the bar was drawn on
func (p *FileProgress) Finish() {
	if p == nil {
		return
	}
	fmt.Fprintln(p.out)
}

func (p *FileProgress) draw() {
	fmt.Fprintf(p.out, "\r%s", p.bar.Render())
}
