package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// ErrRootNotFound is returned when the search root does not exist
var ErrRootNotFound = errors.New("path does not exist")

// DefaultExtensions is the set of file extensions searched when none are given
var DefaultExtensions = []string{
	".txt", ".py", ".js", ".html", ".css", ".md",
	".json", ".xml", ".csv", ".xlsx", ".xls",
}

// ScanOptions configures file resolution
type ScanOptions struct {
	// Extensions is a list of file extensions to include (e.g., ".md", "csv").
	// Empty means DefaultExtensions.
	Extensions []string
	// ExcludeDirs is a list of directory names to skip (e.g., ".git", "node_modules")
	ExcludeDirs []string
}

// File is a resolved file to search
type File struct {
	// Path is the path inside the filesystem, used to open the file
	Path string
	// Display is the path shown to the user and stored on matches:
	// the base name when the root is a file, otherwise relative to the root
	Display string
}

// ScanResult contains the resolved files
type ScanResult struct {
	// Files contains the matched files, sorted by path
	Files []File
	// SingleFile is true when the root itself was a file
	SingleFile bool
	// Errors contains any errors encountered during the walk
	Errors []error
}

// NormalizeExtensions lower-cases extensions and ensures a leading dot.
// Blank entries are dropped and duplicates removed.
func NormalizeExtensions(exts []string) []string {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	seen := make(map[string]bool, len(exts))
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if seen[ext] {
			continue
		}
		seen[ext] = true
		out = append(out, ext)
	}
	return out
}

// Ext returns the lower-cased extension of a path
func Ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// ResolveFiles lists the files under root whose extension is in opts.Extensions.
// If root is a file, the result holds that file alone (or nothing when its
// extension does not qualify).
func ResolveFiles(fs billy.Filesystem, root string, opts ScanOptions) (*ScanResult, error) {
	info, err := fs.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	extMap := make(map[string]bool)
	for _, ext := range NormalizeExtensions(opts.Extensions) {
		extMap[ext] = true
	}

	result := &ScanResult{
		Files:  make([]File, 0),
		Errors: make([]error, 0),
	}

	if !info.IsDir() {
		result.SingleFile = true
		if extMap[Ext(root)] {
			result.Files = append(result.Files, File{Path: root, Display: filepath.Base(root)})
		}
		return result, nil
	}

	excludeMap := make(map[string]bool)
	for _, dir := range opts.ExcludeDirs {
		excludeMap[dir] = true
	}

	// util.Walk lstats its root, so a linked directory would list nothing
	root = followLinks(fs, root)

	err = util.Walk(fs, root, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			if fi != nil && fi.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if path == root {
			return nil
		}

		if fi.IsDir() {
			if excludeMap[fi.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if !extMap[Ext(fi.Name())] || !isRegularFile(fs, path, fi) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("failed to resolve path %s: %w", path, err))
			return nil
		}

		result.Files = append(result.Files, File{Path: path, Display: filepath.ToSlash(rel)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	sort.Slice(result.Files, func(i, j int) bool {
		return result.Files[i].Path < result.Files[j].Path
	})

	return result, nil
}

// maxLinkDepth bounds symlink chains followed at the search root
const maxLinkDepth = 40

// followLinks resolves root while it is a symlink. Relative targets are taken
// from the link's directory. On any failure the last path reached is returned.
func followLinks(fs billy.Filesystem, root string) string {
	for range maxLinkDepth {
		fi, err := fs.Lstat(root)
		if err != nil || fi.Mode()&os.ModeSymlink == 0 {
			return root
		}
		target, err := fs.Readlink(root)
		if err != nil {
			return root
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(root), target)
		}
		root = target
	}
	return root
}

// isRegularFile reports whether path is a regular file, following a symlink
// one level so linked files are searched like their targets.
func isRegularFile(fs billy.Filesystem, path string, fi os.FileInfo) bool {
	if fi.Mode()&os.ModeSymlink == 0 {
		return fi.Mode().IsRegular()
	}
	target, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return target.Mode().IsRegular()
}
