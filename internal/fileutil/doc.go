// Package fileutil resolves the set of files a search will visit.
//
// Resolution works over a billy.Filesystem so the same code walks the real
// disk (osfs) and in-memory trees (memfs) in tests.
//
// # Rules
//
//   - A root that is a file yields that file alone, provided its extension
//     qualifies. Its display path is the base name.
//   - A root that is a directory is walked recursively. Every regular file
//     (or symlink to one) with a qualifying extension is returned, sorted by
//     path, with a display path relative to the root.
//   - Extensions are compared case-insensitively; "csv", ".CSV" and ".csv"
//     are the same extension. An empty list means DefaultExtensions.
//   - Directories listed in ScanOptions.ExcludeDirs are skipped by name.
//     Hidden directories are searched unless excluded.
//   - A missing root returns ErrRootNotFound. Errors on individual entries
//     are collected in ScanResult.Errors and the walk continues.
//
// # Usage
//
//	fs := osfs.New("/home/user")
//	result, err := fileutil.ResolveFiles(fs, "project", fileutil.ScanOptions{
//	    Extensions:  []string{".md", ".xlsx"},
//	    ExcludeDirs: []string{".git"},
//	})
//	if errors.Is(err, fileutil.ErrRootNotFound) {
//	    // report and stop
//	}
//	for _, f := range result.Files {
//	    fmt.Println(f.Display)
//	}
package fileutil
