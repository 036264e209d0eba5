package source

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultIgnoreDirs are common directories to skip during traversal
var DefaultIgnoreDirs = []string{
	"node_modules", "vendor", ".git", ".svn", ".hg",
	"dist", "build", "bin", "tmp", "temp",
	".idea", ".vscode", ".gradle",
}

// WalkOptions configures directory traversal behavior
type WalkOptions struct {
	IgnoreDirs    []string // Directories to skip (default: DefaultIgnoreDirs)
	IncludeHidden bool     // Include hidden files/dirs (default: false)
}

// Walk traverses a directory tree in lexical order with configurable ignore
// patterns. The visitor function is called for each file and directory.
// Return filepath.SkipDir from visitor to skip a directory.
func Walk(rootPath string, opts WalkOptions, visitor func(path string, info os.FileInfo) error) error {
	ignoreDirs := opts.IgnoreDirs
	if len(ignoreDirs) == 0 {
		ignoreDirs = DefaultIgnoreDirs
	}

	return filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip hidden files/directories unless explicitly included
		if !opts.IncludeHidden && strings.HasPrefix(info.Name(), ".") && path != rootPath {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			for _, ignore := range ignoreDirs {
				if info.Name() == ignore {
					return filepath.SkipDir
				}
			}
		}

		return visitor(path, info)
	})
}
