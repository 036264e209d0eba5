// Package source enumerates the model sources feeding the extractor.
//
// Everything downstream of Scan works on materialized (name, text) pairs, so
// the extractor and synthesizer are testable against in-memory fixtures
// without touching the filesystem.
package source

import (
	"fmt"
	"os"
	"strings"
)

// Source is one named text source: the base filename of a model file plus
// its full contents.
type Source struct {
	Name string
	Text string
}

// Scan walks root in lexical order and reads every file whose name ends in
// ext. The returned index preserves traversal order; that order is
// significant and flows through to the generated schema.
func Scan(root, ext string) ([]Source, error) {
	var sources []Source

	err := Walk(root, WalkOptions{}, func(path string, info os.FileInfo) error {
		if info.IsDir() || !strings.HasSuffix(info.Name(), ext) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading source %s: %w", path, err)
		}

		sources = append(sources, Source{Name: info.Name(), Text: string(data)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	return sources, nil
}
