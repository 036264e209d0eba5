// Package schema assembles extracted field entries into message definitions
// and resolves field types against the set of discovered definition names.
package schema

import (
	"path/filepath"
	"strings"

	"github.com/ClementD64/tachiyomi-protobuf-models/internal/diag"
	"github.com/ClementD64/tachiyomi-protobuf-models/internal/extract"
	"github.com/ClementD64/tachiyomi-protobuf-models/internal/source"
)

// Definition is the message derived from one source: its name (source name
// with the file extension stripped) and its fields in source-appearance
// order. Definitions are never mutated after Build returns.
type Definition struct {
	Name    string
	Entries []extract.FieldEntry
}

// Build extracts every source in index order and returns the retained
// definitions plus a resolver seeded with every discovered name.
//
// Name discovery is a separate first pass over all sources, so fields may
// reference definitions appearing later in directory order, or themselves,
// without special-casing. Sources yielding zero entries are dropped from the
// output set but still contribute their name.
//
// An extraction mismatch (an annotated declaration the pattern could not
// parse) is reported to sink and processing continues with the next source;
// a run over many sources always yields the full diagnosis.
func Build(sources []source.Source, sink *diag.Sink) ([]Definition, *Resolver) {
	names := make(map[string]bool, len(sources))
	for _, src := range sources {
		names[DefinitionName(src.Name)] = true
	}

	var defs []Definition
	for _, src := range sources {
		entries, count := extract.Extract(src.Text)

		if len(entries) != count {
			matched := make([]string, len(entries))
			for i, e := range entries {
				matched[i] = e.Name
			}
			sink.Reportf("not all annotations matched in %s (matched: %s)",
				src.Name, strings.Join(matched, ", "))
		}

		if len(entries) == 0 {
			continue
		}

		defs = append(defs, Definition{
			Name:    DefinitionName(src.Name),
			Entries: entries,
		})
	}

	return defs, NewResolver(names)
}

// DefinitionName derives a definition name from a source name by stripping
// its file extension: "Manga.kt" becomes "Manga".
func DefinitionName(sourceName string) string {
	return strings.TrimSuffix(sourceName, filepath.Ext(sourceName))
}
