package schema

import (
	"bytes"
	"testing"

	"github.com/ClementD64/tachiyomi-protobuf-models/internal/diag"
	"github.com/ClementD64/tachiyomi-protobuf-models/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCollectsDefinitions(t *testing.T) {
	sources := []source.Source{
		{Name: "Manga.kt", Text: "@ProtoNumber(1) var url: String\n@ProtoNumber(2) var title: String = \"\"\n"},
		{Name: "Chapter.kt", Text: "@ProtoNumber(1) var name: String\n"},
	}

	sink := diag.New(&bytes.Buffer{})
	defs, _ := Build(sources, sink)

	require.Len(t, defs, 2)
	assert.Equal(t, "Manga", defs[0].Name)
	assert.Len(t, defs[0].Entries, 2)
	assert.Equal(t, "Chapter", defs[1].Name)
	assert.False(t, sink.Failed())
}

func TestBuildDropsEmptyDefinitions(t *testing.T) {
	sources := []source.Source{
		{Name: "Manga.kt", Text: "@ProtoNumber(1) var url: String\n"},
		{Name: "Chapter.kt", Text: "class Chapter { val transient = 0 }\n"},
	}

	sink := diag.New(&bytes.Buffer{})
	defs, resolver := Build(sources, sink)

	require.Len(t, defs, 1)
	assert.Equal(t, "Manga", defs[0].Name)

	// The empty source still contributes its name, so other sources may
	// reference it as a type.
	_, known := resolver.Resolve("Chapter")
	assert.True(t, known)
	assert.False(t, sink.Failed())
}

func TestBuildReportsExtractionMismatch(t *testing.T) {
	sources := []source.Source{
		{Name: "Manga.kt", Text: "@ProtoNumber(1) var url: String\n@ProtoNumber(5) var rating:\n"},
	}

	var stderr bytes.Buffer
	sink := diag.New(&stderr)
	defs, _ := Build(sources, sink)

	// The entries that did parse are still retained.
	require.Len(t, defs, 1)
	assert.Len(t, defs[0].Entries, 1)

	assert.True(t, sink.Failed())
	require.Len(t, sink.Messages(), 1)
	assert.Contains(t, sink.Messages()[0], "Manga.kt")
	assert.Contains(t, sink.Messages()[0], "url")

	// Diagnostics stream as they are discovered.
	assert.Contains(t, stderr.String(), "not all annotations matched")
}

func TestBuildContinuesAfterMismatch(t *testing.T) {
	sources := []source.Source{
		{Name: "Broken.kt", Text: "@ProtoNumber(1) var bad:\n"},
		{Name: "Manga.kt", Text: "@ProtoNumber(1) var url: String\n"},
	}

	sink := diag.New(&bytes.Buffer{})
	defs, _ := Build(sources, sink)

	require.Len(t, defs, 1)
	assert.Equal(t, "Manga", defs[0].Name)
	assert.True(t, sink.Failed())
}

func TestDefinitionName(t *testing.T) {
	assert.Equal(t, "Manga", DefinitionName("Manga.kt"))
	assert.Equal(t, "Track", DefinitionName("Track"))
}
