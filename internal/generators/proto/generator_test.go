package proto

import (
	"bytes"
	"testing"

	"github.com/ClementD64/tachiyomi-protobuf-models/internal/diag"
	"github.com/ClementD64/tachiyomi-protobuf-models/internal/schema"
	"github.com/ClementD64/tachiyomi-protobuf-models/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateEndToEnd(t *testing.T) {
	sources := []source.Source{
		{Name: "Manga.kt", Text: "@ProtoNumber(1) var url: String\n@ProtoNumber(2) var title: String = \"\"\n"},
		{Name: "Chapter.kt", Text: "class Chapter { val transient = 0 }\n"},
	}

	sink := diag.New(&bytes.Buffer{})
	defs, resolver := schema.Build(sources, sink)

	content, err := New().Generate(defs, resolver, sink)
	require.NoError(t, err)
	assert.False(t, sink.Failed())

	want := `syntax = "proto2";

message Manga {
  // @ProtoNumber(1) var url: String
  required string url = 1;
  // @ProtoNumber(2) var title: String = ""
  optional string title = 2;
}

`
	assert.Equal(t, want, string(content))

	// The empty source yields no block anywhere in the output.
	assert.NotContains(t, string(content), "Chapter")
}

func TestGenerateCrossReference(t *testing.T) {
	sources := []source.Source{
		{Name: "Manga.kt", Text: "@ProtoNumber(1) var chapters: List<Chapter>\n"},
		{Name: "Chapter.kt", Text: "@ProtoNumber(1) var manga: Manga?\n"},
	}

	sink := diag.New(&bytes.Buffer{})
	defs, resolver := schema.Build(sources, sink)

	content, err := New().Generate(defs, resolver, sink)
	require.NoError(t, err)

	// Forward and circular references resolve cleanly.
	assert.False(t, sink.Failed())
	assert.Contains(t, string(content), "  repeated Chapter chapters = 1;\n")
	assert.Contains(t, string(content), "  optional Manga manga = 1;\n")
}

func TestGenerateReferenceToEmptyDefinition(t *testing.T) {
	sources := []source.Source{
		{Name: "Manga.kt", Text: "@ProtoNumber(1) var track: Track?\n"},
		{Name: "Track.kt", Text: "// nothing annotated here\n"},
	}

	sink := diag.New(&bytes.Buffer{})
	defs, resolver := schema.Build(sources, sink)

	content, err := New().Generate(defs, resolver, sink)
	require.NoError(t, err)

	// Track emits no message block, but referencing it is still legal.
	assert.False(t, sink.Failed())
	assert.Contains(t, string(content), "  optional Track track = 1;\n")
	assert.NotContains(t, string(content), "message Track")
}

func TestGenerateUnknownType(t *testing.T) {
	sources := []source.Source{
		{Name: "Manga.kt", Text: "@ProtoNumber(5) var rating: Score\n"},
	}

	var stderr bytes.Buffer
	sink := diag.New(&stderr)
	defs, resolver := schema.Build(sources, sink)

	content, err := New().Generate(defs, resolver, sink)
	require.NoError(t, err)

	assert.True(t, sink.Failed())
	assert.Contains(t, stderr.String(), "unknown type Score")

	// Synthesis still proceeds with the name passed through unchanged.
	assert.Contains(t, string(content), "  required Score rating = 5;\n")
}

func TestGenerateDuplicateNumbersPreserved(t *testing.T) {
	sources := []source.Source{
		{Name: "Manga.kt", Text: "@ProtoNumber(1) var url: String\n@ProtoNumber(1) var title: String\n"},
	}

	sink := diag.New(&bytes.Buffer{})
	defs, resolver := schema.Build(sources, sink)

	content, err := New().Generate(defs, resolver, sink)
	require.NoError(t, err)

	// Field numbers are emitted exactly as found, duplicates included.
	assert.False(t, sink.Failed())
	assert.Contains(t, string(content), "  required string url = 1;\n")
	assert.Contains(t, string(content), "  required string title = 1;\n")
}

func TestGenerateEmptyIndex(t *testing.T) {
	sink := diag.New(&bytes.Buffer{})
	defs, resolver := schema.Build(nil, sink)

	content, err := New().Generate(defs, resolver, sink)
	require.NoError(t, err)
	assert.Equal(t, "syntax = \"proto2\";\n\n", string(content))
}
