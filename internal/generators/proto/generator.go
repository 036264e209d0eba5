// Package proto renders message definitions as a proto2 schema.
package proto

import (
	"embed"
	"fmt"

	"github.com/ClementD64/tachiyomi-protobuf-models/internal/diag"
	"github.com/ClementD64/tachiyomi-protobuf-models/internal/generator"
	"github.com/ClementD64/tachiyomi-protobuf-models/internal/schema"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Generator renders definitions into proto2 schema text.
type Generator struct {
	renderer *generator.Renderer
}

// New creates a proto schema generator
func New() *Generator {
	return &Generator{renderer: generator.NewRenderer()}
}

type schemaData struct {
	Messages []messageData
}

type messageData struct {
	Name   string
	Fields []fieldData
}

type fieldData struct {
	Doc    string
	Rule   string
	Type   string
	Name   string
	Number int
}

// Generate renders the schema text for defs in order, resolving each field
// type through res. An unresolvable type is reported to sink and passes
// through unchanged; the output is a direct, line-preserving transcription
// of what was extracted — no reordering, deduplication, or renumbering.
func (g *Generator) Generate(defs []schema.Definition, res *schema.Resolver, sink *diag.Sink) ([]byte, error) {
	data := schemaData{}

	for _, def := range defs {
		msg := messageData{Name: def.Name}
		for _, e := range def.Entries {
			typ, known := res.Resolve(e.Type)
			if !known {
				sink.Reportf("unknown type %s in %s", e.Type, def.Name)
			}
			msg.Fields = append(msg.Fields, fieldData{
				Doc:    e.RawText,
				Rule:   e.Rule.String(),
				Type:   typ,
				Name:   e.Name,
				Number: e.Number,
			})
		}
		data.Messages = append(data.Messages, msg)
	}

	content, err := g.renderer.RenderFS(templatesFS, "templates/schema.proto.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("rendering schema: %w", err)
	}
	return content, nil
}

// Operations wraps rendered schema text in a write operation for path.
func (g *Generator) Operations(path string, content []byte) []generator.Operation {
	return []generator.Operation{
		&generator.WriteFileOp{
			Path:    path,
			Content: content,
			Mode:    0644,
		},
	}
}
